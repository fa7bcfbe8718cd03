package analyze

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"formbind/internal/diagnostic"
	"formbind/internal/match"
)

// Directive syntax.
const (
	DirectivePrefix   = "//formbind:"
	DriverVerb        = "driver"
	OptionClearOnBlur = "clear-on-blur"
)

var (
	knownVerbs   = []string{DriverVerb}
	knownOptions = []string{OptionClearOnBlur}
)

// Marker is the parsed driver-enabled directive.
type Marker struct {
	ClearOnBlur bool
}

// directive is one //formbind: comment line.
type directive struct {
	verb string
	args []string
	pos  token.Pos
}

// findDirectives returns the //formbind: lines of the given comment groups.
func findDirectives(groups ...*ast.CommentGroup) []directive {
	var out []directive

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
			if !ok {
				continue
			}

			fields := strings.Fields(rest)
			if len(fields) == 0 {
				out = append(out, directive{pos: c.Slash})
				continue
			}

			out = append(out, directive{verb: fields[0], args: fields[1:], pos: c.Slash})
		}
	}

	return out
}

// checkVerb rejects directives this tool does not understand.
func checkVerb(d directive, decl string, pos token.Position) error {
	for _, v := range knownVerbs {
		if d.verb == v {
			return nil
		}
	}

	return diagnostic.Errorf(diagnostic.CodeMarkerUnknown, decl, "", pos,
		"unknown directive %q", DirectivePrefix+d.verb).
		WithSuggestions(match.Suggest(d.verb, knownVerbs...)...)
}

// parseDriverMarker parses the options of a driver directive.
// Options are key=value pairs; a bare key means true.
func parseDriverMarker(d directive, decl string, pos token.Position) (Marker, error) {
	m := Marker{ClearOnBlur: true}

	for _, arg := range d.args {
		key, value, hasValue := strings.Cut(arg, "=")
		if key != OptionClearOnBlur {
			return m, diagnostic.Errorf(diagnostic.CodeMarkerBadOption, decl, "", pos,
				"unknown %s option %q", DirectivePrefix+DriverVerb, key).
				WithSuggestions(match.Suggest(key, knownOptions...)...)
		}

		if !hasValue {
			m.ClearOnBlur = true
			continue
		}

		b, err := strconv.ParseBool(value)
		if err != nil {
			return m, diagnostic.Errorf(diagnostic.CodeMarkerBadOption, decl, "", pos,
				"option %s wants a boolean, got %q", key, value)
		}

		m.ClearOnBlur = b
	}

	return m, nil
}

// tagKeys lists the keys of a struct tag in order, following the
// conventional `key:"value" key2:"value2"` syntax. Scanning stops at the
// first malformed pair.
func tagKeys(tag string) []string {
	var keys []string

	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}

		tag = tag[i:]
		if tag == "" {
			break
		}

		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}

		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}

		keys = append(keys, tag[:i])
		tag = tag[i+1:]

		// Skip the quoted value.
		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}

		if i >= len(tag) {
			break
		}

		tag = tag[i+1:]
	}

	return keys
}
