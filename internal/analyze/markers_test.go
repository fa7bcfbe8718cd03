package analyze

import (
	"errors"
	"go/ast"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbind/internal/diagnostic"
)

func comments(lines ...string) *ast.CommentGroup {
	g := &ast.CommentGroup{}
	for _, l := range lines {
		g.List = append(g.List, &ast.Comment{Text: l})
	}

	return g
}

func TestFindDirectives(t *testing.T) {
	got := findDirectives(
		comments("// LoginForm is the login view.", "//formbind:driver clear-on-blur=false"),
		nil,
		comments("//go:generate formbind gen", "//formbind:"),
	)

	require.Len(t, got, 2)
	assert.Equal(t, "driver", got[0].verb)
	assert.Equal(t, []string{"clear-on-blur=false"}, got[0].args)
	assert.Equal(t, "", got[1].verb)
}

func TestFindDirectives_IgnoresProse(t *testing.T) {
	got := findDirectives(comments("// formbind:driver is only a mention"))
	assert.Empty(t, got)
}

func TestParseDriverMarker(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    bool
		errCode string
		suggest []string
	}{
		{name: "default", want: true},
		{name: "explicit false", args: []string{"clear-on-blur=false"}, want: false},
		{name: "explicit true", args: []string{"clear-on-blur=true"}, want: true},
		{name: "bare", args: []string{"clear-on-blur"}, want: true},
		{name: "typo", args: []string{"clear-on-blr=false"}, errCode: diagnostic.CodeMarkerBadOption, suggest: []string{"clear-on-blur"}},
		{name: "camel", args: []string{"clearOnBlur=false"}, errCode: diagnostic.CodeMarkerBadOption, suggest: []string{"clear-on-blur"}},
		{name: "not bool", args: []string{"clear-on-blur=sometimes"}, errCode: diagnostic.CodeMarkerBadOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := parseDriverMarker(directive{verb: DriverVerb, args: tt.args}, "forms.LoginForm", token.Position{})
			if tt.errCode != "" {
				var diag diagnostic.Diagnostic
				require.True(t, errors.As(err, &diag))
				assert.Equal(t, tt.errCode, diag.Code)
				assert.Equal(t, "forms.LoginForm", diag.Decl)
				assert.Equal(t, tt.suggest, diag.Suggestions)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, m.ClearOnBlur)
		})
	}
}

func TestCheckVerb(t *testing.T) {
	require.NoError(t, checkVerb(directive{verb: "driver"}, "x.Y", token.Position{}))

	err := checkVerb(directive{verb: "drvier"}, "x.Y", token.Position{})

	var diag diagnostic.Diagnostic
	require.True(t, errors.As(err, &diag))
	assert.Equal(t, diagnostic.CodeMarkerUnknown, diag.Code)
	assert.Equal(t, []string{"driver"}, diag.Suggestions)
}

func TestTagKeys(t *testing.T) {
	tests := []struct {
		tag  string
		want []string
	}{
		{`presenter:"user"`, []string{"presenter"}},
		{`json:"name,omitempty" presnter:"user"`, []string{"json", "presnter"}},
		{`a:"x\"y" b:"z"`, []string{"a", "b"}},
		{``, nil},
		{`broken`, nil},
		{`ok:"1" broken`, []string{"ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, tagKeys(tt.tag))
		})
	}
}
