package binding

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Target -linecomment

// Target is the scope a validation message applies to.
type Target int

const (
	TargetNone   Target = iota // NONE
	TargetField                // FIELD
	TargetGlobal               // GLOBAL
)

// ParseTarget parses the wire name of a target, case-insensitively.
func ParseTarget(s string) (Target, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case TargetNone.String(), "":
		return TargetNone, nil
	case TargetField.String():
		return TargetField, nil
	case TargetGlobal.String():
		return TargetGlobal, nil
	default:
		return TargetNone, fmt.Errorf("unknown message target %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	if t < TargetNone || t > TargetGlobal {
		return nil, fmt.Errorf("invalid message target %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	parsed, err := ParseTarget(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Message is a validation result produced by the transport layer.
type Message struct {
	Target       Target   `json:"target" yaml:"target"`
	ErrorSources []string `json:"errorSources,omitempty" yaml:"errorSources,omitempty"`
	Text         string   `json:"text" yaml:"text"`
}

// FieldMessage returns a TargetField message for the given sources.
func FieldMessage(text string, sources ...string) Message {
	return Message{Target: TargetField, ErrorSources: sources, Text: text}
}
