package analyze

import (
	"go/token"
	"strings"

	"formbind/internal/diagnostic"
)

// ImplSuffix is appended to a marked struct's name to form the driver name.
const ImplSuffix = "DriverImpl"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/app/forms"
	Name    string // e.g., "LoginForm"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// FieldPath is the selector leading from a provider value to one of its
// fields, e.g. "Credentials.Username" for a field promoted from an embedded
// struct.
type FieldPath struct {
	parts []string
}

// NewFieldPath creates a path from selector parts.
func NewFieldPath(parts ...string) FieldPath {
	return FieldPath{parts: append([]string(nil), parts...)}
}

// Field appends a field name to the path.
func (p FieldPath) Field(name string) FieldPath {
	return FieldPath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Name returns the last selector, the field's own name.
func (p FieldPath) Name() string {
	if len(p.parts) == 0 {
		return ""
	}

	return p.parts[len(p.parts)-1]
}

// String returns the full selector.
func (p FieldPath) String() string {
	return strings.Join(p.parts, ".")
}

// PresenterField is one validated field bound under ID.
type PresenterField struct {
	// ID is the presenter id from the struct tag.
	ID string
	// Path selects the field from the provider.
	Path FieldPath
	// Type is the field's type relative to the declaring package.
	Type string
	// TakeAddress is set when only a pointer to the field implements
	// binding.FormElement.
	TakeAddress bool
	// Pos is the field's declaration position.
	Pos token.Position
}

// DriverModel describes one driver to generate.
type DriverModel struct {
	ID          TypeID
	PkgName     string
	Dir         string
	ClearOnBlur bool
	Fields      []PresenterField
	// RuntimeName is the identifier the generated file imports the binding
	// package under.
	RuntimeName string
	Pos         token.Position
}

// ImplName returns the generated driver type name.
func (m *DriverModel) ImplName() string {
	return m.ID.Name + ImplSuffix
}

// Model is the result of one analysis round.
type Model struct {
	Drivers     []DriverModel
	Diagnostics diagnostic.Diagnostics
}
