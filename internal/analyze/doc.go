// Package analyze discovers driver-enabled structs and their presenter fields.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build a
// Model describing, for each struct carrying the //formbind:driver
// directive, the ordered presenter fields the generated driver will bind.
//
// Markers:
//
//	//formbind:driver clear-on-blur=false
//	type LoginForm struct {
//		Username *widgets.TextBox `presenter:"user"`
//	}
//
// Validation stops at the first error, reported as a diagnostic.Diagnostic.
package analyze
