// Package login declares valid driver-enabled structs.
package login

import (
	"formbind/binding"
	"formbind/binding/bindingtest"
)

// Credentials is embedded by AccountForm.
type Credentials struct {
	Username *bindingtest.Element `presenter:"user"`
	Password *bindingtest.Element `presenter:"pass"`
}

// LoginForm is the plain two-field case.
//
//formbind:driver
type LoginForm struct {
	Username *bindingtest.Element `presenter:"user"`
	Password *bindingtest.Element `presenter:"pass"`
	Remember bool
}

// AccountForm mixes promoted, value and interface fields.
//
//formbind:driver clear-on-blur=false
type AccountForm struct {
	Credentials
	Email   bindingtest.Element  `presenter:"email"`
	Notes   *bindingtest.Element `json:"notes" presnter:"notes"`
	display binding.FormElement  `presenter:"display"`
}

// Plain carries presenter tags but no marker.
type Plain struct {
	Field *bindingtest.Element `presenter:"x"`
}

type (
	//formbind:driver
	Grouped struct {
		Name *bindingtest.Element `presenter:"name"`
	}

	Ungrouped struct {
		Name *bindingtest.Element `presenter:"name"`
	}
)

//formbind:driver
type Empty struct{}
