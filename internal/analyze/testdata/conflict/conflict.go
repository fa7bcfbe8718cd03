package conflict

import "formbind/binding/bindingtest"

//formbind:driver
type Form struct {
	Field *bindingtest.Element `presenter:"field"`
}

// FormDriverImpl is written by hand and collides with the generated name.
type FormDriverImpl struct{}
