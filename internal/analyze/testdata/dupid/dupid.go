package dupid

import "formbind/binding/bindingtest"

//formbind:driver
type SignupForm struct {
	Email   *bindingtest.Element `presenter:"email"`
	Confirm *bindingtest.Element `presenter:"email"`
}
