package badtype

import "formbind/binding/bindingtest"

//formbind:driver
type ProfileForm struct {
	Name *bindingtest.Element `presenter:"name"`
	Age  int                  `presenter:"age"`
}
