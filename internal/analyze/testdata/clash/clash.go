package clash

import "formbind/binding/bindingtest"

const binding = "shadows the runtime package name"

//formbind:driver
type Form struct {
	Field *bindingtest.Element `presenter:"field"`
}
