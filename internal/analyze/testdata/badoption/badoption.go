package badoption

import "formbind/binding/bindingtest"

//formbind:driver clear-on-blr=false
type Form struct {
	Field *bindingtest.Element `presenter:"field"`
}
