package emptyid

import "formbind/binding/bindingtest"

//formbind:driver
type Form struct {
	Field *bindingtest.Element `presenter:" "`
}
