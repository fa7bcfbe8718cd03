package embeddedtag

import "formbind/binding/bindingtest"

//formbind:driver
type Form struct {
	*bindingtest.Element `presenter:"self"`
}
