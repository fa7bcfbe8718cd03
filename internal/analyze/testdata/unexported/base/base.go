package base

import "formbind/binding/bindingtest"

// Base hides its presenter field from other packages.
type Base struct {
	name *bindingtest.Element `presenter:"name"`
}

// Name returns the hidden field.
func (b *Base) Name() *bindingtest.Element {
	return b.name
}
