package generic

import "formbind/binding"

//formbind:driver
type Form[E binding.FormElement] struct {
	Field E `presenter:"field"`
}
