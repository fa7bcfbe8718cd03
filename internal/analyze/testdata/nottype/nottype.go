package nottype

//formbind:driver
func NewForm() {}
