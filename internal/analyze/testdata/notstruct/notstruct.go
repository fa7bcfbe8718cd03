package notstruct

// Form is an interface and cannot carry a driver.
//
//formbind:driver
type Form interface {
	Submit()
}
