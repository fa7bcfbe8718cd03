// Package gen provides deterministic Go code generation for message drivers.
//
// Generation approach uses text/template + go/format. For every
// analyze.DriverModel one file is emitted next to the marked struct:
//
//	type LoginFormDriverImpl struct {
//		binding.Driver
//	}
//
//	func (d *LoginFormDriverImpl) Initialize(provider *LoginForm) {
//		d.Populate(true,
//			binding.NewElementWrapper("user", provider.Username),
//			binding.NewElementWrapper("pass", provider.Password),
//		)
//	}
package gen
