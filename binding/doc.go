// Package binding routes backend validation messages onto the form fields of
// a single view.
//
// A Driver owns a registry of ElementWrapper values keyed by a string id.
// Generated drivers (see cmd/formbind) embed Driver and implement
// MessageDriver for one provider struct by populating that registry from the
// struct's presenter fields.
//
// Lifecycle:
//
//	d := NewLoginFormDriverImpl()
//	d.Initialize(form)   // populate the registry
//	d.Register()         // attach clear-on-blur listeners
//	d.Consume(messages)  // invalidate matching fields, repeatedly
//	d.DeregisterAndDestroy()
//
// Drivers are not safe for concurrent use. They are meant to be driven from
// the UI event loop, which serialises listener callbacks and Consume calls.
package binding
