package binding

import (
	"log/slog"
	"reflect"
	"sort"
)

// MessageDriver is the contract generated drivers implement for a provider
// type P.
type MessageDriver[P any] interface {
	// Initialize populates the registry from the presenter fields of provider.
	Initialize(provider P)
	// Register attaches clear-on-blur listeners.
	Register()
	// Deregister detaches the listeners Register attached.
	Deregister()
	// ClearInvalid clears the error state of every registered field.
	ClearInvalid()
	// Consume routes messages onto the registered fields.
	Consume(messages []Message)
	// DeregisterAndDestroy calls Deregister and then Destroy.
	DeregisterAndDestroy()
	// Destroy empties the registry.
	Destroy()
}

//go:generate go tool stringer -type=State -linecomment

// State is the lifecycle position of a Driver.
type State int

const (
	StateUninitialized State = iota // uninitialized
	StateInitialized                // initialized
	StateRegistered                 // registered
	StateUnregistered               // unregistered
	StateDestroyed                  // destroyed
)

// Driver holds the id to wrapper registry of one view. Generated drivers
// embed it and supply Initialize.
//
// The zero value is an empty driver with clear-on-blur disabled; NewDriver
// enables it.
type Driver struct {
	wrappers    map[string]*ElementWrapper
	clearOnBlur bool
	state       State

	sink   func([]Message)
	filter func(string) string
	logger *slog.Logger
}

// NewDriver returns an empty driver with clear-on-blur enabled.
func NewDriver(opts ...Option) Driver {
	d := Driver{
		wrappers:    make(map[string]*ElementWrapper),
		clearOnBlur: true,
	}

	for _, opt := range opts {
		opt(&d)
	}

	return d
}

// Populate sets the clear-on-blur policy and inserts wrappers in order.
// Generated Initialize methods call it once per provider.
//
// A wrapper whose id is already present replaces the earlier one without
// error; the replaced wrapper's listener, if any, is detached first.
func (d *Driver) Populate(clearOnBlur bool, wrappers ...*ElementWrapper) {
	d.clearOnBlur = clearOnBlur

	for _, w := range wrappers {
		d.insert(w)
	}

	d.state = StateInitialized
}

// Put inserts a single element under id. It is meant for drivers assembled
// by hand; mixing it with generated Initialize methods makes the winner of a
// duplicate id depend on call order.
func (d *Driver) Put(id string, element FormElement) {
	d.insert(NewElementWrapper(id, element))

	if d.state == StateUninitialized || d.state == StateDestroyed {
		d.state = StateInitialized
	}
}

func (d *Driver) insert(w *ElementWrapper) {
	if w == nil || isNil(w.element) {
		id := ""
		if w != nil {
			id = w.id
		}

		d.log().Warn("skipping presenter without form element", slog.String("id", id))

		return
	}

	if d.wrappers == nil {
		d.wrappers = make(map[string]*ElementWrapper)
	}

	if prev, ok := d.wrappers[w.id]; ok && prev != w {
		prev.detach()
		d.log().Debug("presenter id overwritten", slog.String("id", w.id))
	}

	d.wrappers[w.id] = w
}

// ClearOnBlur reports whether Register attaches clear-on-blur listeners.
func (d *Driver) ClearOnBlur() bool {
	return d.clearOnBlur
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Len returns the number of registered wrappers.
func (d *Driver) Len() int {
	return len(d.wrappers)
}

// Lookup returns the wrapper registered under id.
func (d *Driver) Lookup(id string) (*ElementWrapper, bool) {
	w, ok := d.wrappers[id]
	return w, ok
}

// IDs returns the registered ids in sorted order.
func (d *Driver) IDs() []string {
	ids := make([]string, 0, len(d.wrappers))
	for id := range d.wrappers {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Register attaches a listener to every wrapper's input surface that clears
// that wrapper's error state on blur. It does nothing when clear-on-blur is
// disabled. Wrappers already holding a listener are skipped, so repeated
// calls never stack listeners.
func (d *Driver) Register() {
	if len(d.wrappers) == 0 {
		return
	}

	if d.clearOnBlur {
		attached := 0
		for _, w := range d.wrappers {
			if w.attach() {
				attached++
			}
		}

		d.log().Debug("blur listeners attached", slog.Int("count", attached))
	}

	d.state = StateRegistered
}

// Deregister detaches every listener Register attached. Wrappers without a
// listener are left alone.
func (d *Driver) Deregister() {
	for _, w := range d.wrappers {
		w.detach()
	}

	if d.state == StateRegistered {
		d.state = StateUnregistered
	}
}

// ClearInvalid clears the error state of every wrapper, whatever the
// clear-on-blur policy.
func (d *Driver) ClearInvalid() {
	for _, w := range d.wrappers {
		w.element.ClearInvalid()
	}
}

// Consume routes messages in order. For a TargetField message each error
// source, in order, invalidates the wrapper registered under it. A source
// with no wrapper, or a message with any other target, marks the message
// unconsumed; unconsumed messages go to the sink set by WithUnconsumedSink
// and are dropped otherwise.
func (d *Driver) Consume(messages []Message) {
	var unconsumed []Message

	for _, m := range messages {
		if m.Target != TargetField {
			unconsumed = append(unconsumed, m)
			continue
		}

		missed := false
		for _, source := range m.ErrorSources {
			w, ok := d.wrappers[source]
			if !ok {
				missed = true
				d.log().Debug("no presenter for error source", slog.String("source", source))
				continue
			}

			w.element.Invalidate(d.text(m.Text))
		}

		if missed {
			unconsumed = append(unconsumed, m)
		}
	}

	if len(unconsumed) == 0 {
		return
	}

	// TODO: deliver unconsumed messages to a global presenter once one exists.
	if d.sink != nil {
		d.sink(unconsumed)
	}
}

// DeregisterAndDestroy detaches all listeners and empties the registry.
func (d *Driver) DeregisterAndDestroy() {
	d.Deregister()
	d.Destroy()
}

// Destroy empties the registry. Listeners still attached stay attached;
// call Deregister first, or use DeregisterAndDestroy.
func (d *Driver) Destroy() {
	clear(d.wrappers)
	d.state = StateDestroyed
}

// isNil reports whether e is nil or an interface holding a nil pointer, as
// an unset pointer field of a provider does.
func isNil(e FormElement) bool {
	if e == nil {
		return true
	}

	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func (d *Driver) text(s string) string {
	if d.filter == nil {
		return s
	}

	return d.filter(s)
}

func (d *Driver) log() *slog.Logger {
	if d.logger == nil {
		return slog.Default()
	}

	return d.logger
}
