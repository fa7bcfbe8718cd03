package binding

// ElementWrapper pairs a field id with its form element and, while
// registered, the blur listener attached to the element's input surface.
type ElementWrapper struct {
	id       string
	element  FormElement
	listener *BlurListener
	surface  InputSurface
}

// NewElementWrapper returns an unregistered wrapper.
func NewElementWrapper(id string, element FormElement) *ElementWrapper {
	return &ElementWrapper{id: id, element: element}
}

// ID returns the presenter id.
func (w *ElementWrapper) ID() string {
	return w.id
}

// Element returns the wrapped form element.
func (w *ElementWrapper) Element() FormElement {
	return w.element
}

// Registered reports whether a blur listener is currently attached.
func (w *ElementWrapper) Registered() bool {
	return w.listener != nil
}

// attach installs a listener clearing this wrapper's element on blur.
// It reports false when a listener is already stored or the element has no
// input surface.
func (w *ElementWrapper) attach() bool {
	if w.listener != nil {
		return false
	}

	surface := w.element.InputSurface()
	if surface == nil {
		return false
	}

	l := NewBlurListener(w.element.ClearInvalid)
	surface.AddBlurListener(l)
	w.listener = l
	w.surface = surface

	return true
}

// detach removes the stored listener, if any, from the surface it was
// attached to.
func (w *ElementWrapper) detach() bool {
	if w.listener == nil {
		return false
	}

	w.surface.RemoveBlurListener(w.listener)
	w.listener = nil
	w.surface = nil

	return true
}
