// Package bindingtest provides in-memory form elements for testing drivers.
package bindingtest

import "formbind/binding"

// Element is a FormElement recording every call made on it.
type Element struct {
	// Invalidations holds the texts passed to Invalidate, in call order.
	Invalidations []string
	// Clears counts ClearInvalid calls.
	Clears int

	invalid bool
	text    string
	surface *Surface
}

// NewElement returns an interactive element with its own Surface.
func NewElement() *Element {
	return &Element{surface: &Surface{}}
}

// NewStaticElement returns an element without an input surface.
func NewStaticElement() *Element {
	return &Element{}
}

// Invalidate implements binding.FormElement.
func (e *Element) Invalidate(text string) {
	e.Invalidations = append(e.Invalidations, text)
	e.invalid = true
	e.text = text
}

// ClearInvalid implements binding.FormElement.
func (e *Element) ClearInvalid() {
	e.Clears++
	e.invalid = false
	e.text = ""
}

// InputSurface implements binding.FormElement.
func (e *Element) InputSurface() binding.InputSurface {
	if e.surface == nil {
		return nil
	}

	return e.surface
}

// Surface returns the element's surface, nil for static elements.
func (e *Element) Surface() *Surface {
	return e.surface
}

// Invalid reports whether the element currently shows an error.
func (e *Element) Invalid() bool {
	return e.invalid
}

// Text returns the error text currently shown.
func (e *Element) Text() string {
	return e.text
}

// Surface is an InputSurface keeping attached listeners in a slice. It does
// not deduplicate, so a listener attached twice fires twice.
type Surface struct {
	listeners []*binding.BlurListener
}

// AddBlurListener implements binding.InputSurface.
func (s *Surface) AddBlurListener(l *binding.BlurListener) {
	s.listeners = append(s.listeners, l)
}

// RemoveBlurListener implements binding.InputSurface.
func (s *Surface) RemoveBlurListener(l *binding.BlurListener) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of attached listeners.
func (s *Surface) Listeners() int {
	return len(s.listeners)
}

// Blur fires every attached listener.
func (s *Surface) Blur() {
	for _, l := range append([]*binding.BlurListener(nil), s.listeners...) {
		l.OnBlur()
	}
}
