package binding

// FormElement is the capability set every bindable field implements.
type FormElement interface {
	// Invalidate puts the element into the error state showing text.
	Invalidate(text string)
	// ClearInvalid removes the error state.
	ClearInvalid()
	// InputSurface returns the surface blur listeners attach to, or nil when
	// the element is not interactive.
	InputSurface() InputSurface
}

// InputSurface is the interactive part of a FormElement.
//
// Implementations compare listeners by pointer identity.
type InputSurface interface {
	AddBlurListener(l *BlurListener)
	RemoveBlurListener(l *BlurListener)
}

// BlurListener is a handle for a blur callback. The pointer is the identity
// used to detach it again.
type BlurListener struct {
	fn func()
}

// NewBlurListener wraps fn.
func NewBlurListener(fn func()) *BlurListener {
	return &BlurListener{fn: fn}
}

// OnBlur runs the callback. Surfaces call it when their input loses focus.
func (l *BlurListener) OnBlur() {
	if l == nil || l.fn == nil {
		return
	}

	l.fn()
}
