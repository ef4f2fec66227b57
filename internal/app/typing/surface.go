package typing

// Surface is the display target of an animator.
// Only its text content is ever replaced.
type Surface interface {
	SetText(text string) error
}

// SurfaceFunc adapts a function to a Surface.
type SurfaceFunc func(text string) error

// SetText implements Surface.
func (f SurfaceFunc) SetText(text string) error {
	return f(text)
}
