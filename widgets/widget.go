package widgets

// Widget is anything that can draw itself into a width x height cell box.
// Render must tolerate degenerate geometry and return "" rather than fail.
type Widget interface {
	Render(width, height int) string
}

// WidgetFunc adapts a plain function to the Widget interface.
type WidgetFunc func(width, height int) string

func (f WidgetFunc) Render(width, height int) string { return f(width, height) }
