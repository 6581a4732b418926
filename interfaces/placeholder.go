package interfaces

// Placeholder is the container element that receives the rendered instance list.
// The renderer owns the handle it was constructed with and is its only writer.
//
// Implemented by adapters.Element.
type Placeholder interface {
	// ID returns the element identifier (e.g. "placeholder").
	ID() string
	// SetInnerHTML replaces the element content with html.
	SetInnerHTML(html string)
	// InnerHTML returns the current element content.
	InnerHTML() string
}
