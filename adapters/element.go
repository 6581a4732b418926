package adapters

import (
	"sync"

	"distsn/helpers"
)

// Element is an in-memory container element: the placeholder a page load renders into.
// Implements interfaces.Placeholder.
type Element struct {
	id string

	mu        sync.RWMutex
	innerHTML string
}

// NewElement creates an empty element with the given id. Panics on empty id.
func NewElement(id string) *Element {
	return &Element{id: helpers.StrPanic(id, "adapters.element.go: element id is required")}
}

func (e *Element) ID() string {
	return e.id
}

// SetInnerHTML replaces the element content.
func (e *Element) SetInnerHTML(html string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.innerHTML = html
}

func (e *Element) InnerHTML() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.innerHTML
}
