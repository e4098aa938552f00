package form

import "github.com/google/uuid"

// ID generation is indirected so tests can produce stable identifiers.
var newID = uuid.NewString

// NewSectionID returns a fresh section identifier.
func NewSectionID() string {
	return "section-" + newID()
}

// NewItemID returns a fresh item identifier, unique form-wide.
func NewItemID() string {
	return "item-" + newID()
}
