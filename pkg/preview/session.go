// Package preview tracks the ephemeral fill state of a rendered form: the
// response map and the error map. Both live only as long as the preview and
// are reset together; nothing here touches the form model.
package preview

import (
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Session holds responses and validation errors keyed by item id.
type Session struct {
	responses map[string]any
	errors    map[string][]string
}

// NewSession returns an empty fill session.
func NewSession() *Session {
	return &Session{
		responses: make(map[string]any),
		errors:    make(map[string][]string),
	}
}

// SetResponse records a value for the item and recomputes validation for that
// item only: a failing value sets its error entry, a passing value clears it.
// Other items' errors are never touched.
func (s *Session) SetResponse(item model.FormItem, value any) []string {
	s.responses[item.ID] = value

	errs := validation.Validate(item, value)
	if len(errs) > 0 {
		s.errors[item.ID] = errs
	} else {
		delete(s.errors, item.ID)
	}
	return errs
}

// Response returns the recorded value for an item id.
func (s *Session) Response(itemID string) (any, bool) {
	value, ok := s.responses[itemID]
	return value, ok
}

// Responses returns a copy of the collected response map.
func (s *Session) Responses() map[string]any {
	out := make(map[string]any, len(s.responses))
	for id, value := range s.responses {
		out[id] = value
	}
	return out
}

// Errors returns a copy of the current error map.
func (s *Session) Errors() map[string][]string {
	out := make(map[string][]string, len(s.errors))
	for id, errs := range s.errors {
		out[id] = append([]string(nil), errs...)
	}
	return out
}

// ErrorsFor returns the errors currently attached to an item id.
func (s *Session) ErrorsFor(itemID string) []string {
	return s.errors[itemID]
}

// Reset clears responses and errors together.
func (s *Session) Reset() {
	s.responses = make(map[string]any)
	s.errors = make(map[string][]string)
}
