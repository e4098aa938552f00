package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Renderer converts a form snapshot into a byte representation (HTML for the
// preview page, serialized responses for the terminal renderer).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormMetadata, options Options) ([]byte, error)
}
