package formbuilder

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/fhir"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
)

// Form aliases the snapshot type exported via the root package for
// convenience.
type Form = model.FormMetadata

// Section is a titled group of questions inside a form.
type Section = model.FormSection

// Item is a single question.
type Item = model.FormItem

// Questionnaire is the FHIR R4 resource produced by Convert.
type Questionnaire = fhir.Questionnaire

// RenderOptions carries per-request values, errors, and theme configuration
// into renderers.
type RenderOptions = render.Options

// NewForm returns an empty form with default metadata.
func NewForm() Form {
	return form.NewForm()
}

// Convert maps a form snapshot into a FHIR Questionnaire resource.
func Convert(f Form, options ...fhir.Option) Questionnaire {
	return fhir.Convert(f, options...)
}

// ExportJSON serializes a questionnaire the way the download and clipboard
// actions do.
func ExportJSON(q Questionnaire) ([]byte, error) {
	return export.Document(q)
}

// GenerateHTML renders a static HTML preview of the form. It is the simplest
// entry point for callers that just want markup.
func GenerateHTML(ctx context.Context, f Form, options ...html.Option) ([]byte, error) {
	renderer, err := html.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, f, render.Options{})
}

// DefaultRegistry returns a renderer registry with the HTML renderer
// installed. Callers can register additional renderers before handing it to
// the shell.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}
	return registry, nil
}
