package gotemplate

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tpl": {Data: []byte("Hello {{ name }}!")},
		"page.tmpl":    {Data: []byte("<h1>{{ title|slug }}</h1>")},
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Error("expected error when neither base dir nor FS is set")
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if out != "Hello Ada!" {
		t.Errorf("out = %q", out)
	}
}

func TestRenderTemplateCustomExtension(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := engine.RenderTemplate("page", map[string]any{"title": "Patient Intake"})
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if out != "<h1>patient-intake</h1>" {
		t.Errorf("out = %q", out)
	}
}

func TestRenderStringWithWriterTee(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	out, err := engine.RenderString("{{ value|trim }}", map[string]any{"value": "  spaced  "}, &buf)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if out != "spaced" {
		t.Errorf("out = %q", out)
	}
	if buf.String() != out {
		t.Errorf("writer got %q, return was %q", buf.String(), out)
	}
}

func TestGlobalData(t *testing.T) {
	engine, err := New(
		WithFS(testFS()),
		WithGlobalData(map[string]any{"brand": "Acme Health"}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := engine.RenderString("{{ brand }}", nil)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if out != "Acme Health" {
		t.Errorf("out = %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	}); err != nil {
		t.Fatalf("RegisterFilter() error = %v", err)
	}

	out, err := engine.RenderString("{{ word|shout }}", map[string]any{"word": "quiet"})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if out != "QUIET" {
		t.Errorf("out = %q", out)
	}

	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return input, nil
	}); err == nil {
		t.Error("duplicate filter registration should fail")
	}
}

func TestMissingTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := engine.RenderTemplate("absent", nil); err == nil {
		t.Error("expected error for missing template")
	}
}
