package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(context.Context, model.FormMetadata, Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{name: "html"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if renderer.Name() != "html" {
		t.Errorf("Name() = %q", renderer.Name())
	}

	if !registry.Has("html") {
		t.Error("Has() = false")
	}
	if registry.Has("tui") {
		t.Error("Has() reported unregistered renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{name: "html"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := registry.Register(&stubRenderer{name: "html"}); err == nil {
		t.Error("duplicate registration should fail")
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Error("nil renderer should fail")
	}
	if err := registry.Register(&stubRenderer{}); err == nil {
		t.Error("unnamed renderer should fail")
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"tui", "html", "json"} {
		registry.MustRegister(&stubRenderer{name: name})
	}
	if diff := cmp.Diff([]string{"html", "json", "tui"}, registry.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryGetMissing(t *testing.T) {
	if _, err := NewRegistry().Get("missing"); err == nil {
		t.Error("expected error for unknown renderer")
	}
}
