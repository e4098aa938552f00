package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/fhir"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

func TestFileName(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Patient Intake", "patient-intake.json"},
		{"  Follow   Up  ", "follow-up.json"},
		{"", "questionnaire.json"},
	}
	for _, tc := range cases {
		got := FileName(model.FormMetadata{Title: tc.title})
		if got != tc.want {
			t.Errorf("FileName(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestDocumentIsIndentedJSON(t *testing.T) {
	doc, err := Document(fhir.Questionnaire{
		ResourceType: "Questionnaire",
		Title:        "Patient Intake",
		Status:       "draft",
	})
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if !strings.Contains(string(doc), "\n  \"") {
		t.Errorf("expected indented output, got %s", doc)
	}
	var q fhir.Questionnaire
	if err := json.Unmarshal(doc, &q); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if q.Title != "Patient Intake" {
		t.Errorf("Title round-trip = %q", q.Title)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	e := New(WithOutputDir(dir))

	path, err := e.WriteFile(
		model.FormMetadata{Title: "Patient Intake"},
		fhir.Questionnaire{ResourceType: "Questionnaire", Title: "Patient Intake"},
	)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if filepath.Base(path) != "patient-intake.json" {
		t.Errorf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}

func TestCopyToClipboard(t *testing.T) {
	var captured string
	e := New(WithClipboardFunc(func(text string) error {
		captured = text
		return nil
	}))

	if err := e.CopyToClipboard(fhir.Questionnaire{ResourceType: "Questionnaire"}); err != nil {
		t.Fatalf("CopyToClipboard() error = %v", err)
	}
	if !strings.Contains(captured, `"resourceType": "Questionnaire"`) {
		t.Errorf("clipboard payload = %q", captured)
	}
}

func TestCopyToClipboardFailure(t *testing.T) {
	e := New(WithClipboardFunc(func(string) error {
		return errors.New("no display")
	}))
	if err := e.CopyToClipboard(fhir.Questionnaire{}); err == nil {
		t.Fatal("expected error")
	}
}
