// Package export serializes FHIR questionnaires to disk and the system
// clipboard.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/fhir"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger used for non-fatal export notices.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithOutputDir sets the directory WriteFile targets. Defaults to the
// current working directory.
func WithOutputDir(dir string) Option {
	return func(e *Exporter) {
		if dir != "" {
			e.outputDir = dir
		}
	}
}

// WithClipboardFunc overrides the clipboard writer.
func WithClipboardFunc(fn ClipboardFunc) Option {
	return func(e *Exporter) {
		if fn != nil {
			e.writeClipboard = fn
		}
	}
}

// Exporter writes questionnaire documents out of the builder.
type Exporter struct {
	logger         *zap.Logger
	outputDir      string
	writeClipboard ClipboardFunc
}

// New creates an Exporter with defaults.
func New(options ...Option) *Exporter {
	e := &Exporter{
		logger:         zap.NewNop(),
		outputDir:      ".",
		writeClipboard: clipboard.WriteAll,
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Document renders a questionnaire as indented JSON, the same payload the
// download and clipboard actions emit.
func Document(q fhir.Questionnaire) ([]byte, error) {
	out, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal questionnaire: %w", err)
	}
	return out, nil
}

// FileName derives the download file name from a form title, e.g.
// "Patient Intake" becomes "patient-intake.json".
func FileName(form model.FormMetadata) string {
	slug := fhir.Slugify(form.Title)
	if slug == "" {
		slug = "questionnaire"
	}
	return slug + ".json"
}

// WriteFile serializes the questionnaire into the output directory and
// returns the path written.
func (e *Exporter) WriteFile(form model.FormMetadata, q fhir.Questionnaire) (string, error) {
	doc, err := Document(q)
	if err != nil {
		return "", err
	}

	path := filepath.Join(e.outputDir, FileName(form))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}

	e.logger.Info("questionnaire exported",
		zap.String("path", path),
		zap.Int("bytes", len(doc)))
	return path, nil
}

// CopyToClipboard places the questionnaire JSON on the system clipboard.
// Clipboard access is best-effort; failures are logged and returned so the
// caller can decide whether to surface them.
func (e *Exporter) CopyToClipboard(q fhir.Questionnaire) error {
	doc, err := Document(q)
	if err != nil {
		return err
	}
	if err := e.writeClipboard(string(doc)); err != nil {
		e.logger.Warn("clipboard write failed", zap.Error(err))
		return fmt.Errorf("export: copy to clipboard: %w", err)
	}
	return nil
}
