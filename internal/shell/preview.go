package shell

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

const defaultPreviewPath = "preview.html"

// runPreview lets the user exercise the form the way a respondent would.
// Responses live only for the duration of the preview; leaving the view
// discards them.
func (s *Shell) runPreview(ctx context.Context) error {
	actions := []string{"Fill interactively", "Write HTML preview", "Back"}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{
		Message: "Preview",
		Options: actions,
	})
	if err != nil {
		return err
	}

	switch {
	case idx == 0:
		return s.fillInteractively(ctx)
	case idx == 1:
		return s.writeHTMLPreview(ctx)
	default:
		return nil
	}
}

func (s *Shell) fillInteractively(ctx context.Context) error {
	r, err := tui.New(tui.WithPromptDriver(s.driver))
	if err != nil {
		return fmt.Errorf("shell: preview renderer: %w", err)
	}

	out, err := r.Render(ctx, s.form, render.Options{})
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return nil
		}
		return err
	}
	return s.driver.Info(ctx, string(out))
}

func (s *Shell) writeHTMLPreview(ctx context.Context) error {
	if s.registry == nil || !s.registry.Has("html") {
		_ = s.driver.Info(ctx, "HTML renderer is not configured.")
		return nil
	}
	renderer, err := s.registry.Get("html")
	if err != nil {
		return fmt.Errorf("shell: html renderer: %w", err)
	}

	out, err := renderer.Render(ctx, s.form, render.Options{})
	if err != nil {
		return fmt.Errorf("shell: render html preview: %w", err)
	}
	if err := os.WriteFile(s.previewPath, out, 0o644); err != nil {
		return fmt.Errorf("shell: write html preview: %w", err)
	}

	s.logger.Info("html preview written",
		zap.String("path", s.previewPath),
		zap.Int("bytes", len(out)))
	s.notify("Preview written to " + s.previewPath)
	return nil
}
