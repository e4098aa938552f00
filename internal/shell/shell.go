// Package shell drives the interactive builder: a menu loop over the current
// form snapshot with builder, preview, and export views. Exactly one view is
// active at a time and switching views discards no state except transient
// alerts.
package shell

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

// View identifies which surface of the builder is active.
type View int

const (
	ViewBuilder View = iota
	ViewPreview
	ViewExport
)

func (v View) String() string {
	switch v {
	case ViewBuilder:
		return "builder"
	case ViewPreview:
		return "preview"
	case ViewExport:
		return "export"
	default:
		return "unknown"
	}
}

// Option configures a Shell.
type Option func(*Shell)

// WithDriver overrides the prompt driver.
func WithDriver(driver tui.PromptDriver) Option {
	return func(s *Shell) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithLogger sets the shell logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithForm seeds the session with an existing snapshot instead of the
// default empty form.
func WithForm(f model.FormMetadata) Option {
	return func(s *Shell) {
		s.form = model.CloneForm(f)
	}
}

// WithExporter overrides the exporter used by the export view.
func WithExporter(e *export.Exporter) Option {
	return func(s *Shell) {
		if e != nil {
			s.exporter = e
		}
	}
}

// WithRegistry supplies the renderer registry backing the preview view.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Shell) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithPreviewPath sets where the HTML preview file is written.
func WithPreviewPath(path string) Option {
	return func(s *Shell) {
		if path != "" {
			s.previewPath = path
		}
	}
}

// Shell owns the builder session state.
type Shell struct {
	driver   tui.PromptDriver
	logger   *zap.Logger
	exporter *export.Exporter
	registry *render.Registry

	form        model.FormMetadata
	view        View
	alerts      *alertCenter
	previewPath string
}

// New constructs a Shell with an empty default form.
func New(options ...Option) (*Shell, error) {
	s := &Shell{
		driver:   tui.NewSurveyDriver(),
		logger:   zap.NewNop(),
		exporter: export.New(),
		form:        form.NewForm(),
		view:        ViewBuilder,
		alerts:      newAlertCenter(),
		previewPath: defaultPreviewPath,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		return nil, errors.New("shell: prompt driver is required")
	}
	return s, nil
}

// Form returns the current snapshot.
func (s *Shell) Form() model.FormMetadata {
	return model.CloneForm(s.form)
}

// ActiveView reports which view the shell is showing.
func (s *Shell) ActiveView() View {
	return s.view
}

// Run executes the menu loop until the user quits or the context ends.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("builder session started", zap.String("form", s.form.Title))
	defer s.alerts.Dismiss()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if alert := s.alerts.Current(); alert != "" {
			_ = s.driver.Info(ctx, "* "+alert)
		}

		var (
			done bool
			err  error
		)
		switch s.view {
		case ViewBuilder:
			done, err = s.runBuilderMenu(ctx)
		case ViewPreview:
			err = s.runPreview(ctx)
			s.view = ViewBuilder
		case ViewExport:
			err = s.runExportMenu(ctx)
		default:
			return fmt.Errorf("shell: unknown view %d", s.view)
		}
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				s.logger.Info("builder session aborted")
				return nil
			}
			return err
		}
		if done {
			s.logger.Info("builder session finished", zap.String("form", s.form.Title))
			return nil
		}
	}
}

func (s *Shell) switchView(view View) {
	if view == s.view {
		return
	}
	s.alerts.Dismiss()
	s.logger.Debug("view switched",
		zap.String("from", s.view.String()),
		zap.String("to", view.String()))
	s.view = view
}

func (s *Shell) notify(message string) {
	s.alerts.Show(message, DefaultAlertDuration)
}
