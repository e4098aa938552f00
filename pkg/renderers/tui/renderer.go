// Package tui walks a form snapshot as a sequence of terminal prompts,
// routing every answer through the validation engine and collecting the
// responses the preview's save action surfaces. Prompting goes through the
// PromptDriver seam; the default driver is survey-backed.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/preview"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

const selectPlaceholder = "Select an option"

// Renderer implements render.Renderer for terminal-driven fill sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       NewSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is required")
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render prompts for every item in display order and returns the serialized
// fill result. Prefilled values from options are validated before prompting
// starts so stale errors surface immediately.
func (r *Renderer) Render(ctx context.Context, form model.FormMetadata, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	session := preview.NewSession()
	seedSession(session, form, options)

	if form.Title != "" {
		_ = r.driver.Info(ctx, form.Title)
	}
	if form.Description != "" {
		_ = r.driver.Info(ctx, form.Description)
	}

	for _, section := range form.Sections {
		header := section.Title
		if section.Description != "" {
			header = header + ": " + section.Description
		}
		if header != "" {
			_ = r.driver.Info(ctx, "## "+header)
		}
		for _, item := range section.Items {
			if err := r.promptItem(ctx, item, session); err != nil {
				return nil, err
			}
		}
	}

	return r.serialize(session)
}

func (r *Renderer) promptItem(ctx context.Context, item model.FormItem, session *preview.Session) error {
	var (
		value any
		err   error
	)

	switch item.Type {
	case model.ItemTypeString:
		value, err = r.promptString(ctx, item, session)
	case model.ItemTypeNumber:
		value, err = r.promptNumber(ctx, item, session)
	case model.ItemTypeChoice:
		value, err = r.promptChoice(ctx, item, session)
	case model.ItemTypeDate:
		value, err = r.promptDate(ctx, item, session)
	default:
		// Group items and unknown types have no control; children are not
		// descended into.
		return nil
	}
	if err != nil {
		return err
	}

	for _, message := range session.SetResponse(item, value) {
		_ = r.driver.Info(ctx, fmt.Sprintf("  ! %s", message))
	}
	return nil
}

func (r *Renderer) promptString(ctx context.Context, item model.FormItem, session *preview.Session) (any, error) {
	props := itemProperties(item)
	if props.MaxLength > 100 {
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: promptLabel(item),
			Default: priorString(session, item.ID),
			Help:    props.Hint,
		})
	}
	return r.driver.Input(ctx, InputConfig{
		Message: promptLabel(item),
		Default: priorString(session, item.ID),
		Help:    helpText(props),
	})
}

func (r *Renderer) promptNumber(ctx context.Context, item model.FormItem, session *preview.Session) (any, error) {
	props := itemProperties(item)
	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(item),
			Default: priorString(session, item.ID),
			Help:    numberHelp(props),
		})
		if err != nil {
			return nil, err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			return "", nil
		}

		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			_ = r.driver.Info(ctx, fmt.Sprintf("  ! %q is not a number", trimmed))
			continue
		}
		if props.Min != nil && parsed < *props.Min {
			_ = r.driver.Info(ctx, fmt.Sprintf("  ! value must be at least %v", *props.Min))
			continue
		}
		if props.Max != nil && parsed > *props.Max {
			_ = r.driver.Info(ctx, fmt.Sprintf("  ! value must be at most %v", *props.Max))
			continue
		}
		return trimmed, nil
	}
}

func (r *Renderer) promptChoice(ctx context.Context, item model.FormItem, session *preview.Session) (any, error) {
	props := itemProperties(item)
	if len(props.Options) == 0 {
		_ = r.driver.Info(ctx, fmt.Sprintf("  (no options defined for %q, skipping)", item.Text))
		return "", nil
	}

	if props.Multiple {
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  promptLabel(item),
			Options:  props.Options,
			Defaults: priorIndices(session, item.ID, props.Options),
			Help:     props.Hint,
		})
		if err != nil {
			return nil, err
		}
		selected := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(props.Options) {
				selected = append(selected, props.Options[idx])
			}
		}
		return selected, nil
	}

	// A leading placeholder entry keeps the question skippable.
	options := append([]string{selectPlaceholder}, props.Options...)
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      promptLabel(item),
		Options:      options,
		DefaultIndex: 1 + indexOf(props.Options, priorString(session, item.ID)),
		Help:         props.Hint,
	})
	if err != nil {
		return nil, err
	}
	if idx <= 0 || idx >= len(options) {
		return "", nil
	}
	return options[idx], nil
}

func (r *Renderer) promptDate(ctx context.Context, item model.FormItem, session *preview.Session) (any, error) {
	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(item),
			Default: priorString(session, item.ID),
			Help:    "YYYY-MM-DD",
		})
		if err != nil {
			return nil, err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			return "", nil
		}
		if _, err := time.Parse("2006-01-02", trimmed); err != nil {
			_ = r.driver.Info(ctx, fmt.Sprintf("  ! %q is not a valid date (want YYYY-MM-DD)", trimmed))
			continue
		}
		return trimmed, nil
	}
}

func (r *Renderer) serialize(session *preview.Session) ([]byte, error) {
	responses := session.Responses()
	errs := session.Errors()

	if r.outputFormat == OutputFormatPrettyText {
		var b strings.Builder
		for id, value := range responses {
			fmt.Fprintf(&b, "%s: %v\n", id, value)
		}
		for id, messages := range errs {
			fmt.Fprintf(&b, "%s: INVALID %s\n", id, strings.Join(messages, "; "))
		}
		return []byte(b.String()), nil
	}

	payload := map[string]any{
		"responses": responses,
	}
	if len(errs) > 0 {
		payload["errors"] = errs
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: serialize responses: %w", err)
	}
	return out, nil
}

func seedSession(session *preview.Session, form model.FormMetadata, options render.Options) {
	if len(options.Values) == 0 {
		return
	}
	for _, section := range form.Sections {
		for _, item := range section.Items {
			if value, ok := options.Values[item.ID]; ok {
				session.SetResponse(item, value)
			}
		}
	}
}

func promptLabel(item model.FormItem) string {
	if item.Required {
		return item.Text + " *"
	}
	return item.Text
}

func helpText(props model.ItemProperties) string {
	if props.Hint != "" {
		return props.Hint
	}
	return props.Placeholder
}

func numberHelp(props model.ItemProperties) string {
	var bounds []string
	if props.Min != nil {
		bounds = append(bounds, fmt.Sprintf("min %v", *props.Min))
	}
	if props.Max != nil {
		bounds = append(bounds, fmt.Sprintf("max %v", *props.Max))
	}
	if len(bounds) == 0 {
		return props.Hint
	}
	return strings.Join(bounds, ", ")
}

func itemProperties(item model.FormItem) model.ItemProperties {
	if item.Properties == nil {
		return model.ItemProperties{}
	}
	return *item.Properties
}

func priorString(session *preview.Session, itemID string) string {
	if value, ok := session.Response(itemID); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

func priorIndices(session *preview.Session, itemID string, options []string) []int {
	value, ok := session.Response(itemID)
	if !ok {
		return nil
	}
	selected, ok := value.([]string)
	if !ok {
		return nil
	}
	var out []int
	for i, option := range options {
		for _, s := range selected {
			if s == option {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
