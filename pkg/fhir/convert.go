// Package fhir maps the internal form model onto a FHIR Questionnaire
// resource. The mapping is one-way and lossy: validation rules, placeholder
// and hint properties, and nesting beyond one level of group children are not
// represented in the output, and no conformance check against the official
// FHIR specification is performed.
package fhir

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Option adjusts conversion behaviour. The defaults generate a fresh v4 UUID
// resource id and stamp the current UTC time; tests pin both to assert the
// rest of the document is deterministic.
type Option func(*config)

type config struct {
	newID func() string
	clock func() time.Time
}

// WithID overrides resource id generation.
func WithID(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

// WithClock overrides the timestamp source used for Questionnaire.date.
func WithClock(fn func() time.Time) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.clock = fn
		}
	}
}

// Convert maps a form snapshot to a FHIR Questionnaire. Each section becomes
// a top-level group item whose linkId is the section id; section items are
// converted in display order. Status is always "draft" and the version is
// copied verbatim from the form.
func Convert(form model.FormMetadata, options ...Option) Questionnaire {
	cfg := config{
		newID: uuid.NewString,
		clock: time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	items := make([]QuestionnaireItem, 0, len(form.Sections))
	for _, section := range form.Sections {
		items = append(items, QuestionnaireItem{
			LinkID: section.ID,
			Text:   section.Title,
			Type:   "group",
			Item:   convertItems(section.Items),
		})
	}

	return Questionnaire{
		ResourceType: "Questionnaire",
		ID:           cfg.newID(),
		Name:         Slugify(form.Title),
		Title:        form.Title,
		Status:       "draft",
		Date:         cfg.clock().UTC().Format(time.RFC3339),
		Version:      form.Version,
		Description:  form.Description,
		Item:         items,
	}
}

func convertItems(items []model.FormItem) []QuestionnaireItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]QuestionnaireItem, 0, len(items))
	for _, item := range items {
		out = append(out, convertItem(item))
	}
	return out
}

func convertItem(item model.FormItem) QuestionnaireItem {
	converted := QuestionnaireItem{
		LinkID:   item.ID,
		Text:     item.Text,
		Type:     mapType(item.Type),
		Required: item.Required,
	}

	if item.Type == model.ItemTypeChoice && item.Properties != nil && len(item.Properties.Options) > 0 {
		converted.AnswerOption = make([]AnswerOption, 0, len(item.Properties.Options))
		for _, option := range item.Properties.Options {
			converted.AnswerOption = append(converted.AnswerOption, AnswerOption{ValueString: option})
		}
		if item.Properties.Multiple {
			converted.Repeats = true
		}
	}

	// One level of group nesting only; deeper children are dropped, the
	// documented gap for this mapping.
	if item.Type == model.ItemTypeGroup && len(item.Children) > 0 {
		children := make([]QuestionnaireItem, 0, len(item.Children))
		for _, child := range item.Children {
			flat := child
			flat.Children = nil
			children = append(children, convertItem(flat))
		}
		converted.Item = children
	}

	return converted
}

// mapType translates builder item types into FHIR item types. Unrecognised
// types fall open to "string" so conversion never fails on stale documents.
func mapType(t model.ItemType) string {
	switch t {
	case model.ItemTypeString:
		return "string"
	case model.ItemTypeNumber:
		return "integer"
	case model.ItemTypeChoice:
		return "choice"
	case model.ItemTypeDate:
		return "date"
	case model.ItemTypeGroup:
		return "group"
	default:
		return "string"
	}
}
