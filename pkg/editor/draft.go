// Package editor implements the working-copy workflow for editing a single
// question. A Draft wraps a deep copy of the item so every mutation stays
// invisible to the live form until Save hands the finished item back to the
// commit callback; Cancel is simply dropping the draft.
package editor

import (
	"errors"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// ErrEmptyText rejects a save when the question text is blank.
var ErrEmptyText = errors.New("editor: question text is required")

// CommitFunc receives the edited item on save. The shell wires this to the
// form model's UpdateItem for the section the item belongs to.
type CommitFunc func(model.FormItem)

// Draft is the mutable working copy of one item.
type Draft struct {
	item      model.FormItem
	sectionID string
}

// NewDraft copies item into a fresh draft. Properties and validation are
// initialised so facet edits never have to nil-check.
func NewDraft(sectionID string, item model.FormItem) *Draft {
	copied := model.CloneItem(item)
	if copied.Properties == nil {
		copied.Properties = &model.ItemProperties{}
	}
	if copied.Validation == nil {
		copied.Validation = []model.ValidationRule{}
	}
	return &Draft{item: copied, sectionID: sectionID}
}

// SectionID reports the section the item belongs to; UpdateItem needs it at
// commit time.
func (d *Draft) SectionID() string {
	return d.sectionID
}

// Item returns the current working copy.
func (d *Draft) Item() model.FormItem {
	return d.item
}

// SetText updates the question text.
func (d *Draft) SetText(text string) {
	d.item.Text = text
}

// SetType updates the question type.
func (d *Draft) SetType(t model.ItemType) {
	d.item.Type = t
}

// SetRequired toggles the required flag.
func (d *Draft) SetRequired(required bool) {
	d.item.Required = required
}

// SetPlaceholder updates the placeholder property.
func (d *Draft) SetPlaceholder(text string) {
	d.item.Properties.Placeholder = text
}

// SetHint updates the help text property.
func (d *Draft) SetHint(text string) {
	d.item.Properties.Hint = text
}

// SetMultiple toggles multi-select for choice questions.
func (d *Draft) SetMultiple(multiple bool) {
	d.item.Properties.Multiple = multiple
}

// Options returns the current choice option list.
func (d *Draft) Options() []string {
	return d.item.Properties.Options
}

// AddOption appends a choice option.
func (d *Draft) AddOption(option string) {
	d.item.Properties.Options = append(d.item.Properties.Options, option)
}

// SetOption replaces the option at index; out-of-range indices are ignored.
func (d *Draft) SetOption(index int, option string) {
	if index < 0 || index >= len(d.item.Properties.Options) {
		return
	}
	d.item.Properties.Options[index] = option
}

// RemoveOption deletes the option at index; out-of-range indices are ignored.
func (d *Draft) RemoveOption(index int) {
	options := d.item.Properties.Options
	if index < 0 || index >= len(options) {
		return
	}
	d.item.Properties.Options = append(options[:index], options[index+1:]...)
}

// Rules returns the current validation rule list.
func (d *Draft) Rules() []model.ValidationRule {
	return d.item.Validation
}

// AddRule appends a new rule with the default kind and message.
func (d *Draft) AddRule() {
	d.item.Validation = append(d.item.Validation, model.ValidationRule{
		Type:    model.RuleRequired,
		Params:  map[string]string{},
		Message: validation.RequiredMessage,
	})
}

// UpdateRule merges non-zero fields into the rule at index; out-of-range
// indices are ignored.
func (d *Draft) UpdateRule(index int, update RuleUpdate) {
	if index < 0 || index >= len(d.item.Validation) {
		return
	}
	rule := &d.item.Validation[index]
	if update.Type != nil {
		rule.Type = *update.Type
	}
	if update.Value != nil {
		if rule.Params == nil {
			rule.Params = map[string]string{}
		}
		rule.Params["value"] = *update.Value
	}
	if update.Message != nil {
		rule.Message = *update.Message
	}
}

// RemoveRule deletes the rule at index; out-of-range indices are ignored.
func (d *Draft) RemoveRule(index int) {
	rules := d.item.Validation
	if index < 0 || index >= len(rules) {
		return
	}
	d.item.Validation = append(rules[:index], rules[index+1:]...)
}

// RuleUpdate carries partial rule edits; nil fields are left untouched.
type RuleUpdate struct {
	Type    *string
	Value   *string
	Message *string
}

// Save validates the draft and hands the item to commit. Blank question text
// rejects the save with ErrEmptyText and commits nothing.
func (d *Draft) Save(commit CommitFunc) error {
	if strings.TrimSpace(d.item.Text) == "" {
		return ErrEmptyText
	}
	if commit != nil {
		commit(model.CloneItem(d.item))
	}
	return nil
}
