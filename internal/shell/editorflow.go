package shell

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

var itemTypes = []model.ItemType{
	model.ItemTypeString,
	model.ItemTypeNumber,
	model.ItemTypeChoice,
	model.ItemTypeDate,
	model.ItemTypeGroup,
}

var ruleTypes = []string{
	model.RuleRequired,
	model.RuleMinLength,
	model.RuleMaxLength,
	model.RulePattern,
}

const (
	editActionText        = "Edit question text"
	editActionType        = "Change type"
	editActionRequired    = "Toggle required"
	editActionPlaceholder = "Edit placeholder"
	editActionHint        = "Edit hint"
	editActionOptions     = "Manage options"
	editActionRules       = "Manage validation rules"
	editActionSave        = "Save"
	editActionCancel      = "Cancel"
)

// editDraft runs the working-copy editor loop. The live form only changes
// when the user saves; cancel discards every pending edit.
func (s *Shell) editDraft(ctx context.Context, sectionID string, item model.FormItem) error {
	draft := editor.NewDraft(sectionID, item)

	for {
		current := draft.Item()
		_ = s.driver.Info(ctx, fmt.Sprintf("Editing %q [%s] required=%t", current.Text, current.Type, current.Required))

		actions := []string{editActionText, editActionType, editActionRequired, editActionPlaceholder, editActionHint}
		if current.Type == model.ItemTypeChoice {
			actions = append(actions, editActionOptions)
		}
		actions = append(actions, editActionRules, editActionSave, editActionCancel)

		idx, err := s.driver.Select(ctx, tui.SelectConfig{
			Message:  "Question editor",
			Options:  actions,
			PageSize: len(actions),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		switch actions[idx] {
		case editActionText:
			text, err := s.driver.Input(ctx, tui.InputConfig{
				Message: "Question text",
				Default: current.Text,
			})
			if err != nil {
				return err
			}
			draft.SetText(text)
		case editActionType:
			labels := make([]string, len(itemTypes))
			for i, t := range itemTypes {
				labels[i] = string(t)
			}
			typeIdx, err := s.driver.Select(ctx, tui.SelectConfig{
				Message:      "Question type",
				Options:      labels,
				DefaultIndex: typeIndex(current.Type),
			})
			if err != nil {
				return err
			}
			if typeIdx >= 0 && typeIdx < len(itemTypes) {
				draft.SetType(itemTypes[typeIdx])
			}
		case editActionRequired:
			draft.SetRequired(!current.Required)
		case editActionPlaceholder:
			text, err := s.driver.Input(ctx, tui.InputConfig{
				Message: "Placeholder",
				Default: placeholderOf(current),
			})
			if err != nil {
				return err
			}
			draft.SetPlaceholder(text)
		case editActionHint:
			text, err := s.driver.Input(ctx, tui.InputConfig{
				Message: "Hint",
				Default: hintOf(current),
			})
			if err != nil {
				return err
			}
			draft.SetHint(text)
		case editActionOptions:
			if err := s.editOptions(ctx, draft); err != nil {
				return err
			}
		case editActionRules:
			if err := s.editRules(ctx, draft); err != nil {
				return err
			}
		case editActionSave:
			err := draft.Save(func(saved model.FormItem) {
				s.form = form.UpdateItem(s.form, sectionID, saved)
			})
			if errors.Is(err, editor.ErrEmptyText) {
				_ = s.driver.Info(ctx, "Question text cannot be empty.")
				continue
			}
			if err != nil {
				return err
			}
			s.logger.Info("question saved",
				zap.String("section", sectionID),
				zap.String("item", item.ID))
			s.notify("Question updated successfully")
			return nil
		case editActionCancel:
			return nil
		}
	}
}

func (s *Shell) editOptions(ctx context.Context, draft *editor.Draft) error {
	for {
		options := draft.Options()
		_ = s.driver.Info(ctx, fmt.Sprintf("%d option(s): %v", len(options), options))

		actions := []string{"Add option", "Toggle multiple", "Done"}
		if len(options) > 0 {
			actions = []string{"Add option", "Edit option", "Remove option", "Toggle multiple", "Done"}
		}
		idx, err := s.driver.Select(ctx, tui.SelectConfig{
			Message: "Options",
			Options: actions,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		switch actions[idx] {
		case "Add option":
			text, err := s.driver.Input(ctx, tui.InputConfig{Message: "Option label"})
			if err != nil {
				return err
			}
			if text != "" {
				draft.AddOption(text)
			}
		case "Edit option":
			optIdx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Option", Options: options})
			if err != nil {
				return err
			}
			if optIdx < 0 || optIdx >= len(options) {
				continue
			}
			text, err := s.driver.Input(ctx, tui.InputConfig{Message: "Option label", Default: options[optIdx]})
			if err != nil {
				return err
			}
			draft.SetOption(optIdx, text)
		case "Remove option":
			optIdx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Option", Options: options})
			if err != nil {
				return err
			}
			draft.RemoveOption(optIdx)
		case "Toggle multiple":
			multiple := false
			if props := draft.Item().Properties; props != nil {
				multiple = props.Multiple
			}
			draft.SetMultiple(!multiple)
		case "Done":
			return nil
		}
	}
}

func (s *Shell) editRules(ctx context.Context, draft *editor.Draft) error {
	for {
		rules := draft.Rules()
		labels := make([]string, len(rules))
		for i, rule := range rules {
			labels[i] = fmt.Sprintf("%s %v - %s", rule.Type, rule.Params, rule.Message)
		}
		if len(labels) > 0 {
			_ = s.driver.Info(ctx, fmt.Sprintf("Rules: %v", labels))
		}

		actions := []string{"Add rule", "Done"}
		if len(rules) > 0 {
			actions = []string{"Add rule", "Edit rule", "Remove rule", "Done"}
		}
		idx, err := s.driver.Select(ctx, tui.SelectConfig{
			Message: "Validation rules",
			Options: actions,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		switch actions[idx] {
		case "Add rule":
			draft.AddRule()
		case "Edit rule":
			ruleIdx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Rule", Options: labels})
			if err != nil {
				return err
			}
			if ruleIdx < 0 || ruleIdx >= len(rules) {
				continue
			}
			if err := s.editRule(ctx, draft, ruleIdx, rules[ruleIdx]); err != nil {
				return err
			}
		case "Remove rule":
			ruleIdx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Rule", Options: labels})
			if err != nil {
				return err
			}
			draft.RemoveRule(ruleIdx)
		case "Done":
			return nil
		}
	}
}

func (s *Shell) editRule(ctx context.Context, draft *editor.Draft, index int, rule model.ValidationRule) error {
	typeIdx, err := s.driver.Select(ctx, tui.SelectConfig{
		Message:      "Rule type",
		Options:      ruleTypes,
		DefaultIndex: ruleTypeIndex(rule.Type),
	})
	if err != nil {
		return err
	}

	update := editor.RuleUpdate{}
	if typeIdx >= 0 && typeIdx < len(ruleTypes) {
		update.Type = &ruleTypes[typeIdx]
	}

	ruleType := rule.Type
	if update.Type != nil {
		ruleType = *update.Type
	}
	if ruleType != model.RuleRequired {
		value, err := s.driver.Input(ctx, tui.InputConfig{
			Message: "Rule value",
			Default: rule.Params["value"],
			Help:    "length bound or regular expression",
		})
		if err != nil {
			return err
		}
		update.Value = &value
	}

	message, err := s.driver.Input(ctx, tui.InputConfig{
		Message: "Error message",
		Default: rule.Message,
	})
	if err != nil {
		return err
	}
	update.Message = &message

	draft.UpdateRule(index, update)
	return nil
}

func typeIndex(t model.ItemType) int {
	for i, candidate := range itemTypes {
		if candidate == t {
			return i
		}
	}
	return 0
}

func ruleTypeIndex(t string) int {
	for i, candidate := range ruleTypes {
		if candidate == t {
			return i
		}
	}
	return 0
}

func placeholderOf(item model.FormItem) string {
	if item.Properties == nil {
		return ""
	}
	return item.Properties.Placeholder
}

func hintOf(item model.FormItem) string {
	if item.Properties == nil {
		return ""
	}
	return item.Properties.Hint
}
