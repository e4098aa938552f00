package editor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func baseItem() model.FormItem {
	return model.FormItem{
		ID:   "item-1",
		Type: model.ItemTypeString,
		Text: "Full Name",
	}
}

func TestDraftEditsDoNotTouchOriginal(t *testing.T) {
	original := baseItem()
	draft := NewDraft("section-1", original)

	draft.SetText("Changed")
	draft.SetRequired(true)
	draft.SetPlaceholder("Jane Doe")

	if original.Text != "Full Name" || original.Required || original.Properties != nil {
		t.Errorf("original mutated: %+v", original)
	}
	got := draft.Item()
	if got.Text != "Changed" || !got.Required || got.Properties.Placeholder != "Jane Doe" {
		t.Errorf("draft = %+v", got)
	}
}

func TestSaveCommitsFullItem(t *testing.T) {
	draft := NewDraft("section-1", baseItem())
	draft.SetText("What is your name?")
	draft.SetHint("Legal name as on file")

	var committed model.FormItem
	err := draft.Save(func(item model.FormItem) { committed = item })
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if committed.Text != "What is your name?" {
		t.Errorf("committed text = %q", committed.Text)
	}
	if committed.Properties == nil || committed.Properties.Hint != "Legal name as on file" {
		t.Errorf("committed properties = %+v", committed.Properties)
	}
}

func TestSaveRejectsBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		draft := NewDraft("section-1", baseItem())
		draft.SetText(text)

		called := false
		err := draft.Save(func(model.FormItem) { called = true })
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("Save(%q) error = %v, want ErrEmptyText", text, err)
		}
		if called {
			t.Errorf("Save(%q) committed despite empty text", text)
		}
	}
}

func TestOptionListEditing(t *testing.T) {
	draft := NewDraft("section-1", model.FormItem{
		ID:   "item-1",
		Type: model.ItemTypeChoice,
		Text: "Favorite Color",
	})

	draft.AddOption("Red")
	draft.AddOption("Gren")
	draft.AddOption("Blue")
	draft.SetOption(1, "Green")
	draft.RemoveOption(2)

	if diff := cmp.Diff([]string{"Red", "Green"}, draft.Options()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	// Out-of-range indices are ignored.
	draft.SetOption(9, "Purple")
	draft.RemoveOption(-1)
	if diff := cmp.Diff([]string{"Red", "Green"}, draft.Options()); diff != "" {
		t.Errorf("options changed by out-of-range edit (-want +got):\n%s", diff)
	}
}

func TestAddRuleDefaultsToRequired(t *testing.T) {
	draft := NewDraft("section-1", baseItem())
	draft.AddRule()

	rules := draft.Rules()
	if len(rules) != 1 {
		t.Fatalf("rules = %d", len(rules))
	}
	if rules[0].Type != model.RuleRequired {
		t.Errorf("type = %q", rules[0].Type)
	}
	if rules[0].Message != validation.RequiredMessage {
		t.Errorf("message = %q", rules[0].Message)
	}
}

func TestUpdateRule(t *testing.T) {
	draft := NewDraft("section-1", baseItem())
	draft.AddRule()

	ruleType := model.RuleMinLength
	value := "3"
	message := "too short"
	draft.UpdateRule(0, RuleUpdate{Type: &ruleType, Value: &value, Message: &message})

	rule := draft.Rules()[0]
	if rule.Type != model.RuleMinLength || rule.Params["value"] != "3" || rule.Message != "too short" {
		t.Errorf("rule = %+v", rule)
	}

	// Unknown index is a no-op.
	draft.UpdateRule(5, RuleUpdate{Message: &message})
	if got := len(draft.Rules()); got != 1 {
		t.Errorf("rules = %d", got)
	}
}

func TestRemoveRule(t *testing.T) {
	draft := NewDraft("section-1", baseItem())
	draft.AddRule()
	draft.AddRule()

	draft.RemoveRule(0)
	if got := len(draft.Rules()); got != 1 {
		t.Errorf("rules = %d", got)
	}
	draft.RemoveRule(9)
	if got := len(draft.Rules()); got != 1 {
		t.Errorf("rules changed by out-of-range removal: %d", got)
	}
}

func TestSectionID(t *testing.T) {
	draft := NewDraft("section-42", baseItem())
	if got := draft.SectionID(); got != "section-42" {
		t.Errorf("SectionID() = %q", got)
	}
}
