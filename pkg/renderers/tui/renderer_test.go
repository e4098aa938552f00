package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

type scriptedDriver struct {
	inputs    []string
	selects   []int
	multis    [][]int
	textAreas []string
	infos     []string
}

func (d *scriptedDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", nil
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (d *scriptedDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, nil
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if len(d.multis) == 0 {
		return nil, nil
	}
	out := d.multis[0]
	d.multis = d.multis[1:]
	return out, nil
}

func (d *scriptedDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if len(d.textAreas) == 0 {
		return "", nil
	}
	out := d.textAreas[0]
	d.textAreas = d.textAreas[1:]
	return out, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func sampleForm() model.FormMetadata {
	max := 5.0
	return model.FormMetadata{
		Title:   "Patient Intake",
		Version: "1.0",
		Sections: []model.FormSection{
			{
				ID:    "section-1",
				Title: "Demographics",
				Items: []model.FormItem{
					{
						ID:       "item-name",
						Type:     model.ItemTypeString,
						Text:     "Full Name",
						Required: true,
					},
					{
						ID:   "item-children",
						Type: model.ItemTypeNumber,
						Text: "Number of Children",
						Properties: &model.ItemProperties{
							Max: &max,
						},
					},
					{
						ID:   "item-color",
						Type: model.ItemTypeChoice,
						Text: "Favorite Color",
						Properties: &model.ItemProperties{
							Options: []string{"Red", "Green", "Blue"},
						},
					},
					{
						ID:   "item-dob",
						Type: model.ItemTypeDate,
						Text: "Date of Birth",
					},
				},
			},
		},
	}
}

func TestRendererFillFlow(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Jane Doe", "2", "1990-04-01"},
		selects: []int{3}, // "Blue" behind the placeholder entry
	}

	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := r.Render(context.Background(), sampleForm(), render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var payload struct {
		Responses map[string]any      `json:"responses"`
		Errors    map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := map[string]any{
		"item-name":     "Jane Doe",
		"item-children": "2",
		"item-color":    "Blue",
		"item-dob":      "1990-04-01",
	}
	if diff := cmp.Diff(want, payload.Responses); diff != "" {
		t.Errorf("responses mismatch (-want +got):\n%s", diff)
	}
	if len(payload.Errors) != 0 {
		t.Errorf("expected no errors, got %v", payload.Errors)
	}
}

func TestRendererRequiredFieldLeftEmpty(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"", "", ""},
		selects: []int{0}, // placeholder, no answer
	}

	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := r.Render(context.Background(), sampleForm(), render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var payload struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got := payload.Errors["item-name"]; len(got) != 1 || got[0] != "This field is required" {
		t.Errorf("item-name errors = %v, want required message", got)
	}

	var surfaced bool
	for _, msg := range driver.infos {
		if strings.Contains(msg, "This field is required") {
			surfaced = true
			break
		}
	}
	if !surfaced {
		t.Error("required message was not surfaced through the driver")
	}
}

func TestRendererNumberReprompt(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Jane", "abc", "9", "3", "1990-04-01"},
		selects: []int{1},
	}

	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := r.Render(context.Background(), sampleForm(), render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var payload struct {
		Responses map[string]any `json:"responses"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got := payload.Responses["item-children"]; got != "3" {
		t.Errorf("item-children = %v, want %q after re-prompt", got, "3")
	}

	var badValue, tooLarge bool
	for _, msg := range driver.infos {
		if strings.Contains(msg, "is not a number") {
			badValue = true
		}
		if strings.Contains(msg, "at most") {
			tooLarge = true
		}
	}
	if !badValue || !tooLarge {
		t.Errorf("re-prompt notices missing: badValue=%v tooLarge=%v, infos=%v", badValue, tooLarge, driver.infos)
	}
}

func TestRendererMultiSelect(t *testing.T) {
	form := model.FormMetadata{
		Title: "Survey",
		Sections: []model.FormSection{{
			ID:    "section-1",
			Title: "Preferences",
			Items: []model.FormItem{{
				ID:   "item-colors",
				Type: model.ItemTypeChoice,
				Text: "Colors",
				Properties: &model.ItemProperties{
					Options:  []string{"Red", "Green", "Blue"},
					Multiple: true,
				},
			}},
		}},
	}

	driver := &scriptedDriver{multis: [][]int{{0, 2}}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := r.Render(context.Background(), form, render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var payload struct {
		Responses map[string][]string `json:"responses"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if diff := cmp.Diff([]string{"Red", "Blue"}, payload.Responses["item-colors"]); diff != "" {
		t.Errorf("selections mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererSkipsChoiceWithoutOptions(t *testing.T) {
	form := model.FormMetadata{
		Title: "Survey",
		Sections: []model.FormSection{{
			ID:    "section-1",
			Title: "Empty",
			Items: []model.FormItem{{
				ID:   "item-empty",
				Type: model.ItemTypeChoice,
				Text: "Pick one",
			}},
		}},
	}

	driver := &scriptedDriver{}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := r.Render(context.Background(), form, render.Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var skipped bool
	for _, msg := range driver.infos {
		if strings.Contains(msg, "no options defined") {
			skipped = true
			break
		}
	}
	if !skipped {
		t.Errorf("expected skip notice, infos = %v", driver.infos)
	}
}

func TestRendererContentType(t *testing.T) {
	jsonRenderer, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := jsonRenderer.ContentType(); got != "application/json" {
		t.Errorf("ContentType() = %q", got)
	}

	textRenderer, err := New(WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := textRenderer.ContentType(); got != "text/plain" {
		t.Errorf("ContentType() = %q", got)
	}
}
