package shell

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

const (
	actionFormDetails    = "Edit form details"
	actionAddSection     = "Add section"
	actionEditSection    = "Edit section"
	actionDeleteSection  = "Delete section"
	actionAddQuestion    = "Add question"
	actionEditQuestion   = "Edit question"
	actionDeleteQuestion = "Delete question"
	actionMoveQuestion   = "Move question"
	actionPreview        = "Preview form"
	actionExport         = "Export FHIR"
	actionQuit           = "Quit"
)

var builderActions = []string{
	actionFormDetails,
	actionAddSection,
	actionEditSection,
	actionDeleteSection,
	actionAddQuestion,
	actionEditQuestion,
	actionDeleteQuestion,
	actionMoveQuestion,
	actionPreview,
	actionExport,
	actionQuit,
}

func (s *Shell) runBuilderMenu(ctx context.Context) (bool, error) {
	_ = s.driver.Info(ctx, s.summaryLine())

	idx, err := s.driver.Select(ctx, tui.SelectConfig{
		Message:  "Builder",
		Options:  builderActions,
		PageSize: len(builderActions),
	})
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(builderActions) {
		return false, nil
	}

	switch builderActions[idx] {
	case actionFormDetails:
		return false, s.editFormDetails(ctx)
	case actionAddSection:
		var section model.FormSection
		s.form, section = form.AddSection(s.form)
		s.logger.Info("section added", zap.String("section", section.ID))
		s.notify("Section added")
		return false, nil
	case actionEditSection:
		return false, s.editSection(ctx)
	case actionDeleteSection:
		return false, s.deleteSection(ctx)
	case actionAddQuestion:
		return false, s.addQuestion(ctx)
	case actionEditQuestion:
		return false, s.editQuestion(ctx)
	case actionDeleteQuestion:
		return false, s.deleteQuestion(ctx)
	case actionMoveQuestion:
		return false, s.moveQuestion(ctx)
	case actionPreview:
		s.switchView(ViewPreview)
		return false, nil
	case actionExport:
		s.switchView(ViewExport)
		return false, nil
	case actionQuit:
		return true, nil
	}
	return false, nil
}

func (s *Shell) summaryLine() string {
	items := 0
	for _, section := range s.form.Sections {
		items += len(section.Items)
	}
	return fmt.Sprintf("%s (v%s) - %d section(s), %d question(s)",
		s.form.Title, s.form.Version, len(s.form.Sections), items)
}

func (s *Shell) editFormDetails(ctx context.Context) error {
	title, err := s.driver.Input(ctx, tui.InputConfig{
		Message: "Form title",
		Default: s.form.Title,
	})
	if err != nil {
		return err
	}
	description, err := s.driver.Input(ctx, tui.InputConfig{
		Message: "Description",
		Default: s.form.Description,
	})
	if err != nil {
		return err
	}
	version, err := s.driver.Input(ctx, tui.InputConfig{
		Message: "Version",
		Default: s.form.Version,
	})
	if err != nil {
		return err
	}

	s.form = form.UpdateMetadata(s.form, form.FormUpdate{
		Title:       &title,
		Description: &description,
		Version:     &version,
	})
	s.notify("Form saved successfully")
	return nil
}

func (s *Shell) editSection(ctx context.Context) error {
	section, ok, err := s.pickSection(ctx)
	if err != nil || !ok {
		return err
	}

	title, err := s.driver.Input(ctx, tui.InputConfig{
		Message: "Section title",
		Default: section.Title,
	})
	if err != nil {
		return err
	}
	description, err := s.driver.Input(ctx, tui.InputConfig{
		Message: "Section description",
		Default: section.Description,
	})
	if err != nil {
		return err
	}

	s.form = form.UpdateSection(s.form, section.ID, form.SectionUpdate{
		Title:       &title,
		Description: &description,
	})
	s.notify("Section updated")
	return nil
}

func (s *Shell) deleteSection(ctx context.Context) error {
	section, ok, err := s.pickSection(ctx)
	if err != nil || !ok {
		return err
	}

	confirmed, err := s.driver.Confirm(ctx, tui.ConfirmConfig{
		Message: fmt.Sprintf("Delete section %q and its %d question(s)?", section.Title, len(section.Items)),
	})
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	s.form = form.DeleteSection(s.form, section.ID)
	s.logger.Info("section deleted", zap.String("section", section.ID))
	s.notify("Section deleted")
	return nil
}

func (s *Shell) addQuestion(ctx context.Context) error {
	section, ok, err := s.pickSection(ctx)
	if err != nil || !ok {
		return err
	}

	next, item, added := form.AddItem(s.form, section.ID)
	if !added {
		return nil
	}
	s.form = next
	s.logger.Info("question added",
		zap.String("section", section.ID),
		zap.String("item", item.ID))

	// Drop straight into the editor so the placeholder text gets replaced.
	return s.editDraft(ctx, section.ID, item)
}

func (s *Shell) editQuestion(ctx context.Context) error {
	section, ok, err := s.pickSection(ctx)
	if err != nil || !ok {
		return err
	}
	index, ok, err := s.pickItem(ctx, section)
	if err != nil || !ok {
		return err
	}
	return s.editDraft(ctx, section.ID, section.Items[index])
}

func (s *Shell) deleteQuestion(ctx context.Context) error {
	section, ok, err := s.pickSection(ctx)
	if err != nil || !ok {
		return err
	}
	index, ok, err := s.pickItem(ctx, section)
	if err != nil || !ok {
		return err
	}
	item := section.Items[index]

	confirmed, err := s.driver.Confirm(ctx, tui.ConfirmConfig{
		Message: fmt.Sprintf("Delete question %q?", item.Text),
	})
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	s.form = form.DeleteItem(s.form, section.ID, item.ID)
	s.logger.Info("question deleted",
		zap.String("section", section.ID),
		zap.String("item", item.ID))
	s.notify("Question deleted")
	return nil
}

func (s *Shell) moveQuestion(ctx context.Context) error {
	source, ok, err := s.pickSection(ctx)
	if err != nil || !ok {
		return err
	}
	sourceIndex, ok, err := s.pickItem(ctx, source)
	if err != nil || !ok {
		return err
	}

	dest, ok, err := s.pickSectionWithPrompt(ctx, "Move to section")
	if err != nil || !ok {
		return err
	}

	positions := len(dest.Items)
	if dest.ID == source.ID {
		positions--
	}
	destIndex := positions
	if positions > 0 {
		raw, err := s.driver.Input(ctx, tui.InputConfig{
			Message: fmt.Sprintf("Position (0-%d)", positions),
			Default: strconv.Itoa(positions),
		})
		if err != nil {
			return err
		}
		if parsed, perr := strconv.Atoi(raw); perr == nil {
			destIndex = parsed
		}
	}

	s.form = form.MoveItem(s.form, source.ID, sourceIndex, dest.ID, destIndex)
	s.logger.Info("question moved",
		zap.String("from", source.ID),
		zap.String("to", dest.ID),
		zap.Int("position", destIndex))
	s.notify("Question moved")
	return nil
}

func (s *Shell) pickSection(ctx context.Context) (model.FormSection, bool, error) {
	return s.pickSectionWithPrompt(ctx, "Section")
}

func (s *Shell) pickSectionWithPrompt(ctx context.Context, message string) (model.FormSection, bool, error) {
	if len(s.form.Sections) == 0 {
		_ = s.driver.Info(ctx, "No sections yet. Add one first.")
		return model.FormSection{}, false, nil
	}

	labels := make([]string, len(s.form.Sections))
	for i, section := range s.form.Sections {
		labels[i] = fmt.Sprintf("%s (%d question(s))", section.Title, len(section.Items))
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{
		Message: message,
		Options: labels,
	})
	if err != nil {
		return model.FormSection{}, false, err
	}
	if idx < 0 || idx >= len(s.form.Sections) {
		return model.FormSection{}, false, nil
	}
	return s.form.Sections[idx], true, nil
}

func (s *Shell) pickItem(ctx context.Context, section model.FormSection) (int, bool, error) {
	if len(section.Items) == 0 {
		_ = s.driver.Info(ctx, "No questions in this section yet.")
		return 0, false, nil
	}

	labels := make([]string, len(section.Items))
	for i, item := range section.Items {
		labels[i] = fmt.Sprintf("%s [%s]", item.Text, item.Type)
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{
		Message: "Question",
		Options: labels,
	})
	if err != nil {
		return 0, false, err
	}
	if idx < 0 || idx >= len(section.Items) {
		return 0, false, nil
	}
	return idx, true, nil
}
