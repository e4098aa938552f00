package shell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/fhir"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

const copiedNoticeDuration = 2 * time.Second

// runExportMenu shows the FHIR conversion of the current snapshot with a
// structural summary, the raw JSON, and download/copy actions.
func (s *Shell) runExportMenu(ctx context.Context) error {
	q := fhir.Convert(s.form)

	actions := []string{"Show structure", "Show raw JSON", "Download", "Copy to clipboard", "Back to builder"}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{
		Message:  "Export - " + export.FileName(s.form),
		Options:  actions,
		PageSize: len(actions),
	})
	if err != nil {
		return err
	}

	switch {
	case idx == 0:
		return s.driver.Info(ctx, structureSummary(q))
	case idx == 1:
		doc, err := export.Document(q)
		if err != nil {
			return err
		}
		return s.driver.Info(ctx, string(doc))
	case idx == 2:
		path, err := s.exporter.WriteFile(s.form, q)
		if err != nil {
			s.logger.Error("export failed", zap.Error(err))
			_ = s.driver.Info(ctx, "Export failed: "+err.Error())
			return nil
		}
		s.notify("Saved to " + path)
		return nil
	case idx == 3:
		if err := s.exporter.CopyToClipboard(q); err != nil {
			_ = s.driver.Info(ctx, "Copy failed: "+err.Error())
			return nil
		}
		s.alerts.Show("Copied!", copiedNoticeDuration)
		return nil
	default:
		s.switchView(ViewBuilder)
		return nil
	}
}

// structureSummary renders a readable outline of the questionnaire: one line
// per group with its nested questions indented beneath it.
func structureSummary(q fhir.Questionnaire) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) - status %s\n", q.Title, q.Name, q.Status)
	for _, group := range q.Item {
		fmt.Fprintf(&b, "- %s [%s]\n", group.Text, group.Type)
		for _, item := range group.Item {
			writeItemLine(&b, item, "  ")
		}
	}
	return b.String()
}

func writeItemLine(b *strings.Builder, item fhir.QuestionnaireItem, indent string) {
	required := ""
	if item.Required {
		required = " *"
	}
	extra := ""
	if len(item.AnswerOption) > 0 {
		extra = fmt.Sprintf(" (%d option(s))", len(item.AnswerOption))
	}
	fmt.Fprintf(b, "%s- %s [%s]%s%s\n", indent, item.Text, item.Type, required, extra)
	for _, child := range item.Item {
		writeItemLine(b, child, indent+"  ")
	}
}
