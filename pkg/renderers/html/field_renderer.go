package html

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// longTextThreshold switches string items to a textarea when maxLength
// exceeds it.
const longTextThreshold = 100

type fieldRenderer struct {
	hintPolicy *bluemonday.Policy
}

func newFieldRenderer() *fieldRenderer {
	return &fieldRenderer{
		hintPolicy: bluemonday.StrictPolicy(),
	}
}

// render produces the markup for one item: label, optional hint, the control
// for the item's type, and any inline errors. Unknown item types (and group
// items, whose children the preview does not descend into) render nothing.
func (r *fieldRenderer) render(item model.FormItem, options render.Options) string {
	control := r.control(item, options)
	if control == "" {
		return ""
	}

	errs := options.Errors[item.ID]

	var b strings.Builder
	b.Grow(len(control) + 256)

	b.WriteString(`    <div class="fb-field`)
	if len(errs) > 0 {
		b.WriteString(` fb-field-invalid`)
	}
	b.WriteString(`" data-item="`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString("\">\n")

	b.WriteString(`      <label for="fb-`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(item.Text))
	if item.Required {
		b.WriteString(` <span class="fb-required">*</span>`)
	}
	b.WriteString("</label>\n")

	if hint := r.hint(item); hint != "" {
		b.WriteString(`      <small class="fb-hint">`)
		b.WriteString(hint)
		b.WriteString("</small>\n")
	}

	b.WriteString(control)

	for _, message := range errs {
		b.WriteString(`      <div class="fb-error">`)
		b.WriteString(html.EscapeString(message))
		b.WriteString("</div>\n")
	}

	b.WriteString("    </div>\n")
	return b.String()
}

func (r *fieldRenderer) control(item model.FormItem, options render.Options) string {
	switch item.Type {
	case model.ItemTypeString:
		return r.stringControl(item, options)
	case model.ItemTypeNumber:
		return r.numberControl(item, options)
	case model.ItemTypeChoice:
		return r.choiceControl(item, options)
	case model.ItemTypeDate:
		return r.dateControl(item, options)
	default:
		return ""
	}
}

func (r *fieldRenderer) stringControl(item model.FormItem, options render.Options) string {
	props := properties(item)
	value := stringResponse(options, item.ID)

	if props.MaxLength > longTextThreshold {
		var b strings.Builder
		b.WriteString(`      <textarea id="fb-`)
		b.WriteString(html.EscapeString(item.ID))
		b.WriteString(`" name="`)
		b.WriteString(html.EscapeString(item.ID))
		b.WriteString(`" rows="4"`)
		writeTextAttrs(&b, props)
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(value))
		b.WriteString("</textarea>\n")
		return b.String()
	}

	var b strings.Builder
	b.WriteString(`      <input type="text" id="fb-`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString(`"`)
	writeTextAttrs(&b, props)
	if value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}
	b.WriteString(">\n")
	return b.String()
}

func (r *fieldRenderer) numberControl(item model.FormItem, options render.Options) string {
	props := properties(item)
	value := stringResponse(options, item.ID)

	var b strings.Builder
	b.WriteString(`      <input type="number" id="fb-`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString(`"`)
	if props.Min != nil {
		b.WriteString(` min="`)
		b.WriteString(formatFloat(*props.Min))
		b.WriteString(`"`)
	}
	if props.Max != nil {
		b.WriteString(` max="`)
		b.WriteString(formatFloat(*props.Max))
		b.WriteString(`"`)
	}
	if props.Placeholder != "" {
		b.WriteString(` placeholder="`)
		b.WriteString(html.EscapeString(props.Placeholder))
		b.WriteString(`"`)
	}
	if value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}
	b.WriteString(">\n")
	return b.String()
}

func (r *fieldRenderer) choiceControl(item model.FormItem, options render.Options) string {
	props := properties(item)
	// Missing options degrade to a disabled control instead of an empty
	// select the user could interact with.
	if len(props.Options) == 0 {
		return fmt.Sprintf("      <select id=\"fb-%s\" name=\"%s\" disabled><option>No options defined</option></select>\n",
			html.EscapeString(item.ID), html.EscapeString(item.ID))
	}

	if props.Multiple {
		selected := sliceResponse(options, item.ID)
		var b strings.Builder
		b.WriteString(`      <div class="fb-choices" id="fb-`)
		b.WriteString(html.EscapeString(item.ID))
		b.WriteString("\">\n")
		for _, option := range props.Options {
			b.WriteString(`        <label><input type="checkbox" name="`)
			b.WriteString(html.EscapeString(item.ID))
			b.WriteString(`" value="`)
			b.WriteString(html.EscapeString(option))
			b.WriteString(`"`)
			if contains(selected, option) {
				b.WriteString(` checked`)
			}
			b.WriteString(`> `)
			b.WriteString(html.EscapeString(option))
			b.WriteString("</label>\n")
		}
		b.WriteString("      </div>\n")
		return b.String()
	}

	value := stringResponse(options, item.ID)
	var b strings.Builder
	b.WriteString(`      <select id="fb-`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString("\">\n")
	b.WriteString("        <option value=\"\">Select an option</option>\n")
	for _, option := range props.Options {
		b.WriteString(`        <option value="`)
		b.WriteString(html.EscapeString(option))
		b.WriteString(`"`)
		if option == value {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(option))
		b.WriteString("</option>\n")
	}
	b.WriteString("      </select>\n")
	return b.String()
}

func (r *fieldRenderer) dateControl(item model.FormItem, options render.Options) string {
	value := stringResponse(options, item.ID)
	var b strings.Builder
	b.WriteString(`      <input type="date" id="fb-`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(item.ID))
	b.WriteString(`"`)
	if value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}
	b.WriteString(">\n")
	return b.String()
}

// hint strips any markup from user-authored help text before it lands in the
// page.
func (r *fieldRenderer) hint(item model.FormItem) string {
	if item.Properties == nil {
		return ""
	}
	return strings.TrimSpace(r.hintPolicy.Sanitize(item.Properties.Hint))
}

func writeTextAttrs(b *strings.Builder, props model.ItemProperties) {
	if props.Placeholder != "" {
		b.WriteString(` placeholder="`)
		b.WriteString(html.EscapeString(props.Placeholder))
		b.WriteString(`"`)
	}
	if props.MinLength > 0 {
		b.WriteString(` minlength="`)
		b.WriteString(strconv.Itoa(props.MinLength))
		b.WriteString(`"`)
	}
	if props.MaxLength > 0 {
		b.WriteString(` maxlength="`)
		b.WriteString(strconv.Itoa(props.MaxLength))
		b.WriteString(`"`)
	}
}

func properties(item model.FormItem) model.ItemProperties {
	if item.Properties == nil {
		return model.ItemProperties{}
	}
	return *item.Properties
}

func stringResponse(options render.Options, itemID string) string {
	if options.Values == nil {
		return ""
	}
	if value, ok := options.Values[itemID].(string); ok {
		return value
	}
	return ""
}

func sliceResponse(options render.Options, itemID string) []string {
	if options.Values == nil {
		return nil
	}
	switch v := options.Values[itemID].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
