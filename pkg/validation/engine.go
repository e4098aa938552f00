// Package validation evaluates an item's validation rules against a response
// value, producing the ordered, human-readable messages the preview surfaces
// inline. All rules are evaluated independently rather than short-circuited
// so a value can surface several problems at once.
package validation

import (
	"regexp"
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// RequiredMessage is emitted when a required item has no value. The wording
// matches the default message the editor seeds new required rules with.
const RequiredMessage = "This field is required"

// Validate checks value against the item's required flag and each declared
// rule, in declaration order. The returned slice is empty (nil) when the
// value is valid. Rule kinds the engine does not recognise are skipped
// without error so documents written by newer builders keep validating.
func Validate(item model.FormItem, value any) []string {
	var errs []string

	if item.Required && isEmpty(value) {
		errs = append(errs, RequiredMessage)
	}

	length := lengthOf(value)
	for _, rule := range item.Validation {
		switch rule.Type {
		case model.RuleMinLength:
			if bound, ok := intParam(rule); ok && length < bound {
				errs = append(errs, rule.Message)
			}
		case model.RuleMaxLength:
			if bound, ok := intParam(rule); ok && length > bound {
				errs = append(errs, rule.Message)
			}
		case model.RulePattern:
			pattern, ok := rule.Params["value"]
			if !ok {
				continue
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				continue
			}
			if !re.MatchString(stringValue(value)) {
				errs = append(errs, rule.Message)
			}
		}
	}

	return errs
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case bool:
		return !v
	default:
		return false
	}
}

// lengthOf mirrors the loose value.length semantics the rules were written
// against: character count for text, entry count for multi-select responses.
func lengthOf(value any) int {
	switch v := value.(type) {
	case string:
		return len(v)
	case []string:
		return len(v)
	case []any:
		return len(v)
	default:
		return 0
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return ""
	}
}

func intParam(rule model.ValidationRule) (int, bool) {
	raw, ok := rule.Params["value"]
	if !ok {
		return 0, false
	}
	bound, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return bound, true
}
