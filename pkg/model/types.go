package model

// ItemType is the simplified enum for question kinds supported by the builder.
type ItemType string

const (
	ItemTypeString ItemType = "string"
	ItemTypeNumber ItemType = "number"
	ItemTypeChoice ItemType = "choice"
	ItemTypeDate   ItemType = "date"
	ItemTypeGroup  ItemType = "group"
)

const (
	RuleRequired  = "required"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RulePattern   = "pattern"
)

// ValidationRule represents a single constraint attached to an item. Use the
// Rule* constants for the canonical rule kinds (required, minLength,
// maxLength, pattern). Length bounds and the regular expression live in
// Params["value"]; Message is emitted verbatim when the rule fails. Unknown
// kinds are preserved but never evaluated, keeping documents forward
// compatible with future rule types.
type ValidationRule struct {
	Type    string            `json:"type" yaml:"type"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Message string            `json:"message" yaml:"message"`
}

// ItemProperties is the optional bag of type-specific presentation and
// constraint hints. Options is only meaningful for choice items.
type ItemProperties struct {
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Hint        string   `json:"hint,omitempty" yaml:"hint,omitempty"`
	MinLength   int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength   int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min         *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
	Multiple    bool     `json:"multiple,omitempty" yaml:"multiple,omitempty"`
}

// FormItem models one question. Items may nest children for group questions;
// the builder keeps flat lists per section but converters and renderers must
// tolerate populated Children.
type FormItem struct {
	ID         string           `json:"id" yaml:"id"`
	Type       ItemType         `json:"type" yaml:"type"`
	Text       string           `json:"text" yaml:"text"`
	Required   bool             `json:"required" yaml:"required"`
	Order      int              `json:"order" yaml:"order"`
	Validation []ValidationRule `json:"validation,omitempty" yaml:"validation,omitempty"`
	Properties *ItemProperties  `json:"properties,omitempty" yaml:"properties,omitempty"`
	Children   []FormItem       `json:"children,omitempty" yaml:"children,omitempty"`
}

// FormSection groups items; slice order is the display and export order.
type FormSection struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []FormItem `json:"items" yaml:"items"`
}

// FormMetadata is the root aggregate owning every section. It exists only in
// memory for the duration of a builder session.
type FormMetadata struct {
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string        `json:"version,omitempty" yaml:"version,omitempty"`
	Sections    []FormSection `json:"sections" yaml:"sections"`
}
