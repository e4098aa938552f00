package fhir

// Questionnaire is the subset of the FHIR R4 Questionnaire resource the
// converter emits. Optional elements the builder never populates are omitted
// rather than serialized empty.
type Questionnaire struct {
	ResourceType string              `json:"resourceType"`
	ID           string              `json:"id"`
	URL          string              `json:"url,omitempty"`
	Version      string              `json:"version,omitempty"`
	Name         string              `json:"name"`
	Title        string              `json:"title,omitempty"`
	Status       string              `json:"status"`
	Date         string              `json:"date"`
	Publisher    string              `json:"publisher,omitempty"`
	Description  string              `json:"description,omitempty"`
	Item         []QuestionnaireItem `json:"item"`
}

// QuestionnaireItem is one entry in the Questionnaire item tree. Sections map
// to group items whose nested Item slice holds the converted questions.
type QuestionnaireItem struct {
	LinkID       string              `json:"linkId"`
	Text         string              `json:"text"`
	Type         string              `json:"type"`
	Required     bool                `json:"required,omitempty"`
	Repeats      bool                `json:"repeats,omitempty"`
	AnswerOption []AnswerOption      `json:"answerOption,omitempty"`
	Item         []QuestionnaireItem `json:"item,omitempty"`
}

// AnswerOption carries one permitted answer for a choice item.
type AnswerOption struct {
	ValueString string  `json:"valueString,omitempty"`
	ValueCoding *Coding `json:"valueCoding,omitempty"`
}

// Coding is the minimal FHIR coding shape kept for callers that post-process
// answer options into coded concepts.
type Coding struct {
	Code    string `json:"code"`
	Display string `json:"display,omitempty"`
}
