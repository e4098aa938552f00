package model

// CloneForm returns a deep copy of the form, detaching every section and item
// slice from the source.
func CloneForm(form FormMetadata) FormMetadata {
	out := form
	out.Sections = CloneSections(form.Sections)
	return out
}

// CloneSections deep-copies a section slice.
func CloneSections(sections []FormSection) []FormSection {
	if sections == nil {
		return nil
	}
	out := make([]FormSection, len(sections))
	for i, section := range sections {
		out[i] = CloneSection(section)
	}
	return out
}

// CloneSection deep-copies one section including its items.
func CloneSection(section FormSection) FormSection {
	out := section
	out.Items = CloneItems(section.Items)
	return out
}

// CloneItems deep-copies an item slice, recursing into children.
func CloneItems(items []FormItem) []FormItem {
	if items == nil {
		return nil
	}
	out := make([]FormItem, len(items))
	for i, item := range items {
		out[i] = CloneItem(item)
	}
	return out
}

// CloneItem deep-copies one item, its validation rules, properties, and
// children.
func CloneItem(item FormItem) FormItem {
	out := item
	if item.Validation != nil {
		out.Validation = make([]ValidationRule, len(item.Validation))
		for i, rule := range item.Validation {
			out.Validation[i] = cloneRule(rule)
		}
	}
	if item.Properties != nil {
		props := *item.Properties
		if item.Properties.Options != nil {
			props.Options = append([]string(nil), item.Properties.Options...)
		}
		if item.Properties.Min != nil {
			min := *item.Properties.Min
			props.Min = &min
		}
		if item.Properties.Max != nil {
			max := *item.Properties.Max
			props.Max = &max
		}
		out.Properties = &props
	}
	out.Children = CloneItems(item.Children)
	return out
}

func cloneRule(rule ValidationRule) ValidationRule {
	out := rule
	if rule.Params != nil {
		out.Params = make(map[string]string, len(rule.Params))
		for k, v := range rule.Params {
			out.Params[k] = v
		}
	}
	return out
}
