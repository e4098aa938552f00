// Package form holds the pure operations that evolve a FormMetadata snapshot.
// Every operation returns a new snapshot; the input is never mutated, so the
// shell can hand the previous value to renderers without defensive copies.
// Lookup misses (a section or item id that no longer exists) are absorbed as
// no-ops: the shell's event sources are not transactional and a delete can
// race an edit commit, so the operations favour availability over strictness.
package form

import (
	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	// DefaultFormTitle seeds a fresh builder session.
	DefaultFormTitle = "New Form"
	// DefaultFormVersion seeds a fresh builder session.
	DefaultFormVersion = "1.0"
	// DefaultSectionTitle is assigned to newly added sections.
	DefaultSectionTitle = "New Section"
	// DefaultItemText is assigned to newly added questions.
	DefaultItemText = "New Question"
)

// NewForm returns the empty form a builder session starts from.
func NewForm() model.FormMetadata {
	return model.FormMetadata{
		Title:   DefaultFormTitle,
		Version: DefaultFormVersion,
	}
}

// SectionUpdate carries the partial fields merged by UpdateSection. Nil
// pointers leave the corresponding field untouched.
type SectionUpdate struct {
	Title       *string
	Description *string
}

// FormUpdate carries the partial fields merged by UpdateMetadata.
type FormUpdate struct {
	Title       *string
	Description *string
	Version     *string
}

// AddSection appends a fresh section and returns the next snapshot together
// with the section that was created.
func AddSection(form model.FormMetadata) (model.FormMetadata, model.FormSection) {
	section := model.FormSection{
		ID:    NewSectionID(),
		Title: DefaultSectionTitle,
		Items: []model.FormItem{},
	}

	next := form
	next.Sections = append(copySections(form.Sections), section)
	return next, section
}

// UpdateMetadata merges form-level fields into a new snapshot.
func UpdateMetadata(form model.FormMetadata, update FormUpdate) model.FormMetadata {
	next := form
	if update.Title != nil {
		next.Title = *update.Title
	}
	if update.Description != nil {
		next.Description = *update.Description
	}
	if update.Version != nil {
		next.Version = *update.Version
	}
	return next
}

// UpdateSection merges partial fields into the named section. Unknown section
// ids are a no-op.
func UpdateSection(form model.FormMetadata, sectionID string, update SectionUpdate) model.FormMetadata {
	idx := sectionIndex(form.Sections, sectionID)
	if idx < 0 {
		return form
	}

	next := form
	next.Sections = copySections(form.Sections)
	if update.Title != nil {
		next.Sections[idx].Title = *update.Title
	}
	if update.Description != nil {
		next.Sections[idx].Description = *update.Description
	}
	return next
}

// DeleteSection removes the named section and, by ownership, every item in
// it. Unknown section ids are a no-op.
func DeleteSection(form model.FormMetadata, sectionID string) model.FormMetadata {
	idx := sectionIndex(form.Sections, sectionID)
	if idx < 0 {
		return form
	}

	next := form
	next.Sections = make([]model.FormSection, 0, len(form.Sections)-1)
	next.Sections = append(next.Sections, form.Sections[:idx]...)
	next.Sections = append(next.Sections, form.Sections[idx+1:]...)
	return next
}

// AddItem appends a default question to the named section and returns the new
// snapshot plus the created item. The ok result is false (and the snapshot
// unchanged) when the section does not exist; the created item is expected to
// become the editor's active target immediately.
func AddItem(form model.FormMetadata, sectionID string) (model.FormMetadata, model.FormItem, bool) {
	idx := sectionIndex(form.Sections, sectionID)
	if idx < 0 {
		return form, model.FormItem{}, false
	}

	item := model.FormItem{
		ID:    NewItemID(),
		Type:  model.ItemTypeString,
		Text:  DefaultItemText,
		Order: len(form.Sections[idx].Items),
	}

	next := form
	next.Sections = copySections(form.Sections)
	next.Sections[idx].Items = append(copyItems(form.Sections[idx].Items), item)
	return next, item, true
}

// UpdateItem replaces the item with a matching id inside the named section.
// The caller supplies the section the item currently belongs to; moving
// across sections is MoveItem's job. Unknown section or item ids are a no-op.
func UpdateItem(form model.FormMetadata, sectionID string, updated model.FormItem) model.FormMetadata {
	sIdx := sectionIndex(form.Sections, sectionID)
	if sIdx < 0 {
		return form
	}
	iIdx := itemIndex(form.Sections[sIdx].Items, updated.ID)
	if iIdx < 0 {
		return form
	}

	next := form
	next.Sections = copySections(form.Sections)
	next.Sections[sIdx].Items = copyItems(form.Sections[sIdx].Items)
	next.Sections[sIdx].Items[iIdx] = updated
	return next
}

// DeleteItem removes the item from exactly one section. Unknown ids are a
// no-op.
func DeleteItem(form model.FormMetadata, sectionID, itemID string) model.FormMetadata {
	sIdx := sectionIndex(form.Sections, sectionID)
	if sIdx < 0 {
		return form
	}
	iIdx := itemIndex(form.Sections[sIdx].Items, itemID)
	if iIdx < 0 {
		return form
	}

	items := form.Sections[sIdx].Items
	next := form
	next.Sections = copySections(form.Sections)
	trimmed := make([]model.FormItem, 0, len(items)-1)
	trimmed = append(trimmed, items[:iIdx]...)
	trimmed = append(trimmed, items[iIdx+1:]...)
	reindex(trimmed)
	next.Sections[sIdx].Items = trimmed
	return next
}

// MoveItem removes the item at sourceIndex from the source section and
// inserts it at destIndex in the destination section; source and destination
// may be the same section for simple reordering. Item identity is preserved,
// only position changes. Indices normally come from the rendered list, but a
// racing delete can invalidate them: an out-of-range source index is a no-op
// and the destination index is clamped into range rather than rejected.
func MoveItem(form model.FormMetadata, sourceSectionID string, sourceIndex int, destSectionID string, destIndex int) model.FormMetadata {
	srcIdx := sectionIndex(form.Sections, sourceSectionID)
	dstIdx := sectionIndex(form.Sections, destSectionID)
	if srcIdx < 0 || dstIdx < 0 {
		return form
	}
	if sourceIndex < 0 || sourceIndex >= len(form.Sections[srcIdx].Items) {
		return form
	}

	next := form
	next.Sections = copySections(form.Sections)

	source := copyItems(next.Sections[srcIdx].Items)
	moved := source[sourceIndex]
	source = append(source[:sourceIndex], source[sourceIndex+1:]...)
	next.Sections[srcIdx].Items = source

	dest := source
	if srcIdx != dstIdx {
		dest = copyItems(next.Sections[dstIdx].Items)
	}
	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(dest) {
		destIndex = len(dest)
	}
	dest = append(dest, model.FormItem{})
	copy(dest[destIndex+1:], dest[destIndex:])
	dest[destIndex] = moved
	next.Sections[dstIdx].Items = dest

	reindex(next.Sections[srcIdx].Items)
	reindex(next.Sections[dstIdx].Items)
	return next
}

func reindex(items []model.FormItem) {
	for i := range items {
		items[i].Order = i
	}
}

// FindItem locates an item by id across every section, returning the owning
// section id alongside the item.
func FindItem(form model.FormMetadata, itemID string) (string, model.FormItem, bool) {
	for _, section := range form.Sections {
		for _, item := range section.Items {
			if item.ID == itemID {
				return section.ID, item, true
			}
		}
	}
	return "", model.FormItem{}, false
}

func sectionIndex(sections []model.FormSection, id string) int {
	for i, section := range sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

func itemIndex(items []model.FormItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func copySections(sections []model.FormSection) []model.FormSection {
	return append([]model.FormSection(nil), sections...)
}

func copyItems(items []model.FormItem) []model.FormItem {
	return append([]model.FormItem(nil), items...)
}
