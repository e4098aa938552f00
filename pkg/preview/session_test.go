package preview

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func requiredItem(id string) model.FormItem {
	return model.FormItem{ID: id, Type: model.ItemTypeString, Text: "Q", Required: true}
}

func TestSetResponseRecordsValueAndErrors(t *testing.T) {
	s := NewSession()
	item := requiredItem("item-1")

	errs := s.SetResponse(item, "")
	if len(errs) != 1 || errs[0] != validation.RequiredMessage {
		t.Fatalf("errs = %v", errs)
	}
	if got := s.ErrorsFor("item-1"); len(got) != 1 {
		t.Errorf("ErrorsFor = %v", got)
	}

	errs = s.SetResponse(item, "Jane")
	if len(errs) != 0 {
		t.Fatalf("errs after valid value = %v", errs)
	}
	if got := s.ErrorsFor("item-1"); got != nil {
		t.Errorf("errors not cleared: %v", got)
	}
	if value, ok := s.Response("item-1"); !ok || value != "Jane" {
		t.Errorf("Response = %v, %t", value, ok)
	}
}

func TestSetResponseOnlyTouchesOwnErrors(t *testing.T) {
	s := NewSession()
	s.SetResponse(requiredItem("item-1"), "")
	s.SetResponse(requiredItem("item-2"), "value")

	if got := s.ErrorsFor("item-1"); len(got) != 1 {
		t.Errorf("item-1 errors = %v", got)
	}
	if got := s.ErrorsFor("item-2"); got != nil {
		t.Errorf("item-2 errors = %v", got)
	}
}

func TestResetClearsBothMapsTogether(t *testing.T) {
	s := NewSession()
	s.SetResponse(requiredItem("item-1"), "")
	s.SetResponse(requiredItem("item-2"), "kept until reset")

	s.Reset()

	if got := s.Responses(); len(got) != 0 {
		t.Errorf("responses after reset = %v", got)
	}
	if got := s.Errors(); len(got) != 0 {
		t.Errorf("errors after reset = %v", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := NewSession()
	s.SetResponse(requiredItem("item-1"), "Jane")

	responses := s.Responses()
	responses["item-1"] = "tampered"
	if value, _ := s.Response("item-1"); value != "Jane" {
		t.Error("Responses() leaked internal map")
	}

	s.SetResponse(requiredItem("item-2"), "")
	errs := s.Errors()
	errs["item-2"] = nil
	if got := s.ErrorsFor("item-2"); len(got) != 1 {
		t.Error("Errors() leaked internal map")
	}
}
