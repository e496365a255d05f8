package subjects_test

import (
	"testing"

	"github.com/mitchell1972/examCoachNG/internal/subjects"
)

func TestAll_ReturnsCatalogInOrder(t *testing.T) {
	all := subjects.All()
	if len(all) != 12 {
		t.Fatalf("expected 12 subjects, got %d", len(all))
	}
	if all[0].Code != "ENG" {
		t.Errorf("expected English first, got %q", all[0].Code)
	}
	for _, s := range all {
		if len(s.Code) != 3 {
			t.Errorf("subject code %q is not 3 letters", s.Code)
		}
		if s.QuestionCount <= 0 || s.Duration <= 0 {
			t.Errorf("subject %s has invalid defaults: %+v", s.Code, s)
		}
		if len(s.Sections) == 0 {
			t.Errorf("subject %s has no sections", s.Code)
		}
	}
}

func TestAll_CopyIsolation(t *testing.T) {
	first := subjects.All()
	first[0].Code = "XXX"

	if again := subjects.All(); again[0].Code != "ENG" {
		t.Error("All must return a copy, not the backing catalog")
	}
}

func TestByCode(t *testing.T) {
	for _, code := range []string{"MTH", "mth", " mth "} {
		s, ok := subjects.ByCode(code)
		if !ok {
			t.Fatalf("expected subject for %q", code)
		}
		if s.Name != "Mathematics" {
			t.Errorf("expected Mathematics for %q, got %q", code, s.Name)
		}
	}

	if _, ok := subjects.ByCode("XYZ"); ok {
		t.Error("expected no subject for XYZ")
	}
}
