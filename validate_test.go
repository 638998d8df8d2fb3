package cvf

import (
	"strings"
	"testing"
)

func TestValidateResumeAccepts(t *testing.T) {
	docs := []string{
		`{}`,
		`{"basics":{"name":"Jane Doe"}}`,
		`{"basics":{"name":"Jane"},"work":[{"name":"Acme","position":"Eng","startDate":"2020-01"}]}`,
		`{"meta":{"version":"v1"},"custom":true}`,
	}
	for _, doc := range docs {
		if err := ValidateResume([]byte(doc)); err != nil {
			t.Fatalf("expected %s to validate: %v", doc, err)
		}
	}
}

func TestValidateResumeRejects(t *testing.T) {
	docs := []string{
		`{"basics":"jane"}`,
		`{"work":{"name":"Acme"}}`,
		`{"skills":[{"keywords":"go"}]}`,
		`not json`,
	}
	for _, doc := range docs {
		if err := ValidateResume([]byte(doc)); err == nil {
			t.Fatalf("expected %s to be rejected", doc)
		}
	}
}

func TestValidateResumeErrorListsViolations(t *testing.T) {
	err := ValidateResume([]byte(`{"basics":"jane","work":"acme"}`))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "validate resume:") {
		t.Fatalf("unexpected error prefix: %v", err)
	}
	if !strings.Contains(err.Error(), ";") {
		t.Fatalf("expected multiple violations joined: %v", err)
	}
}

func TestSectionCounts(t *testing.T) {
	counts := SectionCounts(&Resume{
		Basics: &Basics{Name: "Jane"},
		Work:   []Work{{Name: "Acme"}, {Name: "Initech"}},
		Skills: []Skill{{Name: "Go"}},
	})
	want := []SectionCount{
		{Name: "basics", Entries: 1},
		{Name: "work", Entries: 2},
		{Name: "skills", Entries: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("counts[%d] = %v, want %v", i, counts[i], want[i])
		}
	}
	if got := SectionCounts(nil); got != nil {
		t.Fatalf("expected nil counts for nil resume")
	}
}

func TestDecodeResume(t *testing.T) {
	resume, err := DecodeResume([]byte(`{"basics":{"name":"Jane"},"work":[{"name":"Acme"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resume.Basics == nil || resume.Basics.Name != "Jane" {
		t.Fatalf("unexpected basics: %+v", resume.Basics)
	}
	if len(resume.Work) != 1 || resume.Work[0].Name != "Acme" {
		t.Fatalf("unexpected work: %+v", resume.Work)
	}
	if _, err := DecodeResume([]byte(`{`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
