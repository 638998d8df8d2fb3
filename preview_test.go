package cvf

import (
	"bytes"
	"strings"
	"testing"
)

func previewResume() *Resume {
	return &Resume{
		Basics: &Basics{
			Name:    "Jane Doe",
			Label:   "Engineer",
			Summary: "Builds things.",
		},
		Work: []Work{{
			Name:       "Acme",
			Position:   "Eng",
			StartDate:  "2020-01",
			Highlights: []string{"Shipped the thing"},
		}},
	}
}

func TestPreviewPlain(t *testing.T) {
	var out bytes.Buffer
	err := Preview(PreviewRequest{
		Writer: &out,
		Resume: previewResume(),
		Theme:  ThemeOrDefault(""),
		Width:  60,
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Jane Doe", "Engineer", "EXPERIENCE", "Eng at Acme", "  • Shipped the thing"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in preview:\n%s", want, text)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Fatalf("expected no ANSI sequences without color:\n%q", text)
	}
	if !strings.Contains(text, strings.Repeat("─", 60)) {
		t.Fatalf("expected full-width divider")
	}
}

func TestPreviewColor(t *testing.T) {
	var out bytes.Buffer
	err := Preview(PreviewRequest{
		Writer: &out,
		Resume: previewResume(),
		Theme:  ThemeOrDefault("modern"),
		Width:  80,
		Color:  true,
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, ansiBold) {
		t.Fatalf("expected bold sequences in colored preview")
	}
	if !strings.Contains(text, ansiReset) {
		t.Fatalf("expected reset sequences in colored preview")
	}
}

func TestPreviewCentersName(t *testing.T) {
	var out bytes.Buffer
	err := Preview(PreviewRequest{
		Writer: &out,
		Resume: &Resume{Basics: &Basics{Name: "Jane"}},
		Theme:  ThemeOrDefault(""),
		Width:  20,
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	first := strings.SplitN(out.String(), "\n", 2)[0]
	if first != strings.Repeat(" ", 8)+"Jane" {
		t.Fatalf("expected centered name, got %q", first)
	}
}

func TestPreviewNilWriter(t *testing.T) {
	if err := Preview(PreviewRequest{Resume: &Resume{}}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}
