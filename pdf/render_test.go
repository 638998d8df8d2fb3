package pdf

import (
	"bytes"
	"compress/zlib"
	"io"
	"sort"
	"strings"
	"testing"

	"pkt.systems/cvf"
)

func sampleResume() *cvf.Resume {
	return &cvf.Resume{
		Basics: &cvf.Basics{
			Name:    "Jane Doe",
			Label:   "Engineer",
			Email:   "jane@example.com",
			Summary: "Builds things.",
			Profiles: []cvf.Profile{
				{Network: "GitHub", Username: "jane"},
			},
		},
		Work: []cvf.Work{{
			Name:       "Acme",
			Position:   "Eng",
			StartDate:  "2020-01",
			Highlights: []string{"Shipped the thing", "Fixed the other thing"},
		}},
		Skills: []cvf.Skill{{Name: "Go", Keywords: []string{"servers"}}},
		References: []cvf.Reference{{
			Name:      "Sam",
			Reference: "Great colleague.",
		}},
	}
}

func TestRenderCoreFonts(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Writer: &out,
		Resume: sampleResume(),
		Theme:  cvf.ThemeOrDefault("professional"),
		Config: Config{PageSize: "letter", CoreFontsOnly: true},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", out.Bytes()[:8])
	}
}

func TestRenderAllStyles(t *testing.T) {
	for _, name := range cvf.AvailableStyles() {
		var out bytes.Buffer
		err := Render(RenderRequest{
			Writer: &out,
			Resume: sampleResume(),
			Theme:  cvf.ThemeOrDefault(name),
			Config: Config{CoreFontsOnly: true},
		})
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
			t.Fatalf("style %s: not a pdf", name)
		}
	}
}

func TestRenderSystemFontFallback(t *testing.T) {
	// Without --core-fonts the renderer discovers fonts via fc-match
	// and falls back to core fonts when discovery fails. Either way
	// the render must succeed.
	var out bytes.Buffer
	err := Render(RenderRequest{
		Writer: &out,
		Resume: sampleResume(),
		Theme:  cvf.ThemeOrDefault(""),
		Config: DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("not a pdf")
	}
}

// contentStreams returns the decompressed stream objects of a PDF,
// sorted, so comparisons do not depend on object numbering.
func contentStreams(t *testing.T, data []byte) []string {
	t.Helper()
	var streams []string
	rest := data
	for {
		i := bytes.Index(rest, []byte("stream\n"))
		if i < 0 {
			break
		}
		rest = rest[i+len("stream\n"):]
		j := bytes.Index(rest, []byte("endstream"))
		if j < 0 {
			t.Fatalf("unterminated stream object")
		}
		raw := bytes.TrimSuffix(rest[:j], []byte("\n"))
		rest = rest[j+len("endstream"):]
		if zr, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
			if inflated, err := io.ReadAll(zr); err == nil {
				streams = append(streams, string(inflated))
				continue
			}
		}
		streams = append(streams, string(raw))
	}
	sort.Strings(streams)
	return streams
}

func TestRenderStableContent(t *testing.T) {
	cfg := Config{PageSize: "a4", CoreFontsOnly: true}
	render := func() []byte {
		var out bytes.Buffer
		err := Render(RenderRequest{
			Writer: &out,
			Resume: sampleResume(),
			Theme:  cvf.ThemeOrDefault("elegant"),
			Config: cfg,
		})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		return out.Bytes()
	}
	first := contentStreams(t, render())
	if len(first) == 0 {
		t.Fatalf("no stream objects extracted")
	}
	var hasName bool
	for _, s := range first {
		if strings.Contains(s, "Jane Doe") {
			hasName = true
		}
	}
	if !hasName {
		t.Fatalf("name missing from page content")
	}
	// Font dictionary ordering may renumber objects between runs;
	// the page content must not change.
	for run := 0; run < 25; run++ {
		again := contentStreams(t, render())
		if len(again) != len(first) {
			t.Fatalf("run %d: stream count changed from %d to %d", run, len(first), len(again))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: stream %d content changed", run, i)
			}
		}
	}
}

func TestRenderEmptyResume(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Writer: &out,
		Resume: &cvf.Resume{},
		Theme:  cvf.ThemeOrDefault(""),
		Config: Config{CoreFontsOnly: true},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("not a pdf")
	}
}

func TestRenderUnknownPageSize(t *testing.T) {
	err := Render(RenderRequest{
		Writer: &bytes.Buffer{},
		Resume: &cvf.Resume{},
		Theme:  cvf.ThemeOrDefault(""),
		Config: Config{PageSize: "tabloid", CoreFontsOnly: true},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown page size") {
		t.Fatalf("expected page size error, got %v", err)
	}
}

func TestRenderNilArguments(t *testing.T) {
	if err := Render(RenderRequest{Resume: &cvf.Resume{}}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil resume")
	}
}
