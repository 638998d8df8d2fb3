package cvf

import "testing"

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{"professional", "modern", "elegant", "minimal"}
	for _, name := range expected {
		theme, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected style %q to be available", name)
		}
		if theme.Name() != name {
			t.Fatalf("style %q reports name %q", name, theme.Name())
		}
		if theme.Description() == "" {
			t.Fatalf("style %q has no description", name)
		}
		if theme.FontFamily == "" {
			t.Fatalf("style %q has no font family", name)
		}
	}

	available := AvailableStyles()
	if len(available) != len(expected) {
		t.Fatalf("expected %d styles, got %v", len(expected), available)
	}
	for i := 1; i < len(available); i++ {
		if available[i-1] >= available[i] {
			t.Fatalf("expected sorted style list, got %v", available)
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	for _, name := range []string{"Professional", " professional ", "PROFESSIONAL"} {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected %q to resolve", name)
		}
	}
	if _, ok := ThemeByName("corporate"); ok {
		t.Fatalf("expected unknown style to miss")
	}
}

func TestThemeOrDefault(t *testing.T) {
	if got := ThemeOrDefault("no-such-style"); got.Name() != DefaultStyle {
		t.Fatalf("expected fallback to %q, got %q", DefaultStyle, got.Name())
	}
	if got := ThemeOrDefault(""); got.Name() != DefaultStyle {
		t.Fatalf("expected empty name to fall back, got %q", got.Name())
	}
	if got := ThemeOrDefault("elegant"); got.Name() != "elegant" {
		t.Fatalf("expected elegant, got %q", got.Name())
	}
}

func TestThemeColors(t *testing.T) {
	professional, _ := ThemeByName("professional")
	if got := professional.Primary.Hex(); got != "2C3E50" {
		t.Fatalf("professional primary = %s", got)
	}
	if got := professional.Accent.Hex(); got != "3498DB" {
		t.Fatalf("professional accent = %s", got)
	}
	minimal, _ := ThemeByName("minimal")
	if got := minimal.Primary.Hex(); got != "000000" {
		t.Fatalf("minimal primary = %s", got)
	}
}
