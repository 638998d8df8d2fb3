package pdf

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/cvf"
)

const unicodeFontFamily = "cvf"

// registerFonts loads the theme's preferred Unicode faces through
// fontconfig and registers them on the document. Discovery is best
// effort: when fc-match is unavailable or returns nothing usable, the
// theme's core font family is used instead (non-fatal, limited script
// coverage).
func registerFonts(p *gofpdf.Fpdf, pref cvf.PDFFontPref, coreOnly bool) (family string, unicode bool) {
	if coreOnly {
		return pref.Core, false
	}
	regular := findFontBytes(pref.Regular)
	bold := findFontBytes(pref.Bold)
	if regular == nil || bold == nil {
		return pref.Core, false
	}
	italic := findFontBytes(pref.Italic)
	if italic == nil {
		italic = regular
	}
	p.AddUTF8FontFromBytes(unicodeFontFamily, "", regular)
	p.AddUTF8FontFromBytes(unicodeFontFamily, "B", bold)
	p.AddUTF8FontFromBytes(unicodeFontFamily, "I", italic)
	return unicodeFontFamily, true
}

func findFontBytes(pattern string) []byte {
	path := findFontViaFC(pattern)
	if path == "" || !strings.HasSuffix(strings.ToLower(path), ".ttf") {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return data
}

// findFontViaFC resolves a fontconfig pattern to a font file path.
func findFontViaFC(pattern string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "fc-match", "-f", "%{file}", pattern).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
