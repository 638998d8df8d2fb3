// Package cvf renders JSON Resume documents to PDF and DOCX.
//
// The package is built around a shared Section Composer: it walks a
// validated Resume section by section and emits a format-neutral
// sequence of styled blocks (kind + alignment + inline spans). The pdf
// and docx subpackages are thin adapters that map each block to their
// native paragraph constructs, so the two output formats cannot
// diverge in what they render.
//
// Core properties:
//   - Missing fields are normal data: they are omitted, never errors
//   - Four built-in styles with an explicit professional fallback
//   - Pure, total date helpers (FormatDate, FormatDateRange)
//   - Profile URLs derived from a fixed per-network table
//
// Example:
//
//	data, _ := os.ReadFile("resume.json")
//	if err := cvf.ValidateResume(data); err != nil {
//		log.Fatal(err)
//	}
//	resume, err := cvf.DecodeResume(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	theme := cvf.ThemeOrDefault("modern")
//	err = pdf.Generate("out/resume.pdf", resume, theme, pdf.DefaultConfig())
//
// The Preview function renders the same block sequence as wrapped
// terminal text for quick inspection without producing a file.
package cvf
