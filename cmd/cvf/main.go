package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/cvf"
	"pkt.systems/cvf/docx"
	"pkt.systems/cvf/pdf"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/cvf")
}

func main() {
	var (
		outPath    string
		formatFlag string
		styleName  string
		pageSize   string
		listStyles bool
		validate   bool
		preview    bool
		widthFlag  int
		noColor    bool
		coreFonts  bool
	)

	flags := pflag.NewFlagSet("cvf", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&formatFlag, "format", "f", "", "Output format: pdf|docx (inferred from output extension)")
	flags.StringVarP(&styleName, "style", "s", cvf.DefaultStyle, "Style preset name")
	flags.StringVarP(&pageSize, "page-size", "p", "letter", "Page size: letter|a4")
	flags.BoolVar(&listStyles, "list-styles", false, "List available style presets")
	flags.BoolVar(&validate, "validate", false, "Validate the resume and print a section summary")
	flags.BoolVar(&preview, "preview", false, "Preview the resume as ANSI text on stdout")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Preview width override (0 uses terminal width if available)")
	flags.BoolVar(&noColor, "no-color", false, "Disable ANSI colors in preview")
	flags.BoolVar(&coreFonts, "core-fonts", false, "Use built-in PDF core fonts instead of system fonts")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: cvf [flags] [input]\n")
		fmt.Fprintln(os.Stderr, "\nInput is a JSON Resume file or http(s) URL. If no input is provided,")
		fmt.Fprintln(os.Stderr, "JSON is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listStyles {
		printStyles()
		return
	}

	args := flags.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "expected at most one input")
		os.Exit(2)
	}
	data, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}

	if err := cvf.ValidateResume(data); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	resume, err := cvf.DecodeResume(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if validate {
		printSummary(resume)
		return
	}

	theme, ok := cvf.ThemeByName(styleName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown style %q\n\n", styleName)
		printStyles()
		os.Exit(2)
	}

	if preview {
		if err := cvf.Preview(cvf.PreviewRequest{
			Writer: os.Stdout,
			Resume: resume,
			Theme:  theme,
			Width:  resolveWidth(widthFlag),
			Color:  !noColor && isTerminal(os.Stdout),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	format, err := resolveFormat(formatFlag, outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if outPath != "" {
		err = generateFile(normalizePath(outPath), format, resume, theme, pageSize, coreFonts)
	} else {
		if isTerminal(os.Stdout) {
			fmt.Fprintf(os.Stderr, "refusing to write %s to terminal; use -o/--output\n", format)
			os.Exit(2)
		}
		err = renderTo(os.Stdout, format, resume, theme, pageSize, coreFonts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// resolveFormat picks the output format from the explicit flag or,
// failing that, the output file extension. PDF is the default.
func resolveFormat(flag, outPath string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "pdf", "docx":
		return strings.ToLower(strings.TrimSpace(flag)), nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q (expected pdf or docx)", flag)
	}
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".docx":
		return "docx", nil
	default:
		return "pdf", nil
	}
}

func generateFile(path, format string, resume *cvf.Resume, theme cvf.Theme, pageSize string, coreFonts bool) error {
	if format == "docx" {
		cfg := docx.DefaultConfig()
		cfg.PageSize = pageSize
		return docx.Generate(path, resume, theme, cfg)
	}
	cfg := pdf.DefaultConfig()
	cfg.PageSize = pageSize
	cfg.CoreFontsOnly = coreFonts
	return pdf.Generate(path, resume, theme, cfg)
}

func renderTo(w io.Writer, format string, resume *cvf.Resume, theme cvf.Theme, pageSize string, coreFonts bool) error {
	if format == "docx" {
		cfg := docx.DefaultConfig()
		cfg.PageSize = pageSize
		return docx.Render(docx.RenderRequest{Writer: w, Resume: resume, Theme: theme, Config: cfg})
	}
	cfg := pdf.DefaultConfig()
	cfg.PageSize = pageSize
	cfg.CoreFontsOnly = coreFonts
	return pdf.Render(pdf.RenderRequest{Writer: w, Resume: resume, Theme: theme, Config: cfg})
}

func printStyles() {
	for _, name := range cvf.AvailableStyles() {
		theme, _ := cvf.ThemeByName(name)
		fmt.Fprintf(os.Stdout, "%-14s %s\n", name, theme.Description())
	}
}

func printSummary(resume *cvf.Resume) {
	fmt.Fprintln(os.Stdout, "resume is valid")
	for _, sc := range cvf.SectionCounts(resume) {
		fmt.Fprintf(os.Stdout, "  %-14s %d\n", sc.Name, sc.Entries)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	raw := strings.TrimSpace(args[0])
	if raw == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return readURL(raw)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return os.ReadFile(normalizePath(path))
		}
	}
	return os.ReadFile(normalizePath(raw))
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

func readURL(raw string) ([]byte, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", fmt.Sprintf("cvf/%s", version.Current()))
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
