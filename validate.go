package cvf

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

// ValidateResume checks raw JSON Resume bytes against the embedded
// schema. It returns nil for valid input and an error listing every
// schema violation otherwise.
func ValidateResume(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate resume: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("validate resume: %s", strings.Join(msgs, "; "))
}

// SectionCounts reports the populated sections of a résumé in render
// order, each with its entry count (basics counts as 1). It backs the
// CLI's validation summary.
func SectionCounts(r *Resume) []SectionCount {
	if r == nil {
		return nil
	}
	var counts []SectionCount
	add := func(name string, n int) {
		if n > 0 {
			counts = append(counts, SectionCount{Name: name, Entries: n})
		}
	}
	if r.Basics != nil {
		add("basics", 1)
	}
	add("work", len(r.Work))
	add("education", len(r.Education))
	add("skills", len(r.Skills))
	add("projects", len(r.Projects))
	add("certificates", len(r.Certificates))
	add("awards", len(r.Awards))
	add("publications", len(r.Publications))
	add("volunteer", len(r.Volunteer))
	add("languages", len(r.Languages))
	add("interests", len(r.Interests))
	add("references", len(r.References))
	return counts
}

// SectionCount names a populated section and its entry count.
type SectionCount struct {
	Name    string
	Entries int
}
