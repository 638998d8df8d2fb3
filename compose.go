package cvf

import "strings"

// Compose walks the résumé section by section and returns the ordered
// styled block sequence that both renderers consume. A section
// contributes nothing when its list is empty; within a section, fields
// that are absent are simply not emitted. Compose never fails: missing
// data is normal, not an error.
func Compose(r *Resume) []Block {
	if r == nil {
		return nil
	}
	var c composer
	c.header(r.Basics)
	c.work(r.Work)
	c.education(r.Education)
	c.skills(r.Skills)
	c.projects(r.Projects)
	c.certificates(r.Certificates)
	c.awards(r.Awards)
	c.publications(r.Publications)
	c.volunteer(r.Volunteer)
	c.languages(r.Languages)
	c.interests(r.Interests)
	c.references(r.References)
	return c.blocks
}

type composer struct {
	blocks []Block
}

func (c *composer) add(b Block) {
	c.blocks = append(c.blocks, b)
}

func (c *composer) heading(title string) {
	c.add(textBlock(BlockHeading, AlignLeft, title))
}

func (c *composer) title(text string) {
	if text != "" {
		c.add(textBlock(BlockTitle, AlignLeft, text))
	}
}

func (c *composer) subtitle(text string) {
	if text != "" {
		c.add(textBlock(BlockSubtitle, AlignLeft, text))
	}
}

func (c *composer) body(text string) {
	if text != "" {
		c.add(textBlock(BlockBody, AlignLeft, text))
	}
}

func (c *composer) bullets(items []string) {
	for _, item := range items {
		c.add(textBlock(BlockBullet, AlignLeft, "• "+item))
	}
}

func (c *composer) gap() {
	c.add(Block{Kind: BlockGap})
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) string {
	present := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}

// positionLine builds "{position} at {name}"; either half may be
// missing, and the line is empty when both are.
func positionLine(position, name string) string {
	if name != "" {
		name = "at " + name
	}
	return joinPresent(" ", position, name)
}

func (c *composer) header(b *Basics) {
	if b == nil {
		return
	}
	if b.Name != "" {
		c.add(textBlock(BlockName, AlignCenter, b.Name))
	}
	if b.Label != "" {
		c.add(textBlock(BlockLabel, AlignCenter, b.Label))
	}

	var location string
	if b.Location != nil {
		location = joinPresent(", ", b.Location.City, b.Location.Region, b.Location.CountryCode)
	}
	if contact := joinPresent(" | ", b.Email, b.Phone, b.URL, location); contact != "" {
		c.add(textBlock(BlockContact, AlignCenter, contact))
	}

	if spans := profileSpans(b.Profiles); len(spans) > 0 {
		c.add(Block{Kind: BlockContact, Align: AlignCenter, Spans: spans})
	}

	if b.Summary != "" {
		c.add(Block{Kind: BlockBody, Align: AlignJustify, Spans: []Span{{Text: b.Summary}}})
	}
	c.add(Block{Kind: BlockDivider})
}

// profileSpans renders each profile as "network: username" when both
// are present, its URL otherwise, skipping profiles with neither. The
// resolved profile URL is attached as a link.
func profileSpans(profiles []Profile) []Span {
	var spans []Span
	for _, p := range profiles {
		var display string
		switch {
		case p.Network != "" && p.Username != "":
			display = p.Network + ": " + p.Username
		case p.URL != "":
			display = p.URL
		default:
			continue
		}
		if len(spans) > 0 {
			spans = append(spans, Span{Text: " | "})
		}
		span := Span{Text: display}
		if url, ok := ResolveProfileURL(p.Network, p.Username, p.URL); ok {
			span.Link = url
		}
		spans = append(spans, span)
	}
	return spans
}

func (c *composer) work(entries []Work) {
	if len(entries) == 0 {
		return
	}
	c.heading("EXPERIENCE")
	for _, job := range entries {
		c.title(positionLine(job.Position, job.Name))
		c.subtitle(FormatDateRange(job.StartDate, job.EndDate))
		c.body(job.Summary)
		c.bullets(job.Highlights)
		c.gap()
	}
}

func (c *composer) volunteer(entries []Volunteer) {
	if len(entries) == 0 {
		return
	}
	c.heading("VOLUNTEER")
	for _, vol := range entries {
		c.title(positionLine(vol.Position, vol.Organization))
		c.subtitle(FormatDateRange(vol.StartDate, vol.EndDate))
		c.body(vol.Summary)
		c.bullets(vol.Highlights)
		c.gap()
	}
}

func (c *composer) education(entries []Education) {
	if len(entries) == 0 {
		return
	}
	c.heading("EDUCATION")
	for _, edu := range entries {
		var title string
		if edu.Area != "" {
			title = joinPresent(" ", edu.StudyType, "in "+edu.Area)
		} else {
			title = edu.StudyType
		}
		c.title(title)
		if edu.Institution != "" {
			subtitle := edu.Institution
			if edu.Score != "" {
				subtitle += " | GPA: " + edu.Score
			}
			c.subtitle(subtitle)
		}
		c.subtitle(FormatDateRange(edu.StartDate, edu.EndDate))
		if len(edu.Courses) > 0 {
			c.body("Courses: " + strings.Join(edu.Courses, ", "))
		}
		c.gap()
	}
}

func (c *composer) skills(entries []Skill) {
	if len(entries) == 0 {
		return
	}
	c.heading("SKILLS")
	for _, skill := range entries {
		if skill.Name == "" {
			continue
		}
		spans := []Span{{Text: skill.Name, Bold: true}}
		if skill.Level != "" {
			spans = append(spans, Span{Text: " (" + skill.Level + ")"})
		}
		if len(skill.Keywords) > 0 {
			spans = append(spans, Span{Text: ": " + strings.Join(skill.Keywords, ", ")})
		}
		c.add(Block{Kind: BlockBody, Spans: spans})
	}
	c.gap()
}

func (c *composer) projects(entries []Project) {
	if len(entries) == 0 {
		return
	}
	c.heading("PROJECTS")
	for _, project := range entries {
		c.title(project.Name)
		c.subtitle(FormatDateRange(project.StartDate, project.EndDate))
		c.body(project.Description)
		c.bullets(project.Highlights)
		if project.URL != "" {
			c.add(Block{Kind: BlockSubtitle, Spans: []Span{{Text: project.URL, Link: project.URL}}})
		}
		c.gap()
	}
}

func (c *composer) certificates(entries []Certificate) {
	if len(entries) == 0 {
		return
	}
	c.heading("CERTIFICATES")
	for _, cert := range entries {
		c.title(cert.Name)
		c.subtitle(joinPresent(" | ", cert.Issuer, FormatDate(cert.Date)))
		c.gap()
	}
}

func (c *composer) awards(entries []Award) {
	if len(entries) == 0 {
		return
	}
	c.heading("AWARDS")
	for _, award := range entries {
		c.title(award.Title)
		c.subtitle(joinPresent(" | ", award.Awarder, FormatDate(award.Date)))
		c.body(award.Summary)
		c.gap()
	}
}

func (c *composer) publications(entries []Publication) {
	if len(entries) == 0 {
		return
	}
	c.heading("PUBLICATIONS")
	for _, pub := range entries {
		c.title(pub.Name)
		c.subtitle(joinPresent(" | ", pub.Publisher, FormatDate(pub.ReleaseDate)))
		c.body(pub.Summary)
		c.gap()
	}
}

func (c *composer) languages(entries []Language) {
	if len(entries) == 0 {
		return
	}
	c.heading("LANGUAGES")
	var parts []string
	for _, lang := range entries {
		if lang.Language == "" {
			continue
		}
		text := lang.Language
		if lang.Fluency != "" {
			text += " (" + lang.Fluency + ")"
		}
		parts = append(parts, text)
	}
	if len(parts) > 0 {
		c.body(strings.Join(parts, ", "))
	}
	c.gap()
}

func (c *composer) interests(entries []Interest) {
	if len(entries) == 0 {
		return
	}
	c.heading("INTERESTS")
	for _, interest := range entries {
		if interest.Name == "" {
			continue
		}
		spans := []Span{{Text: interest.Name, Bold: true}}
		if len(interest.Keywords) > 0 {
			spans = append(spans, Span{Text: ": " + strings.Join(interest.Keywords, ", ")})
		}
		c.add(Block{Kind: BlockBody, Spans: spans})
	}
	c.gap()
}

func (c *composer) references(entries []Reference) {
	if len(entries) == 0 {
		return
	}
	c.heading("REFERENCES")
	for _, ref := range entries {
		c.title(ref.Name)
		if ref.Reference != "" {
			c.add(Block{Kind: BlockBody, Spans: []Span{{Text: `"` + ref.Reference + `"`, Italic: true}}})
		}
		c.gap()
	}
}
