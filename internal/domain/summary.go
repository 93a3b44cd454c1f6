package domain

import (
	"strings"
	"time"
)

type Summary struct {
	Title            string `json:"title"`
	Authors          string `json:"authors"`
	Abstract         string `json:"abstract"`
	ProblemStatement string `json:"problemStatement"`
	Methodology      string `json:"methodology"`
	KeyResults       string `json:"keyResults"`
	Conclusion       string `json:"conclusion"`
}

type SectionKind string

const (
	SectionTitle            SectionKind = "title"
	SectionAuthors          SectionKind = "authors"
	SectionAbstract         SectionKind = "abstract"
	SectionProblemStatement SectionKind = "problemStatement"
	SectionMethodology      SectionKind = "methodology"
	SectionKeyResults       SectionKind = "keyResults"
	SectionConclusion       SectionKind = "conclusion"
)

func (k SectionKind) Label() string {
	switch k {
	case SectionTitle:
		return "Title"
	case SectionAuthors:
		return "Authors"
	case SectionAbstract:
		return "Abstract"
	case SectionProblemStatement:
		return "Problem Statement"
	case SectionMethodology:
		return "Methodology"
	case SectionKeyResults:
		return "Key Results"
	case SectionConclusion:
		return "Conclusion"
	default:
		return string(k)
	}
}

type Section struct {
	Kind SectionKind
	Text string
}

// Sections returns every section in display order.
func (s Summary) Sections() []Section {
	return []Section{
		{Kind: SectionTitle, Text: s.Title},
		{Kind: SectionAuthors, Text: s.Authors},
		{Kind: SectionAbstract, Text: s.Abstract},
		{Kind: SectionProblemStatement, Text: s.ProblemStatement},
		{Kind: SectionMethodology, Text: s.Methodology},
		{Kind: SectionKeyResults, Text: s.KeyResults},
		{Kind: SectionConclusion, Text: s.Conclusion},
	}
}

func (s Summary) Section(kind SectionKind) (string, bool) {
	for _, section := range s.Sections() {
		if section.Kind == kind {
			return section.Text, true
		}
	}
	return "", false
}

func (s Summary) MissingSections() []SectionKind {
	var missing []SectionKind
	for _, section := range s.Sections() {
		if strings.TrimSpace(section.Text) == "" {
			missing = append(missing, section.Kind)
		}
	}
	return missing
}

// SummaryRecord is a summary as kept in the local summary history.
type SummaryRecord struct {
	Document   DocumentReference
	Summary    Summary
	CapturedAt time.Time
}
