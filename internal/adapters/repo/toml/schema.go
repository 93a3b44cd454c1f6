package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	Summaries []summarySchema `toml:"summaries"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported summaries schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type summarySchema struct {
	ContentPath string         `toml:"filepath"`
	IndexPath   string         `toml:"vector_path"`
	CapturedAt  string         `toml:"captured_at"`
	Sections    sectionsSchema `toml:"sections"`
}

type sectionsSchema struct {
	Title            string `toml:"title"`
	Authors          string `toml:"authors"`
	Abstract         string `toml:"abstract"`
	ProblemStatement string `toml:"problem_statement"`
	Methodology      string `toml:"methodology"`
	KeyResults       string `toml:"key_results"`
	Conclusion       string `toml:"conclusion"`
}
