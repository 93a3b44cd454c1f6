package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	SummariesPathKey = "summaries.path"

	summariesFileMode   = 0o600
	summariesDirMode    = 0o700
	summariesConfigDir  = ".researchai"
	summariesConfigFile = "summaries.toml"
	tempFilePattern     = ".summaries-*.toml.tmp"
)

// Repository keeps the summary history in a single TOML file. Records are
// keyed by content path; saving the same document again replaces it.
type Repository struct {
	summariesPath string
	mu            *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SummaryRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(SummariesPathKey, filepath.Join(homeDir, summariesConfigDir, summariesConfigFile))

	summariesPath := strings.TrimSpace(cfg.GetString(SummariesPathKey))
	if summariesPath == "" {
		return nil, errors.New("summaries path is empty")
	}
	summariesPath, err = normalizeSummariesPath(summariesPath)
	if err != nil {
		return nil, err
	}

	return &Repository{summariesPath: summariesPath, mu: lockForPath(summariesPath)}, nil
}

func (r *Repository) Save(ctx context.Context, record domain.SummaryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(record.Document.ContentPath) == "" {
		return errors.New("summary record content path is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(record)
	updated := false
	for i := range file.Summaries {
		if file.Summaries[i].ContentPath == encoded.ContentPath {
			file.Summaries[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Summaries = append(file.Summaries, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByContentPath(ctx context.Context, contentPath string) (domain.SummaryRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SummaryRecord{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.SummaryRecord{}, err
	}

	for _, entry := range file.Summaries {
		if entry.ContentPath == contentPath {
			return fromSchema(entry), nil
		}
	}

	return domain.SummaryRecord{}, domain.ErrSummaryNotFound
}

// List returns the history newest first.
func (r *Repository) List(ctx context.Context) ([]domain.SummaryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.SummaryRecord, 0, len(file.Summaries))
	for _, entry := range file.Summaries {
		records = append(records, fromSchema(entry))
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CapturedAt.After(records[j].CapturedAt)
	})

	return records, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.summariesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read summaries file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode summaries file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.summariesPath), summariesDirMode); err != nil {
		return fmt.Errorf("create summaries directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode summaries file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.summariesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp summaries file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp summaries file: %w", err)
	}
	if err := tempFile.Chmod(summariesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp summaries file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp summaries file: %w", err)
	}
	if err := os.Rename(tempName, r.summariesPath); err != nil {
		return fmt.Errorf("replace summaries file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizeSummariesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve summaries path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(record domain.SummaryRecord) summarySchema {
	return summarySchema{
		ContentPath: record.Document.ContentPath,
		IndexPath:   record.Document.IndexPath,
		CapturedAt:  formatTime(record.CapturedAt),
		Sections: sectionsSchema{
			Title:            record.Summary.Title,
			Authors:          record.Summary.Authors,
			Abstract:         record.Summary.Abstract,
			ProblemStatement: record.Summary.ProblemStatement,
			Methodology:      record.Summary.Methodology,
			KeyResults:       record.Summary.KeyResults,
			Conclusion:       record.Summary.Conclusion,
		},
	}
}

func fromSchema(entry summarySchema) domain.SummaryRecord {
	return domain.SummaryRecord{
		Document: domain.DocumentReference{
			ContentPath: entry.ContentPath,
			IndexPath:   entry.IndexPath,
		},
		Summary: domain.Summary{
			Title:            entry.Sections.Title,
			Authors:          entry.Sections.Authors,
			Abstract:         entry.Sections.Abstract,
			ProblemStatement: entry.Sections.ProblemStatement,
			Methodology:      entry.Sections.Methodology,
			KeyResults:       entry.Sections.KeyResults,
			Conclusion:       entry.Sections.Conclusion,
		},
		CapturedAt: parseTime(entry.CapturedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
