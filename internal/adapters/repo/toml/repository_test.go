package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(SummariesPathKey, path)
	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func record(contentPath string, title string, capturedAt time.Time) domain.SummaryRecord {
	return domain.SummaryRecord{
		Document: domain.DocumentReference{ContentPath: contentPath, IndexPath: contentPath + ".idx"},
		Summary: domain.Summary{
			Title:            title,
			Authors:          "A. Author",
			Abstract:         "Abstract text.",
			ProblemStatement: "Problem text.",
			Methodology:      "Method text.",
			KeyResults:       "Results text.",
			Conclusion:       "Conclusion text.",
		},
		CapturedAt: capturedAt,
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "summaries.toml"))
	older := record("temp/a.pdf", "First", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	newer := record("temp/b.pdf", "Second", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Save(context.Background(), older))
	require.NoError(t, repo.Save(context.Background(), newer))

	got, err := repo.GetByContentPath(context.Background(), "temp/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, older, got)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SummaryRecord{newer, older}, records)
}

func TestRepositorySaveReplacesSameDocument(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "summaries.toml"))
	first := record("temp/a.pdf", "Draft", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	second := record("temp/a.pdf", "Final", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Final", records[0].Summary.Title)
}

func TestRepositorySaveRejectsEmptyContentPath(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "summaries.toml"))

	err := repo.Save(context.Background(), domain.SummaryRecord{})
	require.EqualError(t, err, "summary record content path is empty")
}

func TestRepositorySaveCreatesDirectoryAndEnforcesPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "summaries.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), record("temp/a.pdf", "T", time.Now())))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(summariesFileMode), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing.toml"))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = repo.GetByContentPath(context.Background(), "temp/a.pdf")
	require.ErrorIs(t, err, domain.ErrSummaryNotFound)
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summaries.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[summaries]\nbroken"), 0o600))
	repo := newTestRepository(t, path)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode summaries file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summaries.toml")
	repo := newTestRepository(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, record("temp/a.pdf", "T", time.Now()))
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllRecords(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summaries.toml")
	repoA := newTestRepository(t, path)
	repoB := newTestRepository(t, path)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), record(prefix+strconv.Itoa(i), prefix, time.Now()))
		}
	}
	go save(repoA, "temp/a-")
	go save(repoB, "temp/b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	records, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, perRepoWrites*2)
}

func TestRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summaries.toml")
	repo := newTestRepository(t, path)
	require.NoError(t, repo.Save(context.Background(), record("temp/a.pdf", "T", time.Now())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "problem_statement")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summaries.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))
	repo := newTestRepository(t, path)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported summaries schema version 99")
}
