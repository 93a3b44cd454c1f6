package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func samplePDF() domain.UploadFile {
	return domain.UploadFile{
		Name:        "paper.pdf",
		ContentType: domain.PDFContentType,
		Data:        []byte("%PDF-1.7\n%fake body\n"),
	}
}

func sampleSummary() domain.Summary {
	return domain.Summary{
		Title:            "T",
		Authors:          "A. Author, B. Author",
		Abstract:         "We study things.",
		ProblemStatement: "Things are hard.",
		Methodology:      "We measured them.",
		KeyResults:       "Things got 12% easier.",
		Conclusion:       "Measure more things.",
	}
}

func newUploadFixture(t *testing.T) (*UploadService, *mocks.MockProcessingService, *inMemorySessionStore) {
	t.Helper()

	processing := mocks.NewMockProcessingService(t)
	store := newInMemorySessionStore()
	registry := NewDocumentRegistry(store, zap.NewNop())
	clock := fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	return NewUploadService(processing, registry, clock, zap.NewNop()), processing, store
}

func TestUploadServiceSubmitPublishesDocumentAndReturnsSummary(t *testing.T) {
	t.Parallel()

	service, processing, store := newUploadFixture(t)
	file := samplePDF()

	processing.EXPECT().Store(mockAnyContext(), file).
		Return(domain.DocumentReference{ContentPath: "/p1", IndexPath: "/v1"}, nil).Once()
	processing.EXPECT().Summarize(mockAnyContext(), "/p1").Return(sampleSummary(), nil).Once()

	summary, err := service.Submit(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "T", summary.Title)
	assert.Empty(t, summary.MissingSections())

	assert.Equal(t, map[string]string{"filepath": "/p1", "vectorPath": "/v1", "generation": "2"}, store.snapshot())

	ref, ok, err := NewDocumentRegistry(store, nil).Active(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.DocumentReference{ContentPath: "/p1", IndexPath: "/v1"}, ref)
}

func TestUploadServiceSubmitRejectsNonPDFWithoutNetworkCalls(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file domain.UploadFile
	}{
		{name: "text extension", file: domain.UploadFile{Name: "notes.txt", Data: []byte("%PDF-1.4")}},
		{name: "missing magic", file: domain.UploadFile{Name: "paper.pdf", Data: []byte("hello")}},
		{name: "wrong content type", file: domain.UploadFile{Name: "paper.pdf", ContentType: "image/png", Data: []byte("%PDF-1.4")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, processing, store := newUploadFixture(t)

			_, err := service.Submit(context.Background(), tt.file)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidFileType)
			processing.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
			processing.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
			assert.Empty(t, store.snapshot())
		})
	}
}

func TestUploadServiceSubmitStoreFailureLeavesRegistryUntouched(t *testing.T) {
	t.Parallel()

	service, processing, store := newUploadFixture(t)
	store.values["filepath"] = "/old"
	store.values["vectorPath"] = "/old-v"

	processing.EXPECT().Store(mockAnyContext(), mock.Anything).
		Return(domain.DocumentReference{}, errors.New("connection refused")).Once()

	_, err := service.Submit(context.Background(), samplePDF())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadTransport)
	processing.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	assert.Equal(t, map[string]string{"filepath": "/old", "vectorPath": "/old-v"}, store.snapshot())
}

func TestUploadServiceSubmitRejectsIncompleteStoreResponse(t *testing.T) {
	t.Parallel()

	service, processing, store := newUploadFixture(t)

	processing.EXPECT().Store(mockAnyContext(), mock.Anything).
		Return(domain.DocumentReference{ContentPath: "/p1"}, nil).Once()

	_, err := service.Submit(context.Background(), samplePDF())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadTransport)
	assert.Empty(t, store.snapshot())
}

func TestUploadServiceSubmitSummarizeFailureLeavesRegistryUntouched(t *testing.T) {
	t.Parallel()

	service, processing, store := newUploadFixture(t)
	store.values["filepath"] = "/old"
	store.values["vectorPath"] = "/old-v"

	processing.EXPECT().Store(mockAnyContext(), mock.Anything).
		Return(domain.DocumentReference{ContentPath: "/p2", IndexPath: "/v2"}, nil).Once()
	processing.EXPECT().Summarize(mockAnyContext(), "/p2").
		Return(domain.Summary{}, errors.New("status 500")).Once()

	_, err := service.Submit(context.Background(), samplePDF())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSummarizationTransport)
	assert.Equal(t, map[string]string{"filepath": "/old", "vectorPath": "/old-v"}, store.snapshot())
}

func TestUploadServiceSubmitRejectsSummaryWithEmptySection(t *testing.T) {
	t.Parallel()

	service, processing, store := newUploadFixture(t)
	incomplete := sampleSummary()
	incomplete.Methodology = "   "

	processing.EXPECT().Store(mockAnyContext(), mock.Anything).
		Return(domain.DocumentReference{ContentPath: "/p1", IndexPath: "/v1"}, nil).Once()
	processing.EXPECT().Summarize(mockAnyContext(), "/p1").Return(incomplete, nil).Once()

	_, err := service.Submit(context.Background(), samplePDF())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSummarizationTransport)
	assert.ErrorIs(t, err, domain.ErrIncompleteSummary)
	assert.Contains(t, err.Error(), "methodology")
	assert.Empty(t, store.snapshot())
}

func TestUploadServiceSubmitReturnsSessionStoreErrorWhenPublishFails(t *testing.T) {
	t.Parallel()

	processing := mocks.NewMockProcessingService(t)
	store := newInMemorySessionStore()
	store.putErr["vectorPath"] = errors.New("disk full")
	service := NewUploadService(processing, NewDocumentRegistry(store, nil), nil, nil)

	processing.EXPECT().Store(mockAnyContext(), mock.Anything).
		Return(domain.DocumentReference{ContentPath: "/p1", IndexPath: "/v1"}, nil).Once()
	processing.EXPECT().Summarize(mockAnyContext(), "/p1").Return(sampleSummary(), nil).Once()

	summary, err := service.Submit(context.Background(), samplePDF())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionStore)
	assert.Equal(t, domain.Summary{}, summary)
	assert.Empty(t, store.snapshot())
}

func TestUploadServiceSubmitLogsRequestID(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	processing := mocks.NewMockProcessingService(t)
	registry := NewDocumentRegistry(newInMemorySessionStore(), nil)
	service := NewUploadService(processing, registry, &tickingClock{}, zap.New(core))

	processing.EXPECT().Store(mockAnyContext(), mock.Anything).
		Return(domain.DocumentReference{ContentPath: "/p1", IndexPath: "/v1"}, nil).Once()
	processing.EXPECT().Summarize(mockAnyContext(), "/p1").Return(sampleSummary(), nil).Once()

	_, err := service.Submit(context.Background(), samplePDF())
	require.NoError(t, err)

	entries := logs.FilterMessage("document summarized").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "upload", fields["module"])
	assert.Equal(t, "paper.pdf", fields["file"])
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, time.Second, fields["elapsed"])
}
