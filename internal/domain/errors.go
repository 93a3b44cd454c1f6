package domain

import "errors"

var (
	ErrInvalidFileType        = errors.New("invalid file type: a PDF document is required")
	ErrUploadTransport        = errors.New("upload failed")
	ErrSummarizationTransport = errors.New("summarization failed")
	ErrIncompleteSummary      = errors.New("summary is incomplete")
	ErrResolverTimeout        = errors.New("response resolver timed out")
	ErrResolver               = errors.New("response resolver failed")
	ErrSessionStore           = errors.New("session store failure")
	ErrSessionKeyNotFound     = errors.New("session key not found")
	ErrSummaryNotFound        = errors.New("summary not found")
	ErrNoActiveDocument       = errors.New("no active document in this session")
)
