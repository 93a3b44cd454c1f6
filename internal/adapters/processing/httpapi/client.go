package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/ports"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000"

	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 2 * time.Minute
)

type API struct {
	BaseURL       string
	UploadPath    string
	SummarizePath string
	AskPath       string
}

func DefaultAPI(baseURL string) API {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	return API{
		BaseURL:       baseURL,
		UploadPath:    "/upload",
		SummarizePath: "/summarize",
		AskPath:       "/ask",
	}
}

// Client talks to the document processing backend. It serves both the upload
// pipeline and chat answers.
type Client struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var (
	_ ports.ProcessingService = Client{}
	_ ports.ResponseResolver  = Client{}
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type uploadResponse struct {
	ContentPath string `json:"filepath" validate:"required"`
	IndexPath   string `json:"vector_path" validate:"required"`
}

type summarizeResponse struct {
	Title            string `json:"title" validate:"required"`
	Authors          string `json:"authors" validate:"required"`
	Abstract         string `json:"abstract" validate:"required"`
	ProblemStatement string `json:"problemStatement" validate:"required"`
	Methodology      string `json:"methodology" validate:"required"`
	KeyResults       string `json:"keyResults" validate:"required"`
	Conclusion       string `json:"conclusion" validate:"required"`
}

type askRequest struct {
	Question    string `json:"question"`
	ContentPath string `json:"filepath"`
	IndexPath   string `json:"vector_path"`
}

type askResponse struct {
	Answer string `json:"answer" validate:"required"`
}

type errorResponse struct {
	Detail  any    `json:"detail"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c Client) Store(ctx context.Context, file domain.UploadFile) (domain.DocumentReference, error) {
	endpoint, err := buildAPIURL(c.API.BaseURL, c.API.UploadPath)
	if err != nil {
		return domain.DocumentReference{}, err
	}

	body, contentType, err := encodeUpload(file)
	if err != nil {
		return domain.DocumentReference{}, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, body)
	if err != nil {
		return domain.DocumentReference{}, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	var payload uploadResponse
	if err := c.do(req, "upload document", &payload); err != nil {
		return domain.DocumentReference{}, err
	}

	return domain.DocumentReference{
		ContentPath: strings.TrimSpace(payload.ContentPath),
		IndexPath:   strings.TrimSpace(payload.IndexPath),
	}, nil
}

func (c Client) Summarize(ctx context.Context, contentPath string) (domain.Summary, error) {
	if strings.TrimSpace(contentPath) == "" {
		return domain.Summary{}, errors.New("content path is required")
	}

	endpoint, err := buildAPIURL(c.API.BaseURL, c.API.SummarizePath)
	if err != nil {
		return domain.Summary{}, err
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("parse summarize url: %w", err)
	}
	query := parsed.Query()
	query.Set("filepath", contentPath)
	parsed.RawQuery = query.Encode()

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("create summarize request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var payload summarizeResponse
	if err := c.do(req, "summarize document", &payload); err != nil {
		if errors.As(err, new(validator.ValidationErrors)) {
			return domain.Summary{}, fmt.Errorf("%w: %w", domain.ErrIncompleteSummary, err)
		}
		return domain.Summary{}, err
	}

	return domain.Summary{
		Title:            payload.Title,
		Authors:          payload.Authors,
		Abstract:         payload.Abstract,
		ProblemStatement: payload.ProblemStatement,
		Methodology:      payload.Methodology,
		KeyResults:       payload.KeyResults,
		Conclusion:       payload.Conclusion,
	}, nil
}

// Resolve asks the backend about the active document. The backend answers from
// the document's index, so without a document no request is made and a generic
// answer is returned instead.
func (c Client) Resolve(ctx context.Context, question string, doc *domain.DocumentReference) (string, error) {
	if doc == nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return domain.GenericAnswer(question), nil
	}

	endpoint, err := buildAPIURL(c.API.BaseURL, c.API.AskPath)
	if err != nil {
		return "", err
	}

	payload := askRequest{
		Question:    question,
		ContentPath: doc.ContentPath,
		IndexPath:   doc.IndexPath,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode ask request: %w", err)
	}

	// The caller owns the deadline for chat turns.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("create ask request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var answer askResponse
	if err := c.do(req, "ask question", &answer); err != nil {
		return "", err
	}

	return strings.TrimSpace(answer.Answer), nil
}

func (c Client) do(req *http.Request, action string, out any) error {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: %s", action, decodeError(resp))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%s response missing required fields: %w", action, err)
	}

	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func encodeUpload(file domain.UploadFile) (io.Reader, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(file.Name)))
	header.Set("Content-Type", domain.PDFContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create upload part: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", fmt.Errorf("write upload part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close upload body: %w", err)
	}

	return &body, writer.FormDataContentType(), nil
}

func decodeError(resp *http.Response) string {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	switch detail := payload.Detail.(type) {
	case string:
		if detail != "" {
			return fmt.Sprintf("status %d: %s", resp.StatusCode, detail)
		}
	case nil:
	default:
		encoded, err := json.Marshal(detail)
		if err == nil {
			return fmt.Sprintf("status %d: %s", resp.StatusCode, encoded)
		}
	}
	if payload.Message != "" {
		return fmt.Sprintf("status %d: %s", resp.StatusCode, payload.Message)
	}
	if payload.Error != "" {
		return fmt.Sprintf("status %d: %s", resp.StatusCode, payload.Error)
	}

	return fmt.Sprintf("status %d", resp.StatusCode)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
