package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/dmitrijs2005/gophfiles/internal/logging"
	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
	headerContentType   = "Content-Type"

	pathLogin  = "/auth/login"
	pathHealth = "/health"
	pathFiles  = "/api/files"
	pathSearch = "/api/files/search"
	pathUpload = "/api/files/upload"
	pathShare  = "/api/files/share"

	maxErrorBody = 64 << 10

	msgInvalidResponse = "Invalid response from server"
	msgInvalidShareURL = "Invalid share URL received from server"
)

// HTTPClient talks to the file-storage API over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  logging.Logger
	newID   func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithTimeout bounds every request. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient creates a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  logging.Nop{},
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, models.User, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", models.User{}, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, pathLogin, nil, bytes.NewReader(payload))
	if err != nil {
		return "", models.User{}, err
	}
	req.Header.Set(headerContentType, "application/json")

	resp, err := c.do(req)
	if err != nil {
		return "", models.User{}, err
	}
	defer closeBody(resp)

	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := readJSON(resp, &out); err != nil {
		return "", models.User{}, err
	}
	if out.Token == "" {
		return "", models.User{}, &ServerRejectedError{Status: resp.StatusCode, Message: msgInvalidResponse}
	}
	return out.Token, out.User, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, pathHealth, nil, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	var out struct {
		Status string `json:"status"`
	}
	if err := readJSON(resp, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return unreachable(fmt.Errorf("health status %q", out.Status))
	}
	return nil
}

func (c *HTTPClient) List(ctx context.Context, cred models.Credential) ([]models.FileRecord, error) {
	return c.fetchFiles(ctx, cred, pathFiles, nil)
}

// Search forwards query verbatim, including the empty string.
func (c *HTTPClient) Search(ctx context.Context, cred models.Credential, query string) ([]models.FileRecord, error) {
	return c.fetchFiles(ctx, cred, pathSearch, url.Values{"query": []string{query}})
}

func (c *HTTPClient) fetchFiles(ctx context.Context, cred models.Credential, path string, query url.Values) ([]models.FileRecord, error) {
	token, ok := cred.Token()
	if !ok {
		return nil, ErrNoCredential
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	setBearer(req, token)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	var out struct {
		Files []models.FileRecord `json:"files"`
	}
	if err := readJSON(resp, &out); err != nil {
		return nil, err
	}
	if out.Files == nil {
		return []models.FileRecord{}, nil
	}
	return out.Files, nil
}

// Upload checks the size ceiling, then streams req as a multipart form.
// No request is made when the check fails.
func (c *HTTPClient) Upload(ctx context.Context, cred models.Credential, ur UploadRequest, progress ProgressFunc) (models.FileRecord, error) {
	if ur.SizeBytes > MaxUploadSize {
		return models.FileRecord{}, ErrSizeLimitExceeded
	}
	token, ok := cred.Token()
	if !ok {
		return models.FileRecord{}, ErrNoCredential
	}

	body, contentType, length, err := multipartBody(ur)
	if err != nil {
		return models.FileRecord{}, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, pathUpload, nil, newProgressReader(body, length, progress))
	if err != nil {
		return models.FileRecord{}, err
	}
	req.ContentLength = length
	req.Header.Set(headerContentType, contentType)
	setBearer(req, token)

	resp, err := c.do(req)
	if err != nil {
		return models.FileRecord{}, err
	}
	defer closeBody(resp)

	var out struct {
		File *models.FileRecord `json:"file"`
	}
	if err := readJSON(resp, &out); err != nil {
		return models.FileRecord{}, err
	}
	if out.File == nil {
		return models.FileRecord{}, &ServerRejectedError{Status: resp.StatusCode, Message: msgInvalidResponse}
	}

	if progress != nil {
		progress(1)
	}
	return *out.File, nil
}

// Delete succeeds only on 200 OK.
func (c *HTTPClient) Delete(ctx context.Context, cred models.Credential, id string) error {
	token, ok := cred.Token()
	if !ok {
		return ErrNoCredential
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodDelete, pathFiles+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	setBearer(req, token)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return classify(resp)
	}
	return nil
}

// GenerateShareLink asks the server for a share URL. Repeated calls may
// return different URLs. The returned record already carries the URL.
func (c *HTTPClient) GenerateShareLink(ctx context.Context, cred models.Credential, id string) (string, models.FileRecord, error) {
	token, ok := cred.Token()
	if !ok {
		return "", models.FileRecord{}, ErrNoCredential
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, pathShare+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return "", models.FileRecord{}, err
	}
	setBearer(req, token)

	resp, err := c.do(req)
	if err != nil {
		return "", models.FileRecord{}, err
	}
	defer closeBody(resp)

	var out struct {
		ShareURL string             `json:"share_url"`
		File     *models.FileRecord `json:"file"`
	}
	if err := readJSON(resp, &out); err != nil {
		return "", models.FileRecord{}, err
	}
	if out.ShareURL == "" {
		return "", models.FileRecord{}, &ServerRejectedError{Status: resp.StatusCode, Message: msgInvalidShareURL}
	}

	var rec models.FileRecord
	if out.File != nil {
		rec = *out.File
	}
	rec.ShareURL = out.ShareURL
	return out.ShareURL, rec, nil
}

func (c *HTTPClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(headerRequestID, c.newID())
	return req, nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	ctx := logging.ContextWith(req.Context(), "request_id", req.Header.Get(headerRequestID))
	c.logger.Debug(ctx, "api request", "method", req.Method, "path", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "api transport error", "error", err)
		return nil, unreachable(err)
	}

	c.logger.Debug(ctx, "api response", "status", resp.StatusCode)
	return resp, nil
}

func setBearer(req *http.Request, token string) {
	req.Header.Set(headerAuthorization, "Bearer "+token)
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
