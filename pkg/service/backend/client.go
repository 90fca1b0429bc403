package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
	"github.com/uncal-lab/flowcanvas/pkg/utils/safe"
)

// Client talks to the scenario persistence service over HTTP. It does
// not retry and does not impose its own timeout; cancellation is the
// caller's responsibility via ctx.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     interfaces.TokenSource
}

var _ interfaces.ScenarioBackend = &Client{}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTokenSource(ts interfaces.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StaticTokenSource returns the same token for every request.
type StaticTokenSource string

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get token")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func readErrorBody(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return resp.Status
	}
	return string(data)
}

type canvasResponse struct {
	CanvasData json.RawMessage `json:"canvasData"`
}

func (c *Client) LoadCanvas(ctx context.Context, fileID types.FileID) (*model.WirePayload, error) {
	path := fmt.Sprintf("/api/projects/files/%s/canvas", fileID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(model.ErrLoadFailed, err.Error(), goerr.V(model.FileIDKey, fileID))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.Wrap(model.ErrLoadFailed, readErrorBody(resp),
			goerr.V(model.StatusKey, resp.StatusCode),
			goerr.V(model.FileIDKey, fileID))
	}

	var body canvasResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, goerr.Wrap(model.ErrLoadFailed, "failed to decode canvas response",
			goerr.V(model.FileIDKey, fileID))
	}

	return model.ParseCanvasData(body.CanvasData)
}

func (c *Client) SaveScenario(ctx context.Context, fileID types.FileID, saveReq *model.SaveRequest) error {
	payload, err := json.Marshal(saveReq)
	if err != nil {
		return goerr.Wrap(err, "failed to encode save request", goerr.V(model.FileIDKey, fileID))
	}

	path := fmt.Sprintf("/api/projects/files/%s/save-scenario", fileID)
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(model.ErrSaveFailed, err.Error(), goerr.V(model.FileIDKey, fileID))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.Wrap(model.ErrSaveFailed, readErrorBody(resp),
			goerr.V(model.StatusKey, resp.StatusCode),
			goerr.V(model.FileIDKey, fileID))
	}

	return nil
}

type putCanvasRequest struct {
	CanvasData string `json:"canvasData"`
	Metadata   string `json:"metadata,omitempty"`
}

func (c *Client) PutCanvas(ctx context.Context, fileID types.FileID, canvasData, metadata string) error {
	payload, err := json.Marshal(putCanvasRequest{CanvasData: canvasData, Metadata: metadata})
	if err != nil {
		return goerr.Wrap(err, "failed to encode canvas request", goerr.V(model.FileIDKey, fileID))
	}

	path := fmt.Sprintf("/api/projects/files/%s", fileID)
	req, err := c.newRequest(ctx, http.MethodPut, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(model.ErrSaveFailed, err.Error(), goerr.V(model.FileIDKey, fileID))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.Wrap(model.ErrSaveFailed, readErrorBody(resp),
			goerr.V(model.StatusKey, resp.StatusCode),
			goerr.V(model.FileIDKey, fileID))
	}

	return nil
}
