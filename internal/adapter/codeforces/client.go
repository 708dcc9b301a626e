package codeforces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cftracker/internal/domain/model"
	"cftracker/internal/domain/ports"
)

const (
	DefaultBaseURL = "https://codeforces.com/api"
	DefaultCount   = 10000

	statusOK = "OK"
)

// Client implements SubmissionProvider using the public Codeforces API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	count      int
	logger     ports.Logger
}

var _ ports.SubmissionProvider = (*Client)(nil)

// New creates a new Codeforces client. Empty baseURL and non-positive count
// fall back to the public API and DefaultCount.
func New(baseURL string, count int, timeout time.Duration, logger ports.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if count <= 0 {
		count = DefaultCount
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		count:      count,
		logger:     logger,
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

type apiProblem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    *int     `json:"rating"`
	Tags      []string `json:"tags"`
}

type apiSubmission struct {
	ID                  int64      `json:"id"`
	CreationTimeSeconds int64      `json:"creationTimeSeconds"`
	Problem             apiProblem `json:"problem"`
	Verdict             string     `json:"verdict"`
}

// GetSubmissions retrieves the most recent submissions of handle, newest first.
func (c *Client) GetSubmissions(ctx context.Context, handle string) ([]model.Submission, error) {
	query := url.Values{}
	query.Set("handle", handle)
	query.Set("from", "1")
	query.Set("count", strconv.Itoa(c.count))

	var payload []apiSubmission
	if err := c.call(ctx, "user.status", query, &payload); err != nil {
		return nil, err
	}

	submissions := make([]model.Submission, 0, len(payload))
	for _, item := range payload {
		submissions = append(submissions, model.Submission{
			ID: item.ID,
			Problem: model.Problem{
				ContestID: item.Problem.ContestID,
				Index:     item.Problem.Index,
				Name:      item.Problem.Name,
				Rating:    item.Problem.Rating,
				Tags:      item.Problem.Tags,
			},
			Verdict:   model.Verdict(item.Verdict),
			CreatedAt: time.Unix(item.CreationTimeSeconds, 0).UTC(),
		})
	}

	c.logger.Debug(ctx, "fetched submissions", "handle", handle, "count", len(submissions))
	return submissions, nil
}

// call performs a GET against an API method and decodes the result field into out.
func (c *Client) call(ctx context.Context, method string, query url.Values, out any) error {
	endpoint := c.baseURL + "/" + method + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("perform request: %w", err)
		}
		return fmt.Errorf("%w: perform request: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", model.ErrUpstream, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Status == "" {
		return fmt.Errorf("%w: unexpected status %d: %s", model.ErrUpstream, resp.StatusCode, snippet(data))
	}

	if env.Status != statusOK {
		return commentError(env.Comment)
	}

	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("%w: decode result: %v", model.ErrUpstream, err)
	}
	return nil
}

func commentError(comment string) error {
	if comment == "" {
		comment = "request failed"
	}
	if strings.Contains(strings.ToLower(comment), "not found") {
		return fmt.Errorf("%w: %s", model.ErrHandleNotFound, comment)
	}
	return fmt.Errorf("%w: %s", model.ErrUpstream, comment)
}

func snippet(data []byte) string {
	const limit = 256
	if len(data) > limit {
		data = data[:limit]
	}
	return strings.TrimSpace(string(data))
}
