package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rorical/nextword/internal/models"
)

// ErrUnreachable wraps transport failures: the request never got a response.
var ErrUnreachable = errors.New("could not reach prediction server")

// APIError is a non-2xx answer from the prediction server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the /health and /predict endpoints of the prediction server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

type predictRequest struct {
	Text     string `json:"text"`
	NumWords int    `json:"num_words"`
}

type predictResponse struct {
	Completion string   `json:"completion"`
	Words      []string `json:"words"`
	Error      string   `json:"error"`
}

// New returns a client for baseURL. A zero timeout leaves requests unbounded.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

// Health succeeds when GET /health answers with a 2xx status.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("health: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !isOK(resp.StatusCode) {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("health: unexpected status %d", resp.StatusCode)}
	}
	return nil
}

// Predict asks the server for numWords words continuing text.
// The returned Prediction carries text as its Prompt.
func (c *Client) Predict(ctx context.Context, text string, numWords int) (models.Prediction, error) {
	body, err := json.Marshal(predictRequest{Text: text, NumWords: numWords})
	if err != nil {
		return models.Prediction{}, fmt.Errorf("predict: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return models.Prediction{}, fmt.Errorf("predict: create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Warn("predict request failed", "request_id", requestID, "error", err)
		return models.Prediction{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	c.Logger.Debug("predict response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	var out predictResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if !isOK(resp.StatusCode) {
		msg := out.Error
		if decodeErr != nil || msg == "" {
			msg = fmt.Sprintf("Server error: %d", resp.StatusCode)
		}
		return models.Prediction{}, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return models.Prediction{}, fmt.Errorf("predict: decode response: %w", decodeErr)
	}

	return models.Prediction{
		Prompt:     text,
		Completion: out.Completion,
		Words:      out.Words,
	}, nil
}

func isOK(status int) bool {
	return status >= 200 && status < 300
}
