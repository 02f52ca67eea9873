package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/common"
	"github.com/plantkeeper/plantkeeper/internal/logging"
)

// maxErrorBodyBytes caps how much of an error response is kept for logging.
const maxErrorBodyBytes = 512

// HTTPClient implements Client over plain JSON HTTP. The base URL is injected
// at construction; nothing here reads ambient host context.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL. A zero timeout means
// no timeout, matching the backend contract of fire-and-await calls.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do performs one backend call. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded 2xx response.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "backend request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w: %w", method, path, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "backend request", "method", method, "path", path,
		"request_id", requestID, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &HTTPError{Status: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) ListPlants(ctx context.Context) ([]models.Plant, error) {
	var plants []models.Plant
	if err := c.do(ctx, http.MethodGet, "/api/plants", nil, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

func (c *HTTPClient) CreatePlant(ctx context.Context, plant models.NewPlant) (*models.Plant, error) {
	var created models.Plant
	if err := c.do(ctx, http.MethodPost, "/api/plants", plant, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) GetPlant(ctx context.Context, id int) (*models.Plant, error) {
	var plant models.Plant
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/plants/%d", id), nil, &plant); err != nil {
		return nil, err
	}
	return &plant, nil
}

func (c *HTTPClient) ListGrowthRecords(ctx context.Context, plantID int) ([]models.GrowthRecord, error) {
	var records []models.GrowthRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/plants/%d/growth-records", plantID), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) AddGrowthRecord(ctx context.Context, plantID int, record models.NewGrowthRecord) (*models.GrowthRecord, error) {
	var created models.GrowthRecord
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/plants/%d/growth-records", plantID), record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) ListTasks(ctx context.Context, plantID int) ([]models.CareTask, error) {
	var tasks []models.CareTask
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/plants/%d/tasks", plantID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, plantID int, task models.NewCareTask) (*models.CareTask, error) {
	var created models.CareTask
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/plants/%d/tasks", plantID), task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) SetTaskStatus(ctx context.Context, plantID, taskID int, completed bool) (*models.CareTask, error) {
	payload := map[string]bool{"completed": completed}
	var updated models.CareTask
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/plants/%d/tasks/%d/status", plantID, taskID), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, plantID, taskID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/plants/%d/tasks/%d", plantID, taskID), nil, nil)
}

func (c *HTTPClient) ListFacts(ctx context.Context) ([]models.Fact, error) {
	var facts []models.Fact
	if err := c.do(ctx, http.MethodGet, "/api/facts", nil, &facts); err != nil {
		return nil, err
	}
	return facts, nil
}

func (c *HTTPClient) RandomFact(ctx context.Context) (*models.Fact, error) {
	var fact models.Fact
	if err := c.do(ctx, http.MethodGet, "/api/facts/random", nil, &fact); err != nil {
		return nil, err
	}
	return &fact, nil
}

func (c *HTTPClient) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := c.do(ctx, http.MethodGet, "/api/suppliers", nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}
