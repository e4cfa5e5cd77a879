// Package ticktick is the HTTP wrapper for the TickTick Open API v1.
package ticktick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production TickTick Open API endpoint.
const DefaultBaseURL = "https://api.ticktick.com/open/v1"

// Client is the TickTick Open API client. Access tokens are passed
// per call: each Alice request carries its own linked-account token,
// so the client holds no user credentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new TickTick client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetProjects lists the user's projects.
func (c *Client) GetProjects(ctx context.Context, token string) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, token, http.MethodGet, "/project", nil, &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectTasks returns all tasks in a project.
func (c *Client) GetProjectTasks(ctx context.Context, token, projectID string) ([]Task, error) {
	var data projectData
	path := fmt.Sprintf("/project/%s/data", projectID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &data); err != nil {
		return nil, fmt.Errorf("failed to get project %s data: %w", projectID, err)
	}
	return data.Tasks, nil
}

// GetTask fetches a single task.
func (c *Client) GetTask(ctx context.Context, token, projectID, taskID string) (*Task, error) {
	var task Task
	path := fmt.Sprintf("/project/%s/task/%s", projectID, taskID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &task); err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	return &task, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(ctx context.Context, token string, payload TaskPayload) (*Task, error) {
	var task Task
	if err := c.do(ctx, token, http.MethodPost, "/task", payload, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask updates an existing task. payload.ID and payload.ProjectID
// must be set.
func (c *Client) UpdateTask(ctx context.Context, token string, payload TaskPayload) (*Task, error) {
	var task Task
	path := fmt.Sprintf("/task/%s", payload.ID)
	if err := c.do(ctx, token, http.MethodPost, path, payload, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", payload.ID, err)
	}
	return &task, nil
}

// CompleteTask marks a task as completed.
func (c *Client) CompleteTask(ctx context.Context, token, projectID, taskID string) error {
	path := fmt.Sprintf("/project/%s/task/%s/complete", projectID, taskID)
	if err := c.do(ctx, token, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to complete task %s: %w", taskID, err)
	}
	return nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, token, projectID, taskID string) error {
	path := fmt.Sprintf("/project/%s/task/%s", projectID, taskID)
	if err := c.do(ctx, token, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	return nil
}

// do performs one API call: marshal body, send with bearer auth, check
// status, decode into out when requested.
func (c *Client) do(ctx context.Context, token, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
