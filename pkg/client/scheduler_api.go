package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Task is a scheduled callback registered with the scheduler service.
type Task struct {
	ID        string `json:"id,omitempty"`
	ProfileID string `json:"profileId"`
	// Delay in seconds before the task fires.
	Delay   int64          `json:"delay,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

var errMissingTaskID = errors.New("task id is required")

// ListTasks returns the tasks registered for the configured application.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var envelope struct {
		Tasks []Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, c.schedulerURL(""), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Tasks, nil
}

// CreateTask registers a task and returns it with the id assigned by the
// scheduler.
func (c *Client) CreateTask(ctx context.Context, task Task) (Task, error) {
	if task.ProfileID == "" {
		return Task{}, ErrMissingProfileID
	}

	var envelope struct {
		Task Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPost, c.schedulerURL(""), task, &envelope); err != nil {
		return Task{}, err
	}
	return envelope.Task, nil
}

// DeleteTask removes a scheduled task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return errMissingTaskID
	}
	return c.do(ctx, http.MethodDelete, c.schedulerURL(taskID), nil, nil)
}

func (c *Client) schedulerURL(taskID string) string {
	base := fmt.Sprintf("%s/v1/companies/%s/buckets/%s/apps/%s/tasks",
		strings.TrimRight(c.cfg.SchedulerURL, "/"),
		url.PathEscape(c.cfg.GroupID),
		url.PathEscape(c.cfg.BucketName),
		url.PathEscape(c.cfg.AppName),
	)
	if taskID == "" {
		return base
	}
	return base + "/" + url.PathEscape(taskID)
}
