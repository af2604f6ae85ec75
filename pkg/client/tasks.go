package client

import "net/http"

// Task is a task row as returned by the API. List rows additionally carry
// the localized labels and denormalized user names.
type Task struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	StatusLabel      string `json:"statusLabel,omitempty"`
	Priority         string `json:"priority"`
	PriorityLabel    string `json:"priorityLabel,omitempty"`
	DueDate          string `json:"dueDate"`
	DueDateFormatted string `json:"dueDateFormatted,omitempty"`
	AssignedTo       string `json:"assignedTo"`
	AssignedToName   string `json:"assignedToName,omitempty"`
	CreatedBy        string `json:"createdBy"`
	CreatedByName    string `json:"createdByName,omitempty"`
	IsDeleted        bool   `json:"isDeleted"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// TaskPayload is the body of a task create or update call. DueDate uses the
// YYYY-MM-DD format.
type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	CreatedBy   string `json:"createdBy"`
}

// CreateTask creates a task.
func (c *Client) CreateTask(payload TaskPayload) (*Task, *CallError) {
	var task Task
	if _, err := c.do(http.MethodPost, "/tasks", nil, payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Tasks lists one page of tasks. The returned total reflects the full
// filtered count independent of the requested window.
func (c *Client) Tasks(opts ListOptions) ([]Task, int64, *CallError) {
	var tasks []Task
	total, err := c.do(http.MethodGet, "/tasks", opts.values(), nil, &tasks)
	if err != nil {
		return nil, 0, err
	}
	var count int64
	if total != nil {
		count = *total
	}
	return tasks, count, nil
}

// Task fetches one task by ID.
func (c *Client) Task(id string) (*Task, *CallError) {
	var task Task
	if _, err := c.do(http.MethodGet, "/tasks/"+id, nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a full update to a task.
func (c *Client) UpdateTask(id string, payload TaskPayload) (*Task, *CallError) {
	var task Task
	if _, err := c.do(http.MethodPut, "/tasks/"+id, nil, payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask soft-deletes a task.
func (c *Client) DeleteTask(id string) (*Task, *CallError) {
	var task Task
	if _, err := c.do(http.MethodDelete, "/tasks/"+id, nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}
