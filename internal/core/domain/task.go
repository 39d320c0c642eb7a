package domain

// TaskPriority is the urgency level of a site task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskStatus tracks a task through its lifecycle.
type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
)

// Task is a to-do item raised against a project from WhatsApp.
type Task struct {
	TaskID    string       `json:"taskID"`
	ProjectID string       `json:"projectID"`
	ProfileID string       `json:"profileID"`
	Title     string       `json:"title"`
	Priority  TaskPriority `json:"priority"`
	Status    TaskStatus   `json:"status"`
	AuditFields
}
