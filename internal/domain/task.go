package domain

import (
	"encoding/json"
	"strings"
)

// Task is a board entry for the tutor's own to-dos.
type Task struct {
	ID     int
	Title  string
	Status TaskStatus
	Tags   []string
}

// taskWire is the server shape: tags arrive as one comma-delimited string.
type taskWire struct {
	ID     int        `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
	Tags   string     `json:"tags"`
}

func (t *Task) UnmarshalJSON(data []byte) error {
	var w taskWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = Task{ID: w.ID, Title: w.Title, Status: w.Status, Tags: SplitTags(w.Tags)}
	return nil
}

// SplitTags parses a comma-delimited tag string into a trimmed list.
// Empty segments are dropped.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NextStatus cycles todo → doing → done → todo.
func (t Task) NextStatus() TaskStatus {
	switch t.Status {
	case TaskTodo:
		return TaskDoing
	case TaskDoing:
		return TaskDone
	default:
		return TaskTodo
	}
}
