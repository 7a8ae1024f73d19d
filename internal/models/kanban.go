package models

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the board columns.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

// StatusGradient returns the card background for a column.
func StatusGradient(s TaskStatus) string {
	switch s {
	case TaskStatusTodo:
		return "from-sky-100 to-indigo-100"
	case TaskStatusInProgress:
		return "from-amber-100 to-orange-100"
	case TaskStatusReview:
		return "from-pink-100 to-fuchsia-100"
	case TaskStatusDone:
		return "from-emerald-100 to-teal-100"
	default:
		return "from-slate-100 to-slate-200"
	}
}

type TaskCard struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Tags            []string   `json:"tags"`
	Status          TaskStatus `json:"status"`
	Category        string     `json:"category,omitempty"`
	Time            string     `json:"time,omitempty"`
	Comments        int        `json:"comments,omitempty"`
	Attachments     int        `json:"attachments,omitempty"`
	People          []string   `json:"people,omitempty"`
	Progress        int        `json:"progress,omitempty"`         // dots, 0-12
	ProgressPercent int        `json:"progress_percent,omitempty"` // 0-100
	Note            string     `json:"note,omitempty"`
	Bg              string     `json:"bg"`
}

type BoardColumn struct {
	ID    TaskStatus `json:"id"`
	Title string     `json:"title"`
}
