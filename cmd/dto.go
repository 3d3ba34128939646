package cmd

import (
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
)

// taskView is a task as printed by --json, with its 1-based number.
type taskView struct {
	Number int `json:"number"`
	models.Task
}

type mutationResult struct {
	Action  string       `json:"action"`
	Number  int          `json:"number"`
	Changed bool         `json:"changed"`
	Task    *models.Task `json:"task,omitempty"`
}

type exportResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Tasks  int    `json:"tasks"`
}

func toTaskViews(entries []store.Entry) []taskView {
	views := make([]taskView, len(entries))
	for i, e := range entries {
		views[i] = taskView{Number: e.Position + 1, Task: e.Task}
	}
	return views
}
