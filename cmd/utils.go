package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/josephgoksu/todolist/models"
)

// parsePosition converts a 1-based task number from the command line into
// the store's 0-based position. Range is checked by the store, not here.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("task number must be a whole number, got %q", arg)
	}
	return n - 1, nil
}

// parseDueDate accepts YYYY-MM-DD, "today" or "tomorrow". An empty string
// yields the zero date.
func parseDueDate(s string) (models.Date, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return models.Today(), nil
	case "tomorrow":
		return models.DateOf(time.Now().AddDate(0, 0, 1)), nil
	}
	d, err := models.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return models.Date{}, fmt.Errorf("due date must look like YYYY-MM-DD, today or tomorrow, got %q", s)
	}
	return d, nil
}

// normalizePriority maps any casing of High, Medium or Low onto the
// canonical label. Other labels are returned unchanged.
func normalizePriority(s string) models.TaskPriority {
	s = strings.TrimSpace(s)
	for _, p := range []models.TaskPriority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if strings.EqualFold(s, string(p)) {
			return p
		}
	}
	return models.TaskPriority(s)
}

// checkInput applies validation.strictPriority: when enabled, the task
// fields must satisfy the TaskInput rules.
func checkInput(in models.TaskInput) error {
	if !GetConfig().Validation.StrictPriority {
		return nil
	}
	return models.ValidateStruct(in)
}
