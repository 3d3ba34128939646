package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TaskPriority is the priority label of a task. The three canonical labels
// are defined below, but any string is accepted and stored verbatim.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// RankUnranked is the sort rank of any priority outside the canonical set.
// It places such tasks after Low.
const RankUnranked = 4

// Rank returns the sort rank of the priority: High=1, Medium=2, Low=3,
// anything else RankUnranked.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return RankUnranked
	}
}

// IsCanonical reports whether p is one of High, Medium or Low.
func (p TaskPriority) IsCanonical() bool {
	return p.Rank() != RankUnranked
}

// Task represents a single to-do item. It has no identifier of its own;
// the store addresses tasks by their position.
type Task struct {
	Title       string       `json:"title" yaml:"title" toml:"title"`
	Description string       `json:"description" yaml:"description" toml:"description"`
	DueDate     Date         `json:"dueDate" yaml:"dueDate" toml:"dueDate"`
	Priority    TaskPriority `json:"priority" yaml:"priority" toml:"priority"`
	Category    string       `json:"category" yaml:"category" toml:"category"`
	IsComplete  bool         `json:"isComplete" yaml:"isComplete" toml:"isComplete"`
}

// NewTask builds an incomplete task from the user-supplied fields.
func NewTask(title, description string, due Date, priority TaskPriority, category string) Task {
	return Task{
		Title:       title,
		Description: description,
		DueDate:     due,
		Priority:    priority,
		Category:    category,
	}
}

// TaskInput carries raw field values captured from the user. The store never
// validates; callers that want to constrain input run ValidateStruct on it.
type TaskInput struct {
	Title       string `validate:"max=500"`
	Description string `validate:"max=5000"`
	DueDate     Date
	Priority    string `validate:"priority"`
	Category    string `validate:"max=100"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = newValidator()
}

// newValidator returns a validator that also knows the "priority" tag:
// the field must hold one of the canonical labels.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return TaskPriority(fl.Field().String()).IsCanonical()
	})
	return v
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s any) error {
	if validate == nil {
		validate = newValidator()
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("invalid %s: rule '%s' (value: '%v')", e.Field(), ruleDescription(e), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}

func ruleDescription(e validator.FieldError) string {
	if e.Param() == "" {
		return e.Tag()
	}
	return e.Tag() + "=" + e.Param()
}
