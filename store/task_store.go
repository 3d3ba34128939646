package store

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/josephgoksu/todolist/models"
	"golang.org/x/text/cases"
)

// Entry pairs a task with its current position in the backing collection.
// Projections (search, sorts) return entries so callers can still address
// the original task after the projection has reordered or filtered it.
type Entry struct {
	Position int
	Task     models.Task
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithLogger sets the logger used for debug tracing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *TaskStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// TaskStore owns the authoritative ordered task collection. Every mutation
// writes the full collection through the Persister before returning.
//
// Tasks are addressed by their 0-based position. Operations given a position
// outside the collection do nothing and return nil.
type TaskStore struct {
	mu        sync.RWMutex
	tasks     []models.Task
	persister Persister
	logger    *slog.Logger
}

// NewTaskStore loads the collection from p and returns a store backed by it.
// Load failures, including *ParseError, are returned unchanged.
func NewTaskStore(p Persister, opts ...Option) (*TaskStore, error) {
	s := &TaskStore{
		persister: p,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := p.Load()
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	s.tasks = tasks
	s.logger.Debug("tasks loaded", "count", len(tasks))
	return s, nil
}

// Create appends a new incomplete task and persists the collection.
// Inputs are stored as given; nothing is validated.
func (s *TaskStore) Create(title, description string, due models.Date, priority models.TaskPriority, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, models.NewTask(title, description, due, priority, category))
	return s.saveLocked("create")
}

// Edit replaces every field of the task at pos except its completion flag.
func (s *TaskStore) Edit(pos int, title, description string, due models.Date, priority models.TaskPriority, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRangeLocked(pos) {
		s.ignore("edit", pos)
		return nil
	}

	edited := models.NewTask(title, description, due, priority, category)
	edited.IsComplete = s.tasks[pos].IsComplete
	s.tasks[pos] = edited
	return s.saveLocked("edit")
}

// Delete removes the task at pos; later tasks move down one position.
func (s *TaskStore) Delete(pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRangeLocked(pos) {
		s.ignore("delete", pos)
		return nil
	}

	s.tasks = slices.Delete(s.tasks, pos, pos+1)
	return s.saveLocked("delete")
}

// MarkComplete sets the completion flag of the task at pos. There is no
// inverse operation.
func (s *TaskStore) MarkComplete(pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRangeLocked(pos) {
		s.ignore("mark complete", pos)
		return nil
	}

	s.tasks[pos].IsComplete = true
	return s.saveLocked("mark complete")
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// List returns a snapshot of the collection in backing order.
func (s *TaskStore) List() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// Entries returns every task with its position, in backing order.
func (s *TaskStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entriesLocked()
}

// Search returns the tasks whose title or description contains query,
// ignoring case, in backing order. An empty query matches every task.
func (s *TaskStore) Search(query string) []models.Task {
	return tasksOf(s.SearchEntries(query))
}

// SearchEntries is Search with positions attached.
func (s *TaskStore) SearchEntries(query string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Casers carry state, so each search gets its own.
	folder := cases.Fold()
	needle := folder.String(query)

	matches := []Entry{}
	for i, t := range s.tasks {
		if strings.Contains(folder.String(t.Title), needle) || strings.Contains(folder.String(t.Description), needle) {
			matches = append(matches, Entry{Position: i, Task: t})
		}
	}
	return matches
}

// SortByDueDate returns all tasks ordered by ascending due date. Tasks with
// equal dates keep their backing order. The backing order is not changed.
func (s *TaskStore) SortByDueDate() []models.Task {
	return tasksOf(s.SortEntriesByDueDate())
}

// SortEntriesByDueDate is SortByDueDate with positions attached.
func (s *TaskStore) SortEntriesByDueDate() []Entry {
	s.mu.RLock()
	entries := s.entriesLocked()
	s.mu.RUnlock()

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Task.DueDate.Compare(b.Task.DueDate)
	})
	return entries
}

// SortByPriority returns all tasks ordered High, Medium, Low, then any task
// whose priority is not one of those labels. Ties keep their backing order.
func (s *TaskStore) SortByPriority() []models.Task {
	return tasksOf(s.SortEntriesByPriority())
}

// SortEntriesByPriority is SortByPriority with positions attached.
func (s *TaskStore) SortEntriesByPriority() []Entry {
	s.mu.RLock()
	entries := s.entriesLocked()
	s.mu.RUnlock()

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Task.Priority.Rank(), b.Task.Priority.Rank())
	})
	return entries
}

func (s *TaskStore) inRangeLocked(pos int) bool {
	return pos >= 0 && pos < len(s.tasks)
}

func (s *TaskStore) entriesLocked() []Entry {
	entries := make([]Entry, len(s.tasks))
	for i, t := range s.tasks {
		entries[i] = Entry{Position: i, Task: t}
	}
	return entries
}

func (s *TaskStore) ignore(op string, pos int) {
	s.logger.Debug("position out of range, ignoring", "op", op, "position", pos, "count", len(s.tasks))
}

// saveLocked writes the whole collection. The in-memory change is kept even
// when the write fails; the error goes back to the caller.
func (s *TaskStore) saveLocked(op string) error {
	if err := s.persister.Save(s.tasks); err != nil {
		return fmt.Errorf("save tasks after %s: %w", op, err)
	}
	s.logger.Debug("tasks saved", "op", op, "count", len(s.tasks))
	return nil
}

func tasksOf(entries []Entry) []models.Task {
	tasks := make([]models.Task, len(entries))
	for i, e := range entries {
		tasks[i] = e.Task
	}
	return tasks
}
