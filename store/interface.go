package store

import "github.com/josephgoksu/todolist/models"

// Persister defines the contract for durable storage of the task collection.
// Implementations are stateless between calls: every Save writes the whole
// ordered collection and every Load reads the whole collection back.
type Persister interface {
	// Save serializes the entire ordered collection, fully replacing whatever
	// was stored before. Every field of every task is written, including
	// IsComplete and DueDate.
	Save(tasks []models.Task) error

	// Load reads the collection back in the order it was saved. A backing
	// file that does not exist yet is the first-run state and yields an empty
	// collection with no error. Malformed content yields a *ParseError.
	Load() ([]models.Task, error)
}

// Closer is implemented by persisters that hold a resource open between calls,
// such as a database handle.
type Closer interface {
	Close() error
}
