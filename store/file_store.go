package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

// Format names a persistence encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatSQLite Format = "sqlite"

	// DefaultFormat is used when neither config nor file extension says otherwise.
	DefaultFormat = FormatJSON
)

// ParseFormat validates a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTOML, FormatSQLite:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: json, yaml, toml, sqlite)", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath infers the format from a file extension, falling back to
// DefaultFormat for unknown or missing extensions.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return DefaultFormat
	}
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	if f == FormatSQLite {
		return ".db"
	}
	return "." + string(f)
}

// tomlDocument wraps the collection because TOML has no top-level arrays.
type tomlDocument struct {
	Tasks []models.Task `toml:"tasks"`
}

// FilePersister stores the task collection in a single structured text file.
// It supports JSON, YAML and TOML encodings.
type FilePersister struct {
	fs     afero.Fs
	path   string
	format Format
}

// NewFilePersister creates a persister for path on the given filesystem.
// Use afero.NewOsFs() for real files, or afero.NewMemMapFs() for testing.
func NewFilePersister(fs afero.Fs, path string, format Format) (*FilePersister, error) {
	switch format {
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return nil, fmt.Errorf("%w for file persister: %q", ErrUnsupportedFormat, format)
	}
	return &FilePersister{fs: fs, path: path, format: format}, nil
}

// Path returns the backing file path.
func (p *FilePersister) Path() string { return p.path }

// Format returns the encoding in use.
func (p *FilePersister) Format() Format { return p.format }

// Load reads the whole collection. A missing or empty file is an empty collection.
func (p *FilePersister) Load() ([]models.Task, error) {
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("read tasks file %s: %w", p.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Task{}, nil
	}

	tasks, err := p.decode(data)
	if err != nil {
		return nil, &ParseError{Path: p.path, Format: p.format, Err: err}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (p *FilePersister) decode(data []byte) ([]models.Task, error) {
	var tasks []models.Task
	switch p.format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, err
		}
	case FormatTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		tasks = doc.Tasks
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, p.format)
	}
	return tasks, nil
}

func (p *FilePersister) encode(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	switch p.format {
	case FormatJSON:
		return json.MarshalIndent(tasks, "", "  ")
	case FormatYAML:
		return yaml.Marshal(tasks)
	case FormatTOML:
		buf := new(bytes.Buffer)
		if err := toml.NewEncoder(buf).Encode(tomlDocument{Tasks: tasks}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, p.format)
	}
}

// Save overwrites the file with the whole collection. The new content is
// written to a sibling temp file first and renamed into place.
func (p *FilePersister) Save(tasks []models.Task) error {
	data, err := p.encode(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks to %s: %w", p.format, err)
	}

	dir := filepath.Dir(p.path)
	if dir != "." && dir != "" {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tempPath := p.path + ".tmp-" + uuid.NewString()
	if err := afero.WriteFile(p.fs, tempPath, data, 0o644); err != nil {
		_ = p.fs.Remove(tempPath)
		return fmt.Errorf("write temporary tasks file %s: %w", tempPath, err)
	}
	if err := p.fs.Rename(tempPath, p.path); err != nil {
		_ = p.fs.Remove(tempPath)
		return fmt.Errorf("replace tasks file %s: %w", p.path, err)
	}
	return nil
}
