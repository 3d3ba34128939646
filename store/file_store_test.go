package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []models.Task {
	done := models.NewTask("Write report", "Q2 numbers", date("2024-04-15"), models.PriorityMedium, "Work")
	done.IsComplete = true
	return []models.Task{
		models.NewTask("Buy milk", "2%", date("2024-05-01"), models.PriorityHigh, "Errand"),
		done,
		models.NewTask("Quote \"test\"", "line one\nline two", models.Date{}, "Someday", ""),
	}
}

func setupTestPersister(t *testing.T, format Format) (*FilePersister, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	p, err := NewFilePersister(fs, "/data/tasks"+format.Extension(), format)
	require.NoError(t, err)
	return p, fs
}

func TestFilePersister_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			p, _ := setupTestPersister(t, format)

			require.NoError(t, p.Save(sampleTasks()))

			loaded, err := p.Load()
			require.NoError(t, err)
			assert.Equal(t, sampleTasks(), loaded)
		})
	}
}

func TestFilePersister_RoundTripEmpty(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			p, _ := setupTestPersister(t, format)

			require.NoError(t, p.Save(nil))

			loaded, err := p.Load()
			require.NoError(t, err)
			assert.NotNil(t, loaded)
			assert.Empty(t, loaded)
		})
	}
}

func TestFilePersister_MissingFile(t *testing.T) {
	p, fs := setupTestPersister(t, FormatJSON)

	tasks, err := p.Load()

	require.NoError(t, err)
	assert.Empty(t, tasks)
	exists, _ := afero.Exists(fs, p.Path())
	assert.False(t, exists, "loading must not create the file")
}

func TestFilePersister_EmptyFile(t *testing.T) {
	p, fs := setupTestPersister(t, FormatJSON)
	require.NoError(t, afero.WriteFile(fs, p.Path(), []byte("  \n"), 0o644))

	tasks, err := p.Load()

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestFilePersister_JSONShape(t *testing.T) {
	p, fs := setupTestPersister(t, FormatJSON)
	require.NoError(t, p.Save(sampleTasks()[:2]))

	data, err := afero.ReadFile(fs, p.Path())
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "["), "top level should be an array:\n%s", content)
	assert.Contains(t, content, `"dueDate": "2024-05-01"`)
	assert.Contains(t, content, `"isComplete": true`)
	assert.Contains(t, content, `"priority": "Medium"`)
}

func TestFilePersister_SaveOverwrites(t *testing.T) {
	p, fs := setupTestPersister(t, FormatJSON)
	require.NoError(t, p.Save(sampleTasks()))
	require.NoError(t, p.Save(sampleTasks()[:1]))

	loaded, err := p.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)

	// no temp files left behind
	entries, err := afero.ReadDir(fs, "/data")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.json", entries[0].Name())
}

func TestFilePersister_LoadsHandWrittenJSON(t *testing.T) {
	p, fs := setupTestPersister(t, FormatJSON)
	content := `[{"title":"A","description":"B","dueDate":"2025-01-31","priority":"Low","category":"C","isComplete":true}]`
	require.NoError(t, afero.WriteFile(fs, p.Path(), []byte(content), 0o644))

	tasks, err := p.Load()

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Title)
	assert.Equal(t, "2025-01-31", tasks[0].DueDate.String())
	assert.True(t, tasks[0].IsComplete)
}

func TestFilePersister_MalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
	}{
		{"json syntax", FormatJSON, `[{"title": "oops"`},
		{"json wrong type", FormatJSON, `[{"title": 42}]`},
		{"json bad date", FormatJSON, `[{"title": "x", "dueDate": "tomorrow"}]`},
		{"json object instead of array", FormatJSON, `{"title": "x"}`},
		{"yaml mapping instead of sequence", FormatYAML, "title: x\n"},
		{"yaml bad bool", FormatYAML, "- title: x\n  isComplete: maybe\n"},
		{"toml syntax", FormatTOML, "[[tasks]\ntitle = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, fs := setupTestPersister(t, tt.format)
			require.NoError(t, afero.WriteFile(fs, p.Path(), []byte(tt.content), 0o644))

			tasks, err := p.Load()

			assert.Nil(t, tasks)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, p.Path(), parseErr.Path)
			assert.Equal(t, tt.format, parseErr.Format)
		})
	}
}

func TestFilePersister_SaveFailure(t *testing.T) {
	p, err := NewFilePersister(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data/tasks.json", FormatJSON)
	require.NoError(t, err)

	err = p.Save(sampleTasks())

	require.Error(t, err)
	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr), "write failures are not parse errors")
}

func TestFilePersister_OsFs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.yaml")
	p, err := NewFilePersister(afero.NewOsFs(), path, FormatYAML)
	require.NoError(t, err)

	require.NoError(t, p.Save(sampleTasks()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	loaded, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleTasks(), loaded)
}

func TestNewFilePersister_RejectsSQLite(t *testing.T) {
	_, err := NewFilePersister(afero.NewMemMapFs(), "tasks.db", FormatSQLite)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"sqlite", FormatSQLite, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("tasks.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("tasks"))
	assert.Equal(t, FormatYAML, FormatFromPath("/x/tasks.YML"))
	assert.Equal(t, FormatTOML, FormatFromPath("tasks.toml"))
	assert.Equal(t, FormatSQLite, FormatFromPath("tasks.sqlite3"))
	assert.Equal(t, ".db", FormatSQLite.Extension())
	assert.Equal(t, ".yaml", FormatYAML.Extension())
}
