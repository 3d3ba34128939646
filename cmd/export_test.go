package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Formats(t *testing.T) {
	tests := []struct {
		name   string
		target string
		to     string
		format store.Format
	}{
		{"yaml by extension", "backup.yaml", "", store.FormatYAML},
		{"toml by extension", "backup.toml", "", store.FormatTOML},
		{"sqlite by flag", "backup.bin", "sqlite", store.FormatSQLite},
		{"json default", "backup", "", store.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.seed(sampleTasks(t)...)
			target := filepath.Join(env.dir, "out", tt.target)

			args := []string{"export", target}
			if tt.to != "" {
				args = append(args, "--to", tt.to)
			}
			out := env.mustRun(args...)

			assert.Contains(t, out, "Exported 3 tasks")
			p, err := store.NewPersister(afero.NewOsFs(), target, tt.format)
			require.NoError(t, err)
			defer func() { _ = store.ClosePersister(p) }()
			exported, err := p.Load()
			require.NoError(t, err)
			assert.Equal(t, sampleTasks(t), exported)
		})
	}
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("export", "x.out", "--to", "xml")

	assert.ErrorIs(t, err, store.ErrUnsupportedFormat)
}

func TestExportCmd_RefusesDataFile(t *testing.T) {
	env := newTestEnv(t)
	env.seed(sampleTasks(t)...)

	for _, target := range []string{
		env.dataFile,
		"./tasks.json",
		"tasks.json",
		filepath.Join(env.dir, "out", "..", "tasks.json"),
	} {
		t.Run(target, func(t *testing.T) {
			_, _, err := env.run("export", target, "--to", "yaml")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "is the data file itself")
			assert.Equal(t, sampleTasks(t), env.tasks())
		})
	}
}

func TestExportCmd_RefusesDataFileThroughSymlink(t *testing.T) {
	env := newTestEnv(t)
	env.seed(sampleTasks(t)...)
	link := filepath.Join(env.dir, "alias.json")
	require.NoError(t, os.Symlink(env.dataFile, link))

	_, _, err := env.run("export", link, "--to", "yaml")

	require.Error(t, err)
	assert.Equal(t, sampleTasks(t), env.tasks())
}
