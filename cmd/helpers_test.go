package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// testEnv is an isolated home, working directory and data file for one test.
type testEnv struct {
	t        *testing.T
	dir      string
	dataFile string
	stdin    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "xdg"))

	origDefault := slog.Default()
	origInteractive, origPick := interactive, pickTask
	t.Cleanup(func() {
		slog.SetDefault(origDefault)
		interactive, pickTask = origInteractive, origPick
		viper.Reset()
	})
	interactive = func() bool { return false }

	return &testEnv{t: t, dir: dir, dataFile: filepath.Join(dir, "tasks.json")}
}

// run executes the CLI against the env's data file.
func (e *testEnv) run(args ...string) (stdout, stderr string, err error) {
	e.t.Helper()
	return e.runRaw(append([]string{"--file", e.dataFile}, args...)...)
}

// runRaw executes the CLI with exactly args.
func (e *testEnv) runRaw(args ...string) (stdout, stderr string, err error) {
	e.t.Helper()
	viper.Reset()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(e.stdin))
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// mustRun is run that fails the test on error.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, _, err := e.run(args...)
	require.NoError(e.t, err, "todolist %s", strings.Join(args, " "))
	return out
}

// tasks loads the data file directly, bypassing the CLI.
func (e *testEnv) tasks() []models.Task {
	e.t.Helper()
	p, err := store.NewPersister(afero.NewOsFs(), e.dataFile, store.FormatFromPath(e.dataFile))
	require.NoError(e.t, err)
	defer func() { _ = store.ClosePersister(p) }()

	tasks, err := p.Load()
	require.NoError(e.t, err)
	return tasks
}

// seed writes tasks straight to the data file.
func (e *testEnv) seed(tasks ...models.Task) {
	e.t.Helper()
	p, err := store.NewPersister(afero.NewOsFs(), e.dataFile, store.FormatFromPath(e.dataFile))
	require.NoError(e.t, err)
	defer func() { _ = store.ClosePersister(p) }()
	require.NoError(e.t, p.Save(tasks))
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func sampleTasks(t *testing.T) []models.Task {
	t.Helper()
	done := models.NewTask("Write report", "Q2 numbers", mustDate(t, "2024-04-15"), models.PriorityMedium, "Work")
	done.IsComplete = true
	return []models.Task{
		models.NewTask("Buy milk", "2% fat", mustDate(t, "2024-05-01"), models.PriorityHigh, "Errand"),
		done,
		models.NewTask("Call mom", "about milkshakes", mustDate(t, "2024-03-01"), models.PriorityLow, "Family"),
	}
}
