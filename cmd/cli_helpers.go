package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// appFs is the filesystem used for data files. Tests keep the OS filesystem
// because the lock file always lives on disk.
var appFs afero.Fs = afero.NewOsFs()

// ErrDataFileLocked is returned when another todolist process holds the data file.
var ErrDataFileLocked = errors.New("data file is locked by another todolist process")

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// printInfo writes a human-readable line unless --quiet or --json is set.
func printInfo(w io.Writer, format string, a ...any) {
	if isQuiet() || isJSON() {
		return
	}
	fmt.Fprintf(w, format+"\n", a...)
}

// session is one command's exclusive use of the data file.
type session struct {
	store     *store.TaskStore
	persister store.Persister
	lock      *flock.Flock
	path      string
	format    store.Format
}

// openStore locks the configured data file and loads it into a TaskStore.
// The caller must Close the session.
func openStore() (*session, error) {
	path, format, err := config.DataFilePath(appFs, GetConfig().Data)
	if err != nil {
		return nil, err
	}
	logger.SetBasePath(filepath.Dir(path))
	logger.SetDataFile(path)

	if err := appFs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrDataFileLocked, path)
	}

	p, err := store.NewPersister(appFs, path, format)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	s, err := store.NewTaskStore(p, store.WithLogger(slog.Default().With("file", path)))
	if err != nil {
		_ = store.ClosePersister(p)
		_ = lock.Unlock()
		return nil, err
	}

	slog.Debug("data file opened", "path", path, "format", format, "tasks", s.Len())
	return &session{store: s, persister: p, lock: lock, path: path, format: format}, nil
}

// Close releases the persister and the data file lock.
func (s *session) Close() error {
	return errors.Join(store.ClosePersister(s.persister), s.lock.Unlock())
}

// release is Close for defer: failures are only logged.
func (s *session) release() {
	if err := s.Close(); err != nil {
		LogError("close data file", err)
	}
}

// confirmOrAbort asks a yes/no question on in. JSON mode never prompts.
func confirmOrAbort(in io.Reader, out io.Writer, prompt string) bool {
	if isJSON() {
		return true
	}
	fmt.Fprint(out, prompt)
	reader := bufio.NewReader(in)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Fprintln(out, "Cancelled.")
		return false
	}
	return true
}

// interactive reports whether prompts and the picker may be shown.
// Tests replace it.
var interactive = func() bool {
	return !isJSON() && ui.IsInteractive()
}

// reportOutOfRange tells the user a task number does not exist. It is not an
// error: the store leaves the list untouched.
func reportOutOfRange(w io.Writer, action string, pos, count int) error {
	if isJSON() {
		return printJSON(w, mutationResult{Action: action, Number: pos + 1, Changed: false})
	}
	printInfo(w, "No task %d (the list has %d). Nothing to %s.", pos+1, count, action)
	return nil
}

// pickTask is the picker used when a command is run without a task number.
// Tests replace it.
var pickTask = func(cmd *cobra.Command, title string, entries []store.Entry) (int, error) {
	return ui.PickTask(title, entries, cmd.InOrStdin(), cmd.OutOrStdout())
}

// positionFromArgs returns the store position named by args[0], or lets the
// user pick one of candidates when no argument was given on a terminal.
// ok is false when the user cancelled or there was nothing to pick.
func positionFromArgs(cmd *cobra.Command, args []string, title string, candidates []store.Entry) (pos int, ok bool, err error) {
	if len(args) > 0 {
		p, perr := parsePosition(args[0])
		return p, perr == nil, perr
	}
	if !interactive() {
		return 0, false, fmt.Errorf("a task number is required when not running in a terminal")
	}
	if len(candidates) == 0 {
		printInfo(cmd.OutOrStdout(), "No tasks to choose from.")
		return 0, false, nil
	}

	pos, err = pickTask(cmd, title, candidates)
	if errors.Is(err, ui.ErrPickerCancelled) {
		printInfo(cmd.OutOrStdout(), "Cancelled.")
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return pos, true, nil
}
