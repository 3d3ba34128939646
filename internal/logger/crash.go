// Package logger builds the CLI's slog logger and writes crash logs when a
// command panics.
package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// CrashLogDir is the crash log directory, relative to the data file's directory.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is how many crash logs are kept, the newest one included.
	MaxCrashLogs = 10

	crashLogPrefix = "crash_"
	crashLogSuffix = ".log"
	crashStamp     = "20060102_150405"
)

// CrashContext is what a crash log knows about the command that panicked.
type CrashContext struct {
	mu        sync.RWMutex
	lastInput string
	dataFile  string
	command   string
	version   string
	basePath  string
}

var globalContext = &CrashContext{}

// crashFs is where crash logs live. Tests swap in a MemMapFs.
var crashFs afero.Fs = afero.NewOsFs()

func (c *CrashContext) set(update func(*CrashContext)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	update(c)
}

// SetBasePath sets the directory crash logs are kept under, normally the
// directory holding the data file.
func SetBasePath(path string) {
	globalContext.set(func(c *CrashContext) { c.basePath = path })
}

// SetVersion records the application version.
func SetVersion(version string) {
	globalContext.set(func(c *CrashContext) { c.version = version })
}

// SetCommand records the command being run.
func SetCommand(cmd string) {
	globalContext.set(func(c *CrashContext) { c.command = cmd })
}

// SetLastInput records the command's arguments, capped at 500 bytes.
func SetLastInput(input string) {
	input = strings.TrimSpace(input)
	if len(input) > 500 {
		input = input[:500] + "... [truncated]"
	}
	globalContext.set(func(c *CrashContext) { c.lastInput = input })
}

// SetDataFile records which task file the command was working on.
func SetDataFile(path string) {
	globalContext.set(func(c *CrashContext) { c.dataFile = path })
}

// CrashLog is one recovered panic.
type CrashLog struct {
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	LastInput  string    `json:"last_input,omitempty"`
	DataFile   string    `json:"data_file,omitempty"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
}

// CrashLogFile is a crash log found on disk.
type CrashLogFile struct {
	Path string    `json:"path"`
	Time time.Time `json:"time"`
}

// HandlePanic recovers a panic, writes a crash log and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	path, err := saveCrashLog(newCrashLog(r))
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, debug.Stack())
	}

	fmt.Fprintf(os.Stderr, "\ntodolist crashed: %v\n", r)
	if err == nil {
		fmt.Fprintf(os.Stderr, "Crash log: %s (see: todolist crashes)\n", path)
	}
	fmt.Fprintf(os.Stderr, "Your tasks were last saved by the previous successful command.\n\n")

	os.Exit(1)
}

func newCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    globalContext.version,
		Command:    globalContext.command,
		PanicValue: fmt.Sprint(panicValue),
		StackTrace: string(debug.Stack()),
		LastInput:  globalContext.lastInput,
		DataFile:   globalContext.dataFile,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// saveCrashLog writes log under CrashLogDirectory and returns its path.
// Older logs are pruned first so at most MaxCrashLogs remain.
func saveCrashLog(log CrashLog) (string, error) {
	dir := CrashLogDirectory()
	if err := crashFs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	if err := pruneCrashLogs(dir, MaxCrashLogs-1); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	path := crashLogPath(log.Timestamp)
	if err := afero.WriteFile(crashFs, path, []byte(log.String()), 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

// CrashLogDirectory returns the directory crash logs are written to.
func CrashLogDirectory() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = ".todolist"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func crashLogPath(t time.Time) string {
	return filepath.Join(CrashLogDirectory(), crashLogPrefix+t.Format(crashStamp)+crashLogSuffix)
}

// String renders the crash log as the text written to disk.
func (c CrashLog) String() string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\nTODOLIST CRASH LOG\n%s\n\n", rule, rule)
	header := [][2]string{
		{"Timestamp:", c.Timestamp.Format(time.RFC3339)},
		{"Version:", c.Version},
		{"Command:", c.Command},
		{"Go:", c.GoVersion},
		{"OS/Arch:", c.OS + "/" + c.Arch},
		{"Data file:", c.DataFile},
	}
	for _, kv := range header {
		if kv[1] != "" {
			fmt.Fprintf(&b, "%-10s %s\n", kv[0], kv[1])
		}
	}

	writeSection(&b, "PANIC VALUE", c.PanicValue)
	writeSection(&b, "STACK TRACE", c.StackTrace)
	if c.LastInput != "" {
		writeSection(&b, "LAST USER INPUT", c.LastInput)
	}

	fmt.Fprintf(&b, "\n%s\nEND OF CRASH LOG\n%s\n", rule, rule)
	return b.String()
}

func writeSection(b *strings.Builder, title, body string) {
	rule := strings.Repeat("-", 80)
	fmt.Fprintf(b, "\n%s\n%s\n%s\n%s", rule, title, rule, body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
}

// scanCrashLogs returns the crash logs in dir, oldest first. Files whose
// names do not carry a crash timestamp are ignored.
func scanCrashLogs(dir string) ([]CrashLogFile, error) {
	entries, err := afero.ReadDir(crashFs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var logs []CrashLogFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, crashLogPrefix) || !strings.HasSuffix(name, crashLogSuffix) {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, crashLogPrefix), crashLogSuffix)
		t, err := time.ParseInLocation(crashStamp, stamp, time.Local)
		if err != nil {
			continue
		}
		logs = append(logs, CrashLogFile{Path: filepath.Join(dir, name), Time: t})
	}
	// names sort chronologically
	slices.SortFunc(logs, func(a, b CrashLogFile) int { return strings.Compare(a.Path, b.Path) })
	return logs, nil
}

// pruneCrashLogs deletes the oldest crash logs in dir until at most keep remain.
func pruneCrashLogs(dir string, keep int) error {
	logs, err := scanCrashLogs(dir)
	if err != nil {
		return err
	}
	for len(logs) > keep {
		if err := crashFs.Remove(logs[0].Path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(logs[0].Path), err)
		}
		logs = logs[1:]
	}
	return nil
}

// CrashLogs lists the crash logs in CrashLogDirectory, newest first.
// A missing directory means there are none.
func CrashLogs() ([]CrashLogFile, error) {
	logs, err := scanCrashLogs(CrashLogDirectory())
	if err != nil {
		return nil, err
	}
	slices.Reverse(logs)
	return logs, nil
}

// ReadCrashLog returns the contents of the crash log at path.
func ReadCrashLog(path string) (string, error) {
	content, err := afero.ReadFile(crashFs, path)
	if err != nil {
		return "", fmt.Errorf("read crash log: %w", err)
	}
	return string(content), nil
}
