package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
)

// PrintError prints an error message without exiting. If the --verbose
// flag is set, it prints the full technical error instead.
func PrintError(w io.Writer, userMsg string, technicalErr error) {
	if isVerbose() && technicalErr != nil {
		fmt.Fprintln(w, ui.StyleError.Render("Error: "+technicalErr.Error()))
		return
	}
	fmt.Fprintln(w, ui.StyleError.Render(userMsg))
}

// LogError records an error at debug level. It prints nothing unless
// debug logging is enabled.
func LogError(msg string, err error) {
	if err != nil {
		slog.Debug(msg, "error", err)
		return
	}
	slog.Debug(msg)
}

// userMessage turns an error into the line shown without --verbose.
func userMessage(err error) string {
	var parseErr *store.ParseError
	switch {
	case errors.As(err, &parseErr):
		return fmt.Sprintf("Error: %s is not a valid %s task file. Fix or move it, then try again.", parseErr.Path, parseErr.Format)
	case errors.Is(err, ErrDataFileLocked):
		return "Error: another todolist command is using the task file. Try again in a moment."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
