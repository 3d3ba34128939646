package config

import (
	"os"
	"path/filepath"

	"github.com/josephgoksu/todolist/store"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/afero"
)

// dataFileBase is the data file name without extension.
const dataFileBase = "tasks"

// GetGlobalConfigDir returns the path to the global directory (~/.todolist).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todolist"), nil
}

// DataFormat returns the storage format for data: the configured format when
// set, else the format implied by the data file's extension, else JSON.
func DataFormat(data types.DataConfig) (store.Format, error) {
	if data.Format != "" {
		return store.ParseFormat(data.Format)
	}
	if data.File != "" {
		return store.FormatFromPath(data.File), nil
	}
	return store.DefaultFormat, nil
}

// DataFilePath returns the path of the task data file.
// Resolution order (first match wins):
// 1. Explicit config via "data.file" (flag/config file/env)
// 2. Local ./tasks.<ext> (if it exists)
// 3. $XDG_DATA_HOME/todolist/tasks.<ext> (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.todolist/tasks.<ext>
func DataFilePath(fs afero.Fs, data types.DataConfig) (string, store.Format, error) {
	format, err := DataFormat(data)
	if err != nil {
		return "", "", err
	}

	if data.File != "" {
		return data.File, format, nil
	}

	name := dataFileBase + format.Extension()
	if exists, _ := afero.Exists(fs, name); exists {
		return name, format, nil
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "todolist", name), format, nil
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return name, format, nil
	}
	return filepath.Join(dir, name), format, nil
}
