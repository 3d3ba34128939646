package store

import "github.com/spf13/afero"

// NewPersister returns the persister for the given format. The filesystem is
// only used by file-backed formats; SQLite always works on the OS filesystem.
func NewPersister(fs afero.Fs, path string, format Format) (Persister, error) {
	if format == FormatSQLite {
		p, err := NewSQLitePersister(path)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	p, err := NewFilePersister(fs, path, format)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ClosePersister releases the persister's resources if it holds any.
func ClosePersister(p Persister) error {
	if c, ok := p.(Closer); ok {
		return c.Close()
	}
	return nil
}
