package gridblur

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Source loads raw resource bytes by name.
type Source interface {
	Load(name string) ([]byte, error)
}

// FSSource reads resources from an fs.FS such as an embed.FS or os.DirFS.
type FSSource struct {
	FS fs.FS
}

// DirSource reads resources from a directory on disk.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

func (s FSSource) Load(name string) ([]byte, error) {
	if s.FS == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrResourceNotFound)
	}
	data, err := fs.ReadFile(s.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("%s: %w", name, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
