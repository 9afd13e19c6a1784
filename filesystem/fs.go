package filesystem

import (
	"errors"
	"os"
	"time"
)

// ErrOutsideRoot is returned for paths that escape the storage root.
var ErrOutsideRoot = errors.New("path escapes storage root")

type FileInfo struct {
	Name    string
	Size    int64
	Mode    os.FileMode
	ModTime time.Time
	IsDir   bool
}

type Storage interface {
	// ListDir returns the entries of the given (relative) directory, directories first, each group sorted by name.
	ListDir(path string) ([]FileInfo, error)
	// ReadFile returns the entire content of the file at the given (relative) path along with its MIME type.
	ReadFile(path string) ([]byte, string, error)
	// BasePath returns the storage’s base path or identifier.
	BasePath() string
}
