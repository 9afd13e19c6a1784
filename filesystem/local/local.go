package local

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oarkflow/listingfilter/filesystem"
)

type Storage struct {
	basePath string
}

func NewStorage(base string) (*Storage, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolve base path %s: %w", base, err)
	}
	stat, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat base path %s: %w", abs, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}
	return &Storage{basePath: abs}, nil
}

func (ls *Storage) resolvePath(path string) (string, error) {
	full := filepath.Join(ls.basePath, filepath.FromSlash(path))
	rel, err := filepath.Rel(ls.basePath, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", filesystem.ErrOutsideRoot, path)
	}
	return full, nil
}

func (ls *Storage) BasePath() string {
	return ls.basePath
}

func (ls *Storage) ListDir(path string) ([]filesystem.FileInfo, error) {
	fullPath, err := ls.resolvePath(path)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, err
	}
	infos := make([]filesystem.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, filesystem.FileInfo{
			Name:    entry.Name(),
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
			IsDir:   info.IsDir(),
		})
	}
	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].IsDir != infos[j].IsDir {
			return infos[i].IsDir
		}
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// ReadFile returns the file content along with its MIME type.
func (ls *Storage) ReadFile(path string) ([]byte, string, error) {
	fullPath, err := ls.resolvePath(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, "", err
	}
	// Attempt to determine MIME type using file extension.
	mimeType := mime.TypeByExtension(filepath.Ext(fullPath))
	if mimeType == "" {
		// Fallback: detect MIME type from file content.
		mimeType = http.DetectContentType(data)
	}
	return data, mimeType, nil
}
