package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oarkflow/listingfilter/filesystem"
	"github.com/oarkflow/listingfilter/filesystem/local"
)

var ErrNoRoots = errors.New("workspace has no roots")

type Root struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

type Workspace struct {
	Roots    []Root `json:"roots" yaml:"roots"`
	storages []filesystem.Storage
}

func (w *Workspace) Paths() (paths []string) {
	for _, root := range w.Roots {
		paths = append(paths, root.Path)
	}
	return
}

func (w *Workspace) Names() (names []string) {
	for _, root := range w.Roots {
		names = append(names, root.Name)
	}
	return
}

func (w *Workspace) Storages() []filesystem.Storage {
	return w.storages
}

func (w *Workspace) Storage(index int) (filesystem.Storage, bool) {
	if index < 0 || index >= len(w.storages) {
		return nil, false
	}
	return w.storages[index], true
}

// New opens a local storage for every root. Roots without a name are named
// after their directory.
func New(roots []Root) (*Workspace, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}
	w := &Workspace{}
	for _, root := range roots {
		storage, err := local.NewStorage(root.Path)
		if err != nil {
			return nil, err
		}
		root.Path = storage.BasePath()
		if root.Name == "" {
			root.Name = filepath.Base(root.Path)
		}
		w.Roots = append(w.Roots, root)
		w.storages = append(w.storages, storage)
	}
	return w, nil
}

// FromPaths builds a workspace from bare directory paths, as given on the
// command line.
func FromPaths(paths ...string) (*Workspace, error) {
	roots := make([]Root, 0, len(paths))
	for _, p := range paths {
		roots = append(roots, Root{Path: p})
	}
	return New(roots)
}

// Load reads a YAML file holding either a list of roots or a document with a
// roots key. Relative root paths are resolved against the file's directory.
func Load(file string) (*Workspace, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read workspace: %w", err)
	}
	var roots []Root
	if err := yaml.Unmarshal(data, &roots); err != nil {
		var doc Workspace
		if err2 := yaml.Unmarshal(data, &doc); err2 != nil {
			return nil, fmt.Errorf("parse workspace %s: %w", file, err)
		}
		roots = doc.Roots
	}
	base := filepath.Dir(file)
	for i, root := range roots {
		if root.Path != "" && !filepath.IsAbs(root.Path) {
			roots[i].Path = filepath.Join(base, root.Path)
		}
	}
	return New(roots)
}
