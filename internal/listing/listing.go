// Package listing turns a storage directory into the rows of a listing page.
package listing

import (
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/oarkflow/listingfilter/filesystem"
	"github.com/oarkflow/listingfilter/internal/utils"
)

type Row struct {
	Name  string
	Href  string
	IsDir bool
	Size  string
	Date  string
}

type Listing struct {
	Title     string
	Directory string
	Parent    string
	HasParent bool
	Query     Query
	Rows      []Row
}

// Build lists q.Dir of storage. Directory rows and the parent link open a fresh
// listing; file rows link to the raw file.
func Build(storage filesystem.Storage, q Query) (Listing, error) {
	dir := cleanDir(q.Dir)
	q.Dir = dir
	infos, err := storage.ListDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("list %q: %w", dir, err)
	}
	l := Listing{
		Title:     "Directory listing for " + filepath.Join(storage.BasePath(), filepath.FromSlash(dir)),
		Directory: dir,
		Query:     q,
	}
	if dir != "" {
		l.HasParent = true
		l.Parent = q.Enter(cleanDir(path.Dir(dir))).Href()
	}
	for _, info := range infos {
		rel := path.Join(dir, info.Name)
		row := Row{
			Name:  info.Name,
			IsDir: info.IsDir,
			Size:  utils.HumanSize(info.Size),
			Date:  info.ModTime.Format(time.RFC822),
		}
		if info.IsDir {
			row.Href = q.Enter(rel).Href()
		} else {
			row.Href = FileHref(q.Root, rel)
		}
		l.Rows = append(l.Rows, row)
	}
	return l, nil
}

func cleanDir(dir string) string {
	return path.Clean("/" + filepath.ToSlash(dir))[1:]
}
