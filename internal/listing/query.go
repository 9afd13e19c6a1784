package listing

import (
	"net/url"
	"strconv"

	"github.com/oarkflow/listingfilter/internal/toggle"
)

// Query addresses one listing page together with its toggle state. The state
// lives in the URL, so it lasts exactly as long as the page it belongs to.
type Query struct {
	Root   int
	Dir    string
	Files  bool
	Images bool
}

// Clicks is the click sequence that brings a fresh page into q's state.
func (q Query) Clicks() []toggle.Click {
	var clicks []toggle.Click
	if q.Files {
		clicks = append(clicks, toggle.ClickFiles)
	}
	if q.Images {
		clicks = append(clicks, toggle.ClickImages)
	}
	return clicks
}

// Href renders q as a /view link.
func (q Query) Href() string {
	v := url.Values{}
	v.Set("root", strconv.Itoa(q.Root))
	if q.Dir != "" {
		v.Set("dir", q.Dir)
	}
	if q.Files {
		v.Set("files", "1")
	}
	if q.Images {
		v.Set("imgs", "1")
	}
	return "/view?" + v.Encode()
}

// FilesHref is the link behind the files filter control.
func (q Query) FilesHref() string {
	q.Files = !q.Files
	return q.Href()
}

// ImagesHref is the link behind the images filter control.
func (q Query) ImagesHref() string {
	q.Images = !q.Images
	return q.Href()
}

// Enter addresses another directory. The toggles belong to the page they were
// clicked on, so the new page starts with both reset.
func (q Query) Enter(dir string) Query {
	q.Dir = dir
	q.Files, q.Images = false, false
	return q
}

// FileHref is the raw download link of a file under root. The file parameter
// goes last so the link ends with the file's own extension.
func FileHref(root int, file string) string {
	return "/get?root=" + strconv.Itoa(root) + "&file=" + url.QueryEscape(file)
}
