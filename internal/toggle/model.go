// Package toggle holds the view model of a rendered directory listing and the
// two independent toggles that operate on it: files-only filtering and inline
// image previews.
package toggle

import (
	"errors"
	"fmt"
	"strings"
)

// FilesState is the state of the files filter control.
type FilesState int

const (
	ShowingAll FilesState = iota
	ShowingFilesOnly
)

func (s FilesState) String() string {
	if s == ShowingFilesOnly {
		return "files-only"
	}
	return "all"
}

// ImagesState is the state of the images filter control.
type ImagesState int

const (
	LinksVisible ImagesState = iota
	ImagesVisible
)

func (s ImagesState) String() string {
	if s == ImagesVisible {
		return "images"
	}
	return "links"
}

// Click names one of the two controls.
type Click string

const (
	ClickFiles  Click = "files"
	ClickImages Click = "images"
)

var ErrUnknownClick = errors.New("unknown click")

// ParseClick accepts the control names used in query strings and CLI flags.
func ParseClick(s string) (Click, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "files", "f":
		return ClickFiles, nil
	case "images", "imgs", "i":
		return ClickImages, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClick, s)
}

// FileLink is a marked anchor inside a file entry.
type FileLink struct {
	Href          string `json:"href" yaml:"href"`
	Extension     string `json:"extension" yaml:"extension"`
	ImageEligible bool   `json:"image_eligible" yaml:"image_eligible"`
}

// NewFileLink derives the extension of href. Eligibility is decided by the
// controller because it depends on which controls the page carries.
func NewFileLink(href string) FileLink {
	return FileLink{Href: href, Extension: Extension(href)}
}

// Entry is one top-level item of the listing.
type Entry struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty"`
	Links []FileLink `json:"links,omitempty" yaml:"links,omitempty"`
}

// IsFile reports whether the entry carries a file-link marker.
func (e Entry) IsFile() bool {
	return len(e.Links) > 0
}

// View is everything the controller needs from a page, read once.
type View struct {
	FilesControl  bool
	ImagesControl bool
	Entries       []Entry
}

// Control is the visual state of one control.
type Control struct {
	Present     bool `json:"present" yaml:"present"`
	Unavailable bool `json:"unavailable" yaml:"unavailable"`
	Active      bool `json:"active" yaml:"active"`
}

// Bound reports whether clicks on the control do anything.
func (c Control) Bound() bool {
	return c.Present && !c.Unavailable
}

// LinkRef addresses a FileLink by entry index and link index within it.
type LinkRef struct {
	Entry int `json:"entry"`
	Link  int `json:"link"`
}

// Preview is an inline image to be placed after a link container.
type Preview struct {
	Ref  LinkRef `json:"ref"`
	Href string  `json:"href"`
}

// Patch is the visibility delta produced by a single transition.
type Patch struct {
	Target         Click     `json:"target"`
	HideEntries    []int     `json:"hide_entries,omitempty"`
	ShowEntries    []int     `json:"show_entries,omitempty"`
	HideLinks      []LinkRef `json:"hide_links,omitempty"`
	ShowLinks      []LinkRef `json:"show_links,omitempty"`
	InsertPreviews []Preview `json:"insert_previews,omitempty"`
	RemovePreviews []LinkRef `json:"remove_previews,omitempty"`
	Active         bool      `json:"active"`
}
