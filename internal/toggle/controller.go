package toggle

import (
	"slices"
)

// Controller owns the two toggle states of one page.
type Controller struct {
	entries     []Entry
	files       Control
	images      Control
	filesState  FilesState
	imagesState ImagesState
}

// New builds a controller from a page view. A page without a files control
// yields a controller on which every click is ignored.
func New(v View) *Controller {
	c := &Controller{entries: cloneEntries(v.Entries)}
	if !v.FilesControl {
		return c
	}
	c.files.Present = true
	if !slices.ContainsFunc(c.entries, Entry.IsFile) {
		c.files.Unavailable = true
	}

	if !v.ImagesControl {
		return c
	}
	c.images.Present = true
	eligible := 0
	if !c.files.Unavailable {
		for i := range c.entries {
			for j := range c.entries[i].Links {
				l := &c.entries[i].Links[j]
				if l.Extension == "" {
					l.Extension = Extension(l.Href)
				}
				l.ImageEligible = IsImageExtension(l.Extension)
				if l.ImageEligible {
					eligible++
				}
			}
		}
	}
	if eligible == 0 {
		c.images.Unavailable = true
	}
	return c
}

func cloneEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = Entry{Name: e.Name, Links: make([]FileLink, len(e.Links))}
		for j, l := range e.Links {
			// eligibility is recomputed in New
			out[i].Links[j] = FileLink{Href: l.Href, Extension: l.Extension}
		}
	}
	return out
}

func (c *Controller) Files() Control           { return c.files }
func (c *Controller) Images() Control          { return c.images }
func (c *Controller) FilesState() FilesState   { return c.filesState }
func (c *Controller) ImagesState() ImagesState { return c.imagesState }

// Entries returns a copy of the classified entries.
func (c *Controller) Entries() []Entry {
	out := cloneEntries(c.entries)
	for i := range out {
		for j := range out[i].Links {
			out[i].Links[j].ImageEligible = c.entries[i].Links[j].ImageEligible
		}
	}
	return out
}

// Eligible lists the image-eligible links in page order.
func (c *Controller) Eligible() []LinkRef {
	var refs []LinkRef
	for i, e := range c.entries {
		for j, l := range e.Links {
			if l.ImageEligible {
				refs = append(refs, LinkRef{Entry: i, Link: j})
			}
		}
	}
	return refs
}

// ToggleFiles flips the files filter. It returns false when the control is
// missing or unavailable.
func (c *Controller) ToggleFiles() (Patch, bool) {
	if !c.files.Bound() {
		return Patch{}, false
	}
	var p Patch
	c.filesState, p = Files(c.filesState, c.entries)
	c.files.Active = p.Active
	return p, true
}

// ToggleImages flips the images filter. It returns false when the control is
// missing or unavailable.
func (c *Controller) ToggleImages() (Patch, bool) {
	if !c.images.Bound() {
		return Patch{}, false
	}
	var p Patch
	c.imagesState, p = Images(c.imagesState, c.entries)
	c.images.Active = p.Active
	return p, true
}

// Click dispatches to the toggle named by k.
func (c *Controller) Click(k Click) (Patch, bool) {
	switch k {
	case ClickFiles:
		return c.ToggleFiles()
	case ClickImages:
		return c.ToggleImages()
	}
	return Patch{}, false
}

// Replay applies clicks in order and returns the patches of those that were
// handled.
func (c *Controller) Replay(clicks ...Click) []Patch {
	var patches []Patch
	for _, k := range clicks {
		if p, ok := c.Click(k); ok {
			patches = append(patches, p)
		}
	}
	return patches
}
