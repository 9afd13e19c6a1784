// Package page binds the toggle view model to directory-listing markup.
//
// The markup contract is the one the listing views produce:
//
//	<a class="files">  files filter control
//	<a class="imgs">   images filter control
//	<body><ul><li>     one entry per top-level list item
//	<span class="link file"><a href="...">  a file link inside an entry
package page

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/oarkflow/listingfilter/internal/toggle"
)

const (
	classUnavailable = "unavail"
	classActive      = "active"
	classImageLink   = "imglink"
	classPreview     = "linkimg"
)

var ErrOutOfRange = errors.New("patch refers to an element outside the page")

type fileLink struct {
	container *html.Node
	href      string
}

// Document is a parsed listing page.
type Document struct {
	root     *html.Node
	files    *html.Node
	images   *html.Node
	entries  []*html.Node
	links    [][]fileLink
	previews map[toggle.LinkRef]*html.Node
}

// Parse reads a listing page. Markup problems are absorbed by the HTML5
// parser; only read errors are reported.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	d := &Document{root: root, previews: map[toggle.LinkRef]*html.Node{}}
	d.files = find(root, func(n *html.Node) bool { return isElement(n, atom.A) && hasClass(n, "files") })
	d.images = find(root, func(n *html.Node) bool { return isElement(n, atom.A) && hasClass(n, "imgs") })

	body := find(root, func(n *html.Node) bool { return isElement(n, atom.Body) })
	if body == nil {
		return d, nil
	}
	for ul := body.FirstChild; ul != nil; ul = ul.NextSibling {
		if !isElement(ul, atom.Ul) {
			continue
		}
		for li := ul.FirstChild; li != nil; li = li.NextSibling {
			if isElement(li, atom.Li) {
				d.addEntry(li)
			}
		}
	}
	return d, nil
}

func (d *Document) addEntry(li *html.Node) {
	var links []fileLink
	spans := findAll(li, func(n *html.Node) bool {
		return isElement(n, atom.Span) && hasClass(n, "link", "file")
	})
	for _, span := range spans {
		a := find(span, func(n *html.Node) bool {
			if !isElement(n, atom.A) {
				return false
			}
			_, ok := attr(n, "href")
			return ok
		})
		if a == nil {
			continue
		}
		href, _ := attr(a, "href")
		links = append(links, fileLink{container: span, href: href})
	}
	d.entries = append(d.entries, li)
	d.links = append(d.links, links)
}

// View returns the view model of the page as parsed.
func (d *Document) View() toggle.View {
	v := toggle.View{
		FilesControl:  d.files != nil,
		ImagesControl: d.images != nil,
		Entries:       make([]toggle.Entry, len(d.entries)),
	}
	for i, li := range d.entries {
		e := toggle.Entry{Name: text(li)}
		for _, l := range d.links[i] {
			e.Links = append(e.Links, toggle.NewFileLink(l.href))
		}
		v.Entries[i] = e
	}
	return v
}

// Controller builds a toggle controller for the page and marks the controls
// and eligible links accordingly.
func (d *Document) Controller() *toggle.Controller {
	c := toggle.New(d.View())
	d.Mark(c)
	return c
}

// Mark writes the controller's control and eligibility state as classes.
func (d *Document) Mark(c *toggle.Controller) {
	markControl(d.files, c.Files())
	markControl(d.images, c.Images())
	for _, ref := range c.Eligible() {
		if l, ok := d.link(ref); ok {
			addClass(l.container, classImageLink)
		}
	}
}

// markControl only adds classes; active is left to patches.
func markControl(n *html.Node, c toggle.Control) {
	if n != nil && c.Unavailable {
		addClass(n, classUnavailable)
	}
}

// Apply performs a patch on the page.
func (d *Document) Apply(p toggle.Patch) error {
	for _, i := range p.HideEntries {
		if err := d.setEntryHidden(i, true); err != nil {
			return err
		}
	}
	for _, i := range p.ShowEntries {
		if err := d.setEntryHidden(i, false); err != nil {
			return err
		}
	}
	for _, pv := range p.InsertPreviews {
		if err := d.insertPreview(pv); err != nil {
			return err
		}
	}
	for _, ref := range p.HideLinks {
		if err := d.setLinkHidden(ref, true); err != nil {
			return err
		}
	}
	for _, ref := range p.ShowLinks {
		if err := d.setLinkHidden(ref, false); err != nil {
			return err
		}
	}
	for _, ref := range p.RemovePreviews {
		d.removePreview(ref)
	}
	switch p.Target {
	case toggle.ClickFiles:
		if d.files != nil {
			setClass(d.files, classActive, p.Active)
		}
	case toggle.ClickImages:
		if d.images != nil {
			setClass(d.images, classActive, p.Active)
		}
	}
	return nil
}

func (d *Document) link(ref toggle.LinkRef) (fileLink, bool) {
	if ref.Entry < 0 || ref.Entry >= len(d.links) {
		return fileLink{}, false
	}
	links := d.links[ref.Entry]
	if ref.Link < 0 || ref.Link >= len(links) {
		return fileLink{}, false
	}
	return links[ref.Link], true
}

func (d *Document) setEntryHidden(i int, hidden bool) error {
	if i < 0 || i >= len(d.entries) {
		return fmt.Errorf("%w: entry %d", ErrOutOfRange, i)
	}
	setHidden(d.entries[i], hidden)
	return nil
}

func (d *Document) setLinkHidden(ref toggle.LinkRef, hidden bool) error {
	l, ok := d.link(ref)
	if !ok {
		return fmt.Errorf("%w: link %+v", ErrOutOfRange, ref)
	}
	setHidden(l.container, hidden)
	return nil
}

func (d *Document) insertPreview(pv toggle.Preview) error {
	l, ok := d.link(pv.Ref)
	if !ok {
		return fmt.Errorf("%w: link %+v", ErrOutOfRange, pv.Ref)
	}
	d.removePreview(pv.Ref)
	a := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "target", Val: "_blank"},
			{Key: "href", Val: pv.Href},
			{Key: "class", Val: classPreview},
		},
	}
	a.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "img",
		DataAtom: atom.Img,
		Attr:     []html.Attribute{{Key: "src", Val: pv.Href}},
	})
	l.container.Parent.InsertBefore(a, l.container.NextSibling)
	d.previews[pv.Ref] = a
	return nil
}

func (d *Document) removePreview(ref toggle.LinkRef) {
	n, ok := d.previews[ref]
	if !ok {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	delete(d.previews, ref)
}

// Previews reports how many preview elements this document has inserted and
// not yet removed. Markup the page arrived with is not counted.
func (d *Document) Previews() int {
	return len(d.previews)
}

// EntryHidden reports whether entry i is hidden.
func (d *Document) EntryHidden(i int) bool {
	return i >= 0 && i < len(d.entries) && isHidden(d.entries[i])
}

// LinkHidden reports whether the container of the referenced link is hidden.
func (d *Document) LinkHidden(ref toggle.LinkRef) bool {
	l, ok := d.link(ref)
	return ok && isHidden(l.container)
}

// Render writes the page back out.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}
