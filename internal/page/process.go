package page

import (
	"io"

	"github.com/oarkflow/listingfilter/internal/toggle"
)

// Process parses a page from r, replays clicks on it and renders the result to
// w. Clicks on missing or unavailable controls are dropped, as a browser would
// drop them.
func Process(r io.Reader, w io.Writer, clicks ...toggle.Click) (*toggle.Controller, error) {
	d, err := Parse(r)
	if err != nil {
		return nil, err
	}
	c := d.Controller()
	for _, p := range c.Replay(clicks...) {
		if err := d.Apply(p); err != nil {
			return nil, err
		}
	}
	if err := d.Render(w); err != nil {
		return nil, err
	}
	return c, nil
}
