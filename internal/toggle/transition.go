package toggle

// Files computes the files-filter transition out of state. Going to
// ShowingFilesOnly hides every non-file entry; going back shows every entry,
// including ones that were never hidden.
func Files(state FilesState, entries []Entry) (FilesState, Patch) {
	p := Patch{Target: ClickFiles}
	if state == ShowingAll {
		for i, e := range entries {
			if !e.IsFile() {
				p.HideEntries = append(p.HideEntries, i)
			}
		}
		state = ShowingFilesOnly
	} else {
		for i := range entries {
			p.ShowEntries = append(p.ShowEntries, i)
		}
		state = ShowingAll
	}
	p.Active = state == ShowingFilesOnly
	return state, p
}

// Images computes the images-filter transition out of state. Every eligible
// link gets exactly one preview on the way in and loses it on the way out.
func Images(state ImagesState, entries []Entry) (ImagesState, Patch) {
	p := Patch{Target: ClickImages}
	toImages := state == LinksVisible
	for i, e := range entries {
		for j, l := range e.Links {
			if !l.ImageEligible {
				continue
			}
			ref := LinkRef{Entry: i, Link: j}
			if toImages {
				p.InsertPreviews = append(p.InsertPreviews, Preview{Ref: ref, Href: l.Href})
				p.HideLinks = append(p.HideLinks, ref)
			} else {
				p.ShowLinks = append(p.ShowLinks, ref)
				p.RemovePreviews = append(p.RemovePreviews, ref)
			}
		}
	}
	if toImages {
		state = ImagesVisible
	} else {
		state = LinksVisible
	}
	p.Active = state == ImagesVisible
	return state, p
}
