package postmenu

// Menu is the filtered, grouped result shown to one viewer.
type Menu struct {
	Sections []Section
}

// Filter keeps the entries viewer may see, preserving catalog order.
func Filter(entries []Descriptor, viewer Viewer) []Descriptor {
	visible := make([]Descriptor, 0, len(entries))
	for _, d := range entries {
		if !viewer.Allows(d.Visibility) {
			continue
		}
		visible = append(visible, d)
	}
	return visible
}

// Build returns the menu for postID as seen by viewer. Sections whose gate
// rejects the viewer are dropped entirely.
func Build(postID string, viewer Viewer, location string) Menu {
	return FromCatalog(Catalog(postID, location), viewer)
}

// FromCatalog applies section gates and entry filtering to an arbitrary catalog.
func FromCatalog(catalog []Section, viewer Viewer) Menu {
	var menu Menu
	for _, s := range catalog {
		if !viewer.Allows(s.Gate) {
			continue
		}
		menu.Sections = append(menu.Sections, Section{
			Title:   s.Title,
			Gate:    s.Gate,
			Entries: Filter(s.Entries, viewer),
		})
	}
	return menu
}

// Section returns the visible section with the given title.
func (m Menu) Section(title string) (Section, bool) {
	for _, s := range m.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// Find locates a visible entry by id. Hidden entries are not found.
func (m Menu) Find(id string) (Descriptor, bool) {
	for _, s := range m.Sections {
		for _, d := range s.Entries {
			if d.ID == id {
				return d, true
			}
		}
	}
	return Descriptor{}, false
}

// Entries flattens the menu in display order.
func (m Menu) Entries() []Descriptor {
	var all []Descriptor
	for _, s := range m.Sections {
		all = append(all, s.Entries...)
	}
	return all
}
