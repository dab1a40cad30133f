package payment

// Selector holds at most one selected method, always one present in its catalog.
type Selector struct {
	catalog  *Catalog
	selected string
}

func NewSelector(catalog *Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Select ignores ids absent from the catalog and reports whether the selection was taken.
func (s *Selector) Select(id string) bool {
	if !s.catalog.Contains(id) {
		return false
	}
	s.selected = id
	return true
}

func (s *Selector) Clear() {
	s.selected = ""
}

func (s *Selector) Selected() (Method, bool) {
	if s.selected == "" {
		return Method{}, false
	}
	return s.catalog.Find(s.selected)
}

func (s *Selector) HasSelection() bool {
	_, ok := s.Selected()
	return ok
}
