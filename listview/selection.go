package listview

// Selection is the set of checked record ids, kept in check order.
type Selection struct {
	ids   []string
	index map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{
		ids:   []string{},
		index: map[string]struct{}{},
	}
}

// SelectAll replaces the selection with exactly pageIDs when checked, and
// clears it otherwise.
func (s *Selection) SelectAll(pageIDs []string, checked bool) {
	s.Clear()
	if !checked {
		return
	}
	for _, id := range pageIDs {
		s.add(id)
	}
}

func (s *Selection) Toggle(id string, checked bool) {
	if checked {
		s.add(id)
		return
	}
	s.remove(id)
}

// IsAllSelected is true iff the selection has as many ids as the page, and
// the page is not empty.
func (s *Selection) IsAllSelected(pageIDs []string) bool {
	return len(pageIDs) > 0 && len(s.ids) == len(pageIDs)
}

func (s *Selection) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) IDs() []string {
	return append([]string{}, s.ids...)
}

func (s *Selection) Clear() {
	s.ids = []string{}
	s.index = map[string]struct{}{}
}

// Retain drops every selected id not present in ids.
func (s *Selection) Retain(ids []string) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	previous := s.ids
	s.Clear()
	for _, id := range previous {
		if _, ok := keep[id]; ok {
			s.add(id)
		}
	}
}

func (s *Selection) add(id string) {
	if s.Has(id) {
		return
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *Selection) remove(id string) {
	if !s.Has(id) {
		return
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}
