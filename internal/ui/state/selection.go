package state

// NoSelection is the cursor value meaning nothing is selected.
const NoSelection = -1

// Selection tracks the cursor over a fixed-size catalog. The cursor is either
// NoSelection or an index in [0, size); every transition keeps it there, even
// when the catalog is empty. Each move reports whether the cursor changed.
type Selection struct {
	size   int
	cursor int
}

// NewSelection builds a Selection over size items with nothing selected.
func NewSelection(size int) *Selection {
	if size < 0 {
		size = 0
	}
	return &Selection{size: size, cursor: NoSelection}
}

// Size returns the number of items the cursor ranges over.
func (s *Selection) Size() int {
	return s.size
}

// Index returns the current cursor position and whether anything is selected.
func (s *Selection) Index() (int, bool) {
	if s.cursor == NoSelection {
		return 0, false
	}
	return s.cursor, true
}

// Deselect clears the cursor.
func (s *Selection) Deselect() bool {
	if s.cursor == NoSelection {
		return false
	}
	s.cursor = NoSelection
	return true
}

// Next moves the cursor down one item. From nothing selected it lands on the
// first item; from the last item it stays put.
func (s *Selection) Next() bool {
	if s.size == 0 {
		return false
	}
	old := s.cursor
	if s.cursor == NoSelection {
		s.cursor = 0
	} else if s.cursor < s.size-1 {
		s.cursor++
	}
	return s.cursor != old
}

// Previous moves the cursor up one item. From nothing selected it lands on
// the last item; from the first item it stays put.
func (s *Selection) Previous() bool {
	if s.size == 0 {
		return false
	}
	old := s.cursor
	if s.cursor == NoSelection {
		s.cursor = s.size - 1
	} else if s.cursor > 0 {
		s.cursor--
	}
	return s.cursor != old
}

// First moves the cursor to the first item.
func (s *Selection) First() bool {
	if s.size == 0 {
		return false
	}
	old := s.cursor
	s.cursor = 0
	return s.cursor != old
}

// Last moves the cursor to the last item.
func (s *Selection) Last() bool {
	if s.size == 0 {
		return false
	}
	old := s.cursor
	s.cursor = s.size - 1
	return s.cursor != old
}
