package store

import (
	"strings"
	"time"

	"github.com/idilsaglam/todo/internal/model"
)

// In-memory ordered list of items. Nothing here returns an error:
// invalid input (blank text, out-of-range position) is a no-op and the
// bool results only report whether the list changed.
// Not safe for concurrent use; the TUI drives it from a single goroutine.

type Store struct {
	items  []model.Item
	lastID int64
	now    func() time.Time
}

func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock lets tests pin the clock used for ID assignment.
func NewWithClock(now func() time.Time) *Store {
	return &Store{items: []model.Item{}, now: now}
}

// ValidText reports whether text is acceptable for Add.
func ValidText(text string) bool {
	return strings.TrimSpace(text) != ""
}

func (s *Store) validPosition(pos int) bool {
	return pos >= 0 && pos < len(s.items)
}

// Add appends a new pending item. IDs come from the millisecond clock but
// never repeat: a clash bumps the ID past the last one issued.
func (s *Store) Add(text string) (model.Item, bool) {
	if !ValidText(text) {
		return model.Item{}, false
	}
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	it := model.Item{ID: id, Text: strings.TrimSpace(text)}
	s.items = append(s.items, it)
	return it, true
}

func (s *Store) Remove(pos int) bool {
	if !s.validPosition(pos) {
		return false
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	return true
}

func (s *Store) ToggleCompleted(pos int) bool {
	if !s.validPosition(pos) {
		return false
	}
	s.items[pos].Done = !s.items[pos].Done
	return true
}

// Filter returns the items whose text contains search (case-sensitive),
// in list order. The result is a copy; an empty search returns everything.
func (s *Store) Filter(search string) []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if strings.Contains(it.Text, search) {
			out = append(out, it)
		}
	}
	return out
}

func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

// IndexOf returns the current position of the item with the given id, or -1.
func (s *Store) IndexOf(id int64) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Stats counts done and pending items for the header.
func (s *Store) Stats() (done, pending int) {
	for _, it := range s.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
