package clip

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrEmptyData is returned by Validate for entries without a payload.
var ErrEmptyData = errors.New("entry data is empty")

// Entry is a single clipboard history record.
type Entry struct {
	Data string
	Kind Kind
}

// List is an ordered sequence of entries in backend order, most recent first.
type List []Entry

// Marks flags, by index, which entries of a list are new relative to a
// reference list.
type Marks []bool

// Text returns a text entry.
func Text(data string) Entry { return Entry{Data: data, Kind: KindText} }

// Image returns an image entry for a base64 payload.
func Image(b64 string) Entry { return Entry{Data: b64, Kind: KindImage} }

// Validate checks the invariants every entry must satisfy.
func (e Entry) Validate() error {
	if e.Data == "" {
		return ErrEmptyData
	}
	return nil
}

// Preview returns the first non-blank line of a text payload, shortened to
// limit runes. Images are summarised instead of dumping base64.
func (e Entry) Preview(limit int) string {
	if e.Kind.IsImage() {
		return "[image]"
	}
	line := ""
	for _, l := range strings.Split(e.Data, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			line = t
			break
		}
	}
	runes := []rune(line)
	if limit > 0 && len(runes) > limit {
		if limit <= 3 {
			return string(runes[:limit])
		}
		return string(runes[:limit-3]) + "..."
	}
	return line
}

type wireEntry struct {
	Data     string `json:"data"`
	DataType *Kind  `json:"data_type,omitempty"`
	Kind     *Kind  `json:"kind,omitempty"`
}

// MarshalJSON encodes the entry using the backend's item shape.
func (e Entry) MarshalJSON() ([]byte, error) {
	kind := e.Kind
	return json.Marshal(wireEntry{Data: e.Data, DataType: &kind})
}

// UnmarshalJSON accepts both "data_type" and "kind" for the tag.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var w wireEntry
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	e.Data = w.Data
	switch {
	case w.DataType != nil:
		e.Kind = *w.DataType
	case w.Kind != nil:
		e.Kind = *w.Kind
	default:
		e.Kind = KindUnknown
	}
	return nil
}

// Equal reports whether two entries carry the same payload and kind.
func Equal(a, b Entry) bool {
	return a.Data == b.Data && a.Kind == b.Kind
}

// ListsEqual reports whether xs and ys hold equal entries in the same order.
// A reorder counts as a difference because order conveys recency.
func ListsEqual(xs, ys List) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

// NewMarks flags every entry of incoming that has no equal entry in
// reference. Duplicates in incoming are flagged independently.
func NewMarks(incoming, reference List) Marks {
	known := make(map[Entry]struct{}, len(reference))
	for _, e := range reference {
		known[e] = struct{}{}
	}
	marks := make(Marks, len(incoming))
	for i, e := range incoming {
		_, ok := known[e]
		marks[i] = !ok
	}
	return marks
}

// Clone returns an independent copy. A nil list stays nil.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Clone returns an independent copy. Nil marks stay nil.
func (m Marks) Clone() Marks {
	if m == nil {
		return nil
	}
	out := make(Marks, len(m))
	copy(out, m)
	return out
}

// IsNew reports whether index i is flagged. Out of range indexes are not new.
func (m Marks) IsNew(i int) bool {
	return i >= 0 && i < len(m) && m[i]
}

// Count returns the number of flagged entries.
func (m Marks) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}
