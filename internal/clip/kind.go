package clip

import "strings"

// Kind tags how an entry's Data is interpreted. The set is closed; values the
// backend sends that are not listed here parse to KindUnknown.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindText
	KindImage
	KindHTML
	KindRTF
	KindBookmark
	KindFile
	KindApplication
	KindExtension
)

var kindNames = [...]string{
	KindUnknown:     "unknown",
	KindText:        "text",
	KindImage:       "image",
	KindHTML:        "html",
	KindRTF:         "rtf",
	KindBookmark:    "bookmark",
	KindFile:        "file",
	KindApplication: "application",
	KindExtension:   "extension",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		out = append(out, Kind(k))
	}
	return out
}

// ParseKind maps a wire value to a Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(value string) Kind {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, k := range Kinds() {
		if k.String() == v {
			return k
		}
	}
	return KindUnknown
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// IsImage reports whether Data holds a base64 encoded image.
func (k Kind) IsImage() bool {
	return k == KindImage
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}
