package fehwiki

import "context"

// Color is a 24-bit RGB accent color.
type Color uint32

// Accent colors.
const (
	ColorRed        Color = 0xCC2844
	ColorBlue       Color = 0x2A63E6
	ColorGreen      Color = 0x139F13
	ColorColorless  Color = 0x54676E
	ColorNull       Color = 0x222222
	ColorSpecial    Color = 0xF499FE
	ColorAssist     Color = 0x1FE2C3
	ColorSingleTier Color = 0xE8E1C9
)

// TierColors is the palette assigned to passive skill tiers by index.
var TierColors = []Color{0xCD914C, 0xA8B0B0, 0xD8B956, 0xFFF208}

// Header is the title block of a record.
type Header struct {
	Title     string `json:"title"`
	Color     Color  `json:"color"`
	IconURL   string `json:"iconUrl,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`
}

// Field is one display entry of a record.
type Field struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Record is an ordered set of display fields plus a header.
// Field order is presentation order.
type Record struct {
	Header Header

	fields []Field
	index  map[string]int
}

// NewRecord returns an empty record with the given title.
func NewRecord(title string) *Record {
	return &Record{Header: Header{Title: title}}
}

// Set stores a field. A key that already exists keeps its position and
// has its value replaced.
func (r *Record) Set(key, value string, inline bool) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.fields[i] = Field{Key: key, Value: value, Inline: inline}
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value, Inline: inline})
}

// Get returns the field stored under key.
func (r *Record) Get(key string) (Field, bool) {
	i, ok := r.index[key]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// Value returns the value stored under key, or "" if absent.
func (r *Record) Value(key string) string {
	f, _ := r.Get(key)
	return f.Value
}

// Fields returns the fields in presentation order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Keys returns the field keys in presentation order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Assembly is the result of assembling a page: the categories of the page
// that produced the records, the records themselves and the page titles
// referenced along the way.
//
// Passive skill pages produce one record per rarity tier; every other page
// produces exactly one record.
type Assembly struct {
	Title      string
	Categories Categories
	Records    []*Record
	Referenced []string
}

// Record returns the first record, or nil if there is none.
func (a *Assembly) Record() *Record {
	if a == nil || len(a.Records) == 0 {
		return nil
	}
	return a.Records[0]
}

// Assembler builds display records from wiki pages.
type Assembler interface {
	// Assemble fetches the page with the given title and builds its records,
	// following redirects and disambiguation pages.
	// Returns EUNAVAILABLE if the page, or the page it resolves to, cannot
	// be fetched.
	Assemble(ctx context.Context, title string) (*Assembly, error)
}
