package argb

import "encoding"

// Field wraps a Color so it can live in JSON/YAML documents as its canonical text.
// The zero Field holds Empty.
type Field struct {
	Color Color
}

var (
	_ encoding.TextMarshaler   = Field{}
	_ encoding.TextUnmarshaler = (*Field)(nil)
)

func (f Field) Get() Color { return Normalize(f.Color) }

func (f Field) String() string { return Format(f.Color) }

func (f Field) MarshalText() ([]byte, error) {
	return AppendFormat(nil, f.Color), nil
}

func (f *Field) UnmarshalText(b []byte) error {
	c, err := Parse(string(b))
	if err != nil {
		return err
	}
	f.Color = c
	return nil
}
