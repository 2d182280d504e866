package codec

import (
	"encoding/json"

	"github.com/unkn0wn-root/argb"
)

// JSON stores a color as a JSON string holding its canonical text,
// e.g. "ARGB ( 255 / 10 / 20 / 30)".
type JSON struct{}

var _ Codec[argb.Color] = JSON{}

func (JSON) ID() byte { return IDJSON }

func (JSON) Encode(c argb.Color) ([]byte, error) { return json.Marshal(argb.Field{Color: c}) }
func (JSON) Decode(b []byte) (argb.Color, error) {
	var f argb.Field
	err := json.Unmarshal(b, &f)
	if err != nil {
		return nil, err
	}
	return f.Get(), nil
}
