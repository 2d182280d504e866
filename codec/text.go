package codec

import "github.com/unkn0wn-root/argb"

// Text stores the canonical text form: "Empty" or "ARGB ( a / r / g / b)".
// The zero value is ready to use.
type Text struct{}

var _ Codec[argb.Color] = Text{}

func (Text) ID() byte { return IDText }

func (Text) Encode(c argb.Color) ([]byte, error) {
	return argb.AppendFormat(nil, c), nil
}

func (Text) Decode(b []byte) (argb.Color, error) {
	return argb.Parse(string(b))
}
