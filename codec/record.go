package codec

import (
	"errors"

	"github.com/unkn0wn-root/argb"
)

// ErrInvalidRecord is returned when a decoded record claims Empty but carries channels.
var ErrInvalidRecord = errors.New("codec: empty record carries channel values")

// record is the structured shape shared by the msgpack and CBOR codecs.
// Zero channels are omitted; Empty is an explicit flag so {} still means ARGB{0,0,0,0}.
type record struct {
	Empty bool  `msgpack:"empty,omitempty" cbor:"empty,omitempty"`
	A     uint8 `msgpack:"a,omitempty" cbor:"a,omitempty"`
	R     uint8 `msgpack:"r,omitempty" cbor:"r,omitempty"`
	G     uint8 `msgpack:"g,omitempty" cbor:"g,omitempty"`
	B     uint8 `msgpack:"b,omitempty" cbor:"b,omitempty"`
}

func toRecord(c argb.Color) record {
	v, ok := argb.Concrete(c)
	if !ok {
		return record{Empty: true}
	}
	return record{A: v.A, R: v.R, G: v.G, B: v.B}
}

func (r record) color() (argb.Color, error) {
	if r.Empty {
		if r.A|r.R|r.G|r.B != 0 {
			return nil, ErrInvalidRecord
		}
		return argb.Empty, nil
	}
	return argb.New(r.A, r.R, r.G, r.B), nil
}
