package codec

import (
	"github.com/unkn0wn-root/argb"
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Codec that serializes colors using vmihailenco/msgpack/v5.
// The zero value is ready to use.
type Msgpack struct{}

var _ Codec[argb.Color] = Msgpack{}

func (Msgpack) ID() byte { return IDMsgpack }

func (Msgpack) Encode(c argb.Color) ([]byte, error) {
	return msgpack.Marshal(toRecord(c))
}
func (Msgpack) Decode(b []byte) (argb.Color, error) {
	var r record
	if err := msgpack.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return r.color()
}
