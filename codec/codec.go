// Package codec turns argb colors into bytes for storage.
//
// Text is the canonical human-readable form. JSON, Msgpack, CBOR and Protobuf are
// compact alternatives for stores that never show the payload to a person.
// Every codec keeps Empty distinct from ARGB{0, 0, 0, 0}.
package codec

import "github.com/unkn0wn-root/argb"

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Identified codecs tag stored frames so a reader configured with a different
// codec can detect the mismatch instead of misreading the payload.
type Identified interface {
	ID() byte
}

const (
	IDUnknown byte = iota
	IDText
	IDJSON
	IDMsgpack
	IDCBOR
	IDProtobuf
)

// IDOf returns the codec's ID, or IDUnknown.
func IDOf[V any](c Codec[V]) byte {
	if id, ok := c.(Identified); ok {
		return id.ID()
	}
	return IDUnknown
}

// ByName returns a color codec by its config name.
func ByName(name string) (Codec[argb.Color], bool) {
	switch name {
	case "", "text":
		return Text{}, true
	case "json":
		return JSON{}, true
	case "msgpack":
		return Msgpack{}, true
	case "cbor":
		c, err := NewCBOR(true)
		if err != nil {
			return nil, false
		}
		return c, true
	case "protobuf", "proto":
		return Protobuf{}, true
	default:
		return nil, false
	}
}
