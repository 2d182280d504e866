package codec

import (
	"errors"
	"math"

	"github.com/unkn0wn-root/argb"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrInvalidProto is returned when a protobuf payload is not a null or a packed color.
var ErrInvalidProto = errors.New("codec: protobuf value is not a color")

// Protobuf stores a color as a google.protobuf.Value: null for Empty,
// a number holding 0xAARRGGBB for a concrete color.
type Protobuf struct{}

var _ Codec[argb.Color] = Protobuf{}

func (Protobuf) ID() byte { return IDProtobuf }

func (Protobuf) Encode(c argb.Color) ([]byte, error) {
	v, ok := argb.Concrete(c)
	if !ok {
		return proto.Marshal(structpb.NewNullValue())
	}
	return proto.Marshal(structpb.NewNumberValue(float64(v.Packed())))
}

func (Protobuf) Decode(b []byte) (argb.Color, error) {
	m := &structpb.Value{}
	if err := proto.Unmarshal(b, m); err != nil {
		return nil, err
	}
	switch k := m.GetKind().(type) {
	case *structpb.Value_NullValue:
		return argb.Empty, nil
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
			return nil, ErrInvalidProto
		}
		return argb.FromPacked(uint32(n)), nil
	default:
		return nil, ErrInvalidProto
	}
}
