package codec

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/unkn0wn-root/argb"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func allCodecs() map[string]Codec[argb.Color] {
	return map[string]Codec[argb.Color]{
		"text":      Text{},
		"json":      JSON{},
		"msgpack":   Msgpack{},
		"cbor":      MustCBOR(true),
		"cbor-fast": MustCBOR(false),
		"protobuf":  Protobuf{},
	}
}

var samples = []argb.Color{
	argb.Empty,
	argb.New(0, 0, 0, 0),
	argb.New(255, 255, 255, 255),
	argb.New(255, 10, 20, 30),
	argb.New(1, 0, 0, 0),
	argb.New(0, 0, 0, 1),
}

func TestRoundTrip(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			for _, v := range samples {
				b, err := c.Encode(v)
				if err != nil {
					t.Fatalf("Encode(%v): %v", v, err)
				}
				got, err := c.Decode(b)
				if err != nil {
					t.Fatalf("Decode(%x): %v", b, err)
				}
				if got != v {
					t.Fatalf("round trip: got %#v want %#v", got, v)
				}
			}
		})
	}
}

func TestNilEncodesAsEmpty(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			b, err := c.Encode(nil)
			if err != nil {
				t.Fatal(err)
			}
			got, err := c.Decode(b)
			if err != nil || got != argb.Empty {
				t.Fatalf("got %#v err=%v", got, err)
			}
		})
	}
}

func TestPointerColorEncodesItsChannels(t *testing.T) {
	want := argb.New(255, 10, 20, 30)
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			v := want
			b, err := c.Encode(&v)
			if err != nil {
				t.Fatal(err)
			}
			got, err := c.Decode(b)
			if err != nil || got != argb.Color(want) {
				t.Fatalf("got %#v err=%v", got, err)
			}
		})
	}
}

func TestEmptyAndZeroEncodeDifferently(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			e, _ := c.Encode(argb.Empty)
			z, _ := c.Encode(argb.New(0, 0, 0, 0))
			if bytes.Equal(e, z) {
				t.Fatalf("Empty and zero share encoding %x", e)
			}
		})
	}
}

func TestJSONStoresCanonicalText(t *testing.T) {
	for _, tc := range []struct {
		in   argb.Color
		want string
	}{
		{argb.New(255, 10, 20, 30), `"ARGB ( 255 / 10 / 20 / 30)"`},
		{argb.Empty, `"Empty"`},
	} {
		b, err := JSON{}.Encode(tc.in)
		if err != nil || string(b) != tc.want {
			t.Fatalf("Encode(%v) = %s, %v; want %s", tc.in, b, err, tc.want)
		}
	}
}

func TestTextCanonical(t *testing.T) {
	b, _ := Text{}.Encode(argb.New(255, 10, 20, 30))
	if string(b) != "ARGB ( 255 / 10 / 20 / 30)" {
		t.Fatalf("got %q", b)
	}
	b, _ = JSON{}.Encode(argb.Empty)
	if string(b) != `"Empty"` {
		t.Fatalf("json got %s", b)
	}
}

func TestTextDecodeErrors(t *testing.T) {
	if _, err := (Text{}).Decode([]byte("ARGB ( 1 / 2 / 3)")); !errors.Is(err, argb.ErrMalformedShape) {
		t.Fatalf("want ErrMalformedShape, got %v", err)
	}
	if _, err := (JSON{}).Decode([]byte(`"ARGB ( 256 / 0 / 0 / 0)"`)); !errors.Is(err, argb.ErrChannelOutOfRange) {
		t.Fatalf("want ErrChannelOutOfRange, got %v", err)
	}
}

func TestRecordRejectsEmptyWithChannels(t *testing.T) {
	b, err := msgpack.Marshal(record{Empty: true, R: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := (Msgpack{}).Decode(b); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("want ErrInvalidRecord, got %v", err)
	}
}

func TestCBORRejectsUnknownField(t *testing.T) {
	c := MustCBOR(true)
	b, err := c.enc.Marshal(map[string]any{"a": 1, "hue": 7})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(b); err == nil {
		t.Fatal("expected error on unknown field")
	}
}

func TestProtobufRejectsNonColor(t *testing.T) {
	bad := []*structpb.Value{
		structpb.NewStringValue("ARGB ( 1 / 2 / 3 / 4)"),
		structpb.NewNumberValue(-1),
		structpb.NewNumberValue(1.5),
		structpb.NewNumberValue(math.MaxUint32 + 1),
		structpb.NewBoolValue(true),
	}
	for _, v := range bad {
		b, err := proto.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := (Protobuf{}).Decode(b); !errors.Is(err, ErrInvalidProto) {
			t.Fatalf("Decode(%v): want ErrInvalidProto, got %v", v, err)
		}
	}
}

func TestLimitCodec(t *testing.T) {
	lc := LimitCodec[argb.Color]{Inner: Text{}, MaxDecode: 32}
	if lc.ID() != IDText {
		t.Fatalf("ID=%d", lc.ID())
	}
	ok := []byte("ARGB ( 255 / 10 / 20 / 30)")
	if _, err := lc.Decode(ok); err != nil {
		t.Fatalf("within limit: %v", err)
	}
	long := []byte("ARGB ( 255 / 10 / 20 / 30)" + string(bytes.Repeat([]byte(" "), 40)))
	if _, err := lc.Decode(long); err == nil {
		t.Fatal("expected size error")
	}

	off := LimitCodec[argb.Color]{Inner: Text{}}
	if _, err := off.Decode(long); err != nil {
		t.Fatalf("limit disabled: %v", err)
	}
}

func TestByNameAndIDs(t *testing.T) {
	want := map[string]byte{
		"":         IDText,
		"text":     IDText,
		"json":     IDJSON,
		"msgpack":  IDMsgpack,
		"cbor":     IDCBOR,
		"protobuf": IDProtobuf,
		"proto":    IDProtobuf,
	}
	for name, id := range want {
		c, ok := ByName(name)
		if !ok {
			t.Fatalf("ByName(%q) missing", name)
		}
		if got := IDOf(c); got != id {
			t.Fatalf("ByName(%q) id=%d want %d", name, got, id)
		}
	}
	if _, ok := ByName("yaml"); ok {
		t.Fatal("unknown codec name accepted")
	}
}
