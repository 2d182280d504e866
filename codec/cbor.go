package codec

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/argb"
)

// CBOR is a Codec that serializes colors using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when stored bytes are hashed or compared.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[argb.Color] = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions.
//
// Unknown map keys are rejected on decode.
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (CBOR) ID() byte { return IDCBOR }

func (c CBOR) Encode(v argb.Color) ([]byte, error) {
	return c.enc.Marshal(toRecord(v))
}

func (c CBOR) Decode(b []byte) (argb.Color, error) {
	var r record
	if err := c.dec.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return r.color()
}
