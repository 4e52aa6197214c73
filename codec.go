package jscookie

import (
	"encoding/base64"

	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack/v5"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec marshals typed values to and from the text stored in a cookie.
// The output still passes through the jar's converter.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec stores values as JSON. It is the default codec of a jar.
type JSONCodec struct{}

// NewJSONCodec returns the JSON codec.
//
// Returns:
//   - *JSONCodec: The codec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Marshal encodes v as JSON.
//
// Parameters:
//   - v: The value to encode.
//
// Returns:
//   - []byte: The JSON text.
//   - error: The error if v cannot be encoded.
func (c *JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MsgpackCodec stores values as base64url (unpadded) MessagePack. It is
// more compact than JSON once the converter has escaped JSON's quotes and
// commas.
type MsgpackCodec struct{}

// NewMsgpackCodec returns the MessagePack codec.
//
// Returns:
//   - *MsgpackCodec: The codec.
func NewMsgpackCodec() *MsgpackCodec {
	return &MsgpackCodec{}
}

// Marshal encodes v as MessagePack and then as unpadded base64url, which
// the default converter leaves unescaped.
//
// Parameters:
//   - v: The value to encode.
//
// Returns:
//   - []byte: The base64url text.
//   - error: The error if v cannot be encoded.
func (c *MsgpackCodec) Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.RawURLEncoding.EncodedLen(len(data)))
	base64.RawURLEncoding.Encode(out, data)
	return out, nil
}

// Unmarshal decodes base64url MessagePack data into v.
//
// Parameters:
//   - data: The text produced by Marshal.
//   - v: A pointer to the destination.
//
// Returns:
//   - error: The error if data is not valid base64url or MessagePack.
func (c *MsgpackCodec) Unmarshal(data []byte, v any) error {
	raw := make([]byte, base64.RawURLEncoding.DecodedLen(len(data)))
	n, err := base64.RawURLEncoding.Decode(raw, data)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(raw[:n], v)
}
