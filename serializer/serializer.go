// Package serializer turns Go values into the bytes stored in Redis and
// back. A Serializer handles values; a Codec transforms the encoded bytes
// (compression, text-safe encodings) and can be stacked on a Serializer
// with Compressed.
package serializer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Serializer encodes values to bytes and decodes them back.
type Serializer interface {
	Serialize(v interface{}) ([]byte, error)
	Deserialize(data []byte, v interface{}) error
}

// Codec is a reversible byte transformation.
type Codec interface {
	Encode([]byte) ([]byte, error)
	Decode([]byte) ([]byte, error)
}

// JSON serializes values with encoding/json.
type JSON struct{}

func (JSON) Serialize(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Deserialize(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Compressed applies codec to the output of s.
func Compressed(s Serializer, codec Codec) Serializer {
	return compressed{s: s, codec: codec}
}

type compressed struct {
	s     Serializer
	codec Codec
}

func (c compressed) Serialize(v interface{}) ([]byte, error) {
	data, err := c.s.Serialize(v)
	if err != nil {
		return nil, err
	}
	return c.codec.Encode(data)
}

func (c compressed) Deserialize(data []byte, v interface{}) error {
	raw, err := c.codec.Decode(data)
	if err != nil {
		return err
	}
	return c.s.Deserialize(raw, v)
}

// CodecByName returns a Codec by name: "base64", "gzip" or "snappy".
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "base64":
		return Base64{}, nil
	case "gzip":
		return Gzip{}, nil
	case "snappy":
		return Snappy{}, nil
	default:
		return nil, fmt.Errorf("serializer: unknown codec %q", name)
	}
}
