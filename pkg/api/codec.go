// Package api defines the Connect procedures of the Brew & Bake site, their
// request and response messages, and typed handlers and clients for them.
//
// Messages are plain Go structs carried as JSON, so every handler and client
// is built with the package codec in place of the protobuf ones.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// codecName replaces Connect's default "json" codec, which only handles protobuf messages.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}

// Codec returns the JSON codec used by every handler and client in this package.
func Codec() connect.Codec {
	return jsonCodec{}
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec())}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec())}, opts...)
}
