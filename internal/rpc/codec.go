// Package rpc declares gRPC services of the customer management API. Messages are plain structs
// encoded with msgpack, codec is selected by "msgpack" content-subtype.
package rpc

import (
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is content-subtype of msgpack codec
const CodecName = "msgpack"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec is gRPC codec based on msgpack
type Codec struct{}

// Marshal implements encoding.Codec
func (Codec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal implements encoding.Codec
func (Codec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Name implements encoding.Codec
func (Codec) Name() string {
	return CodecName
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
