// Package compress provides compression codecs for quadfit snapshot payloads.
//
// Snapshot payloads are columnar float64 sample data. Raw float64 bits are
// only moderately compressible, but sample sets produced by instruments or
// simulations frequently carry repeated exponent/mantissa prefixes that the
// general-purpose codecs below exploit.
//
// # Architecture
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None: pass-through, zero overhead (format.CompressionNone)
//   - Zstd: best ratio, moderate speed (format.CompressionZstd)
//   - S2: balanced ratio and speed (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// Use GetCodec to obtain the codec matching a format.CompressionType flag:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// The Zstd codec has two implementations selected at build time: a cgo
// binding (valyala/gozstd) when cgo is available, and a pure Go fallback
// (klauspost/compress/zstd) otherwise. Both produce interoperable frames.
//
// All codecs are stateless values and safe for concurrent use; internal
// scratch state is pooled.
package compress
