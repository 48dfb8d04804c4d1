package compress

// ZstdCodec compresses payloads with Zstandard.
//
// Zstd gives the best ratio of the supported codecs and is the right choice
// when snapshots are archived or shipped over constrained links. Two
// implementations exist behind this type: a cgo binding when cgo is
// available (zstd_cgo.go) and a pure Go fallback (zstd_pure.go). The frames
// they produce are interoperable.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
