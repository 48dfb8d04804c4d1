package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/quadfit/compress"
	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/fitter"
	"github.com/arloliu/quadfit/format"
	"github.com/arloliu/quadfit/internal/hash"
	"github.com/arloliu/quadfit/internal/options"
)

const (
	// MagicNumber identifies a quadfit snapshot ("QFIT", little-endian).
	MagicNumber uint32 = 0x51464954
	// Version is the current snapshot format version.
	Version uint8 = 1

	headerSize = 24
)

// config holds the encoding parameters for a snapshot.
type config struct {
	compression format.CompressionType
}

// Option is a functional option for snapshot encoding.
type Option = options.Option[*config]

// WithCompression selects the compression codec applied to the payload.
//
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// Encode serializes the given sample points into a snapshot.
//
// The payload stores x and y columns as raw float64 bits, little-endian,
// compressed per WithCompression. An empty point slice produces a valid
// snapshot with a zero count.
func Encode(points []fitter.Point[float64], opts ...Option) ([]byte, error) {
	cfg := config{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(points)*16)
	for i := range points {
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(points[i].X))
	}
	for i := range points {
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(points[i].Y))
	}

	checksum := hash.Checksum(payload)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	data := make([]byte, headerSize, headerSize+len(compressed))
	binary.LittleEndian.PutUint32(data[0:4], MagicNumber)
	data[4] = Version
	data[5] = uint8(cfg.compression)
	binary.LittleEndian.PutUint32(data[8:12], uint32(len(points)))
	binary.LittleEndian.PutUint64(data[16:24], checksum)

	return append(data, compressed...), nil
}

// Decode deserializes a snapshot back into its sample points.
//
// It validates the header size, magic number, version, payload size and
// checksum, returning the matching errs sentinel (possibly wrapped) when
// validation fails.
func Decode(data []byte) ([]fitter.Point[float64], error) {
	if len(data) < headerSize {
		return nil, errs.ErrInvalidHeaderSize
	}
	if binary.LittleEndian.Uint32(data[0:4]) != MagicNumber {
		return nil, errs.ErrInvalidMagic
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	compression := format.CompressionType(data[5])
	count := int(binary.LittleEndian.Uint32(data[8:12]))
	checksum := binary.LittleEndian.Uint64(data[16:24])

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot payload: %w", err)
	}

	if len(payload) != count*16 {
		return nil, fmt.Errorf("%w: %d bytes for %d points", errs.ErrInvalidPayloadSize, len(payload), count)
	}
	if hash.Checksum(payload) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	points := make([]fitter.Point[float64], count)
	yOffset := count * 8
	for i := range points {
		points[i].X = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
		points[i].Y = math.Float64frombits(binary.LittleEndian.Uint64(payload[yOffset+i*8:]))
	}

	return points, nil
}

// Restore decodes a snapshot straight into a ready-to-compute fitter.
func Restore(data []byte) (*fitter.Fitter[float64], error) {
	points, err := Decode(data)
	if err != nil {
		return nil, err
	}

	qf := fitter.NewWithCapacity[float64](len(points))
	for i := range points {
		qf.Add(points[i].X, points[i].Y)
	}

	return qf, nil
}
