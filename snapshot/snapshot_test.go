package snapshot

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/fitter"
	"github.com/arloliu/quadfit/format"
)

func samplePoints(n int) []fitter.Point[float64] {
	points := make([]fitter.Point[float64], n)
	for i := range points {
		x := float64(i)*0.5 - float64(n)/4
		points[i] = fitter.Point[float64]{X: x, Y: 1.23*x*x - 9.87*x + 0.01}
	}

	return points
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	points := samplePoints(100)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			data, err := Encode(points, WithCompression(compression))
			require.NoError(t, err)
			require.Equal(t, uint8(compression), data[5], "header should carry the compression flag")

			decoded, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, points, decoded)
		})
	}
}

func TestEncodeDefaultIsUncompressed(t *testing.T) {
	points := samplePoints(4)

	data, err := Encode(points)
	require.NoError(t, err)
	require.Equal(t, uint8(format.CompressionNone), data[5])
	require.Len(t, data, 24+len(points)*16)
}

func TestEncodeEmpty(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, decoded)

	qf, err := Restore(data)
	require.NoError(t, err)
	require.Equal(t, 0, qf.Len())
}

func TestEncodeInvalidCompression(t *testing.T) {
	_, err := Encode(samplePoints(4), WithCompression(format.CompressionType(0xff)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestRestoreComputes(t *testing.T) {
	data, err := Encode(samplePoints(50), WithCompression(format.CompressionS2))
	require.NoError(t, err)

	qf, err := Restore(data)
	require.NoError(t, err)
	require.Equal(t, 50, qf.Len())

	coeffs := qf.Compute()
	require.InDelta(t, 1.23, coeffs.A, 1e-9)
	require.InDelta(t, -9.87, coeffs.B, 1e-9)
	require.InDelta(t, 0.01, coeffs.C, 1e-9)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, err := Decode([]byte{0x54, 0x49, 0x46})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestDecodeInvalidMagic(t *testing.T) {
	data, err := Encode(samplePoints(4))
	require.NoError(t, err)

	binary.LittleEndian.PutUint32(data[0:4], 0xdeadbeef)
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	data, err := Encode(samplePoints(4))
	require.NoError(t, err)

	data[4] = 0x7f
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	data, err := Encode(samplePoints(4))
	require.NoError(t, err)

	// Flip one payload bit; the uncompressed payload no longer matches the
	// recorded checksum.
	data[len(data)-1] ^= 0x01
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecodeCountMismatch(t *testing.T) {
	data, err := Encode(samplePoints(4))
	require.NoError(t, err)

	binary.LittleEndian.PutUint32(data[8:12], 5)
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
}

func TestDecodeSpecialValuesSurvive(t *testing.T) {
	points := []fitter.Point[float64]{
		{X: math.Inf(1), Y: math.Inf(-1)},
		{X: 0, Y: math.Copysign(0, -1)},
		{X: math.MaxFloat64, Y: math.SmallestNonzeroFloat64},
	}

	data, err := Encode(points, WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, points, decoded)
}
