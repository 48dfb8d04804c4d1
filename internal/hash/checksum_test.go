package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	data := []byte("quadfit snapshot payload")

	sum := Checksum(data)
	require.NotZero(t, sum)
	require.Equal(t, sum, Checksum(data), "checksum must be deterministic")
	require.NotEqual(t, sum, Checksum(data[1:]), "different payloads should differ")
}

func TestChecksumEmpty(t *testing.T) {
	require.Equal(t, Checksum(nil), Checksum([]byte{}))
}
