// Package snapshot serializes quadfit sample sets into a compact binary
// container.
//
// A snapshot lets callers persist an accumulated sample collection, ship it
// elsewhere, and restore it into a ready-to-compute fitter. The format is a
// fixed little-endian header followed by a columnar payload (all x values,
// then all y values, raw float64 bits) that is optionally compressed.
//
// # Layout
//
//	offset  size  field
//	0       4     magic "QFIT" (0x51464954, little-endian uint32)
//	4       1     format version (currently 1)
//	5       1     compression flag (format.CompressionType)
//	6       2     reserved
//	8       4     point count (uint32)
//	12      4     reserved
//	16      8     xxHash64 checksum of the uncompressed payload
//	24      ...   payload, compressed per the compression flag
//
// # Usage
//
//	data, err := snapshot.Encode(points, snapshot.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//
//	qf, err := snapshot.Restore(data)
//	if err != nil {
//	    return err
//	}
//	coeffs := qf.Compute()
//
// Decode validates the magic number, version, payload size and checksum and
// surfaces the errs sentinels on mismatch, so a truncated or corrupted
// snapshot never reaches the solver.
package snapshot
