//go:build linux

package murmur

import (
	"os"

	"golang.org/x/sys/unix"
)

// preallocate reserves [offset, offset+size) in f without writing the bytes
// lazily, using fallocate. Falls back to the chunked zero-write strategy if
// the filesystem doesn't support fallocate (e.g. some overlay or network
// filesystems return ENOTSUP/EOPNOTSUPP).
func preallocate(f *os.File, offset, size int64) error {
	err := unix.Fallocate(int(f.Fd()), 0, offset, size)
	if err == nil {
		return nil
	}
	if err == unix.ENOTSUP || err == unix.EOPNOTSUPP {
		return preallocateChunked(f, offset, size)
	}
	return err
}
