package murmur

import "os"

// preallocateSparse reserves [offset, offset+size) by seeking to its last
// byte and writing a single zero, letting the filesystem punch a sparse
// hole for everything before it. Fast and disk-frugal, but the reserved
// space isn't physically allocated, so a later write can still fail with
// ENOSPC on a full filesystem.
func preallocateSparse(f *os.File, offset, size int64) error {
	if size == 0 {
		return nil
	}
	if _, err := f.Seek(offset+size-1, 0); err != nil {
		return err
	}
	_, err := f.Write([]byte{0})
	return err
}
