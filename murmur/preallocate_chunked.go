package murmur

import "os"

const preallocateChunkSize = 16384

// preallocateChunked zero-fills [offset, offset+size) in chunkSize writes.
func preallocateChunked(f *os.File, offset, size int64) error {
	if _, err := f.Seek(offset, 0); err != nil {
		return err
	}

	buf := make([]byte, preallocateChunkSize)
	remaining := size
	for remaining > preallocateChunkSize {
		if _, err := f.Write(buf); err != nil {
			return err
		}
		remaining -= preallocateChunkSize
	}
	if remaining > 0 {
		if _, err := f.Write(buf[:remaining]); err != nil {
			return err
		}
	}
	return nil
}
