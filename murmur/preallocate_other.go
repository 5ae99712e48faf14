//go:build !linux

package murmur

import "os"

// preallocate reserves [offset, offset+size) in f by writing zeroes in
// chunks. Platforms without a fallocate equivalent wired here fall back to
// this.
func preallocate(f *os.File, offset, size int64) error {
	return preallocateChunked(f, offset, size)
}
