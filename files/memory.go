/*
 * memory.go, part of chemfiles.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package files

import (
	"io"

	chemfiles "github.com/ynaimi/chemfiles"
)

// MemoryFile is the in-memory backend, used by the registry's in-memory
// creators. A reader wraps a caller-provided buffer; a writer grows its own,
// optionally bounded by a capacity limit.
type MemoryFile struct {
	buf   []byte
	pos   int
	mode  Mode
	limit int //0 means unbounded
}

// NewMemoryReader returns a MemoryFile reading from data. The buffer is not
// copied; the caller must not mutate it while the file is in use.
func NewMemoryReader(data []byte) *MemoryFile {
	return &MemoryFile{buf: data, mode: Read}
}

// NewMemoryWriter returns a writable MemoryFile. A positive limit bounds the
// buffer: a write that would grow it past limit bytes fails with a memory
// error and writes nothing.
func NewMemoryWriter(limit int) *MemoryFile {
	return &MemoryFile{mode: Write, limit: limit}
}

func (M *MemoryFile) Read(p []byte) (int, error) {
	if M.mode != Read {
		return 0, chemfiles.Errorf(chemfiles.ErrFile, "read: memory file opened in %s mode", M.mode)
	}
	if M.pos >= len(M.buf) {
		return 0, io.EOF
	}
	n := copy(p, M.buf[M.pos:])
	M.pos += n
	return n, nil
}

func (M *MemoryFile) Write(p []byte) (int, error) {
	if M.mode == Read {
		return 0, chemfiles.New(chemfiles.ErrFile, "write: memory file opened in read mode")
	}
	if M.limit > 0 && len(M.buf)+len(p) > M.limit {
		return 0, chemfiles.Errorf(chemfiles.ErrMemory,
			"memory file capacity exceeded: %d bytes written, %d more requested, limit is %d",
			len(M.buf), len(p), M.limit)
	}
	M.buf = append(M.buf, p...)
	M.pos = len(M.buf)
	return len(p), nil
}

// Seek moves the read position to pos. Memory buffers are byte-addressable,
// so any position up to the buffer length is valid.
func (M *MemoryFile) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(M.buf)) {
		return chemfiles.Errorf(chemfiles.ErrFile,
			"seek: position %d out of range for a %d byte memory file", pos, len(M.buf))
	}
	M.pos = int(pos)
	return nil
}

// Clear resets the stream to its beginning. In write mode it also discards
// the content written so far.
func (M *MemoryFile) Clear() error {
	M.pos = 0
	if M.mode != Read {
		M.buf = M.buf[:0]
	}
	return nil
}

func (M *MemoryFile) Close() error {
	return nil
}

// Bytes returns the current content of the buffer.
func (M *MemoryFile) Bytes() []byte {
	return M.buf
}

// Len returns the current length of the buffer.
func (M *MemoryFile) Len() int {
	return len(M.buf)
}
