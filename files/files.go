/*
 * files.go, part of chemfiles.
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

//Package files provides the synchronous byte-stream abstraction the format
//readers and writers are built on: a single File contract implemented by a
//plain disk backend, a growable in-memory backend and a transparently
//compressed backend. A File is exclusively owned by the caller that opened
//it; nothing here synchronizes concurrent use of one handle.
package files

import (
	"strings"

	chemfiles "github.com/ynaimi/chemfiles"
)

// Mode says what an open File will be used for.
type Mode int

const (
	Read Mode = iota
	Write
	Append
)

func (m Mode) String() string {
	switch m {
	case Write:
		return "write"
	case Append:
		return "append"
	default:
		return "read"
	}
}

// Compression selects the codec backing a compressed File.
type Compression int

const (
	None Compression = iota
	Gzip
	Bzip2
	Xz
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case Xz:
		return "xz"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

// File is the byte-level contract every backend implements. Read and Write
// follow the io conventions (Read returns io.EOF at end of stream); Seek
// takes an absolute position in the decoded domain; Clear resets the stream
// to its beginning, dropping any codec state.
type File interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Seek(pos int64) error
	Clear() error
	Close() error
}

// GuessCompression infers the compression kind from the file extension
// (.gz, .bz2, .xz, .zst or .zstd). Anything else means no compression.
func GuessCompression(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return Gzip
	case strings.HasSuffix(path, ".bz2"):
		return Bzip2
	case strings.HasSuffix(path, ".xz"):
		return Xz
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		return Zstd
	}
	return None
}

// Open returns a File over path: a plain one if comp is None, a compressed
// one otherwise.
func Open(path string, mode Mode, comp Compression) (File, error) {
	if comp == None {
		return OpenPlain(path, mode)
	}
	return OpenCompressed(path, mode, comp)
}

// fileErr builds the ErrFile error used across the package: it names the
// failing operation and keeps the underlying message verbatim.
func fileErr(op, path string, err error) error {
	return chemfiles.NewFileError(path, "%s: %s", op, err.Error())
}
