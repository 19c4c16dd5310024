/*
 * format.go, part of chemfiles.
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

//Package format maps a chemistry file format's identity (name and
//extension) to the constructors of its readers and writers. A Registry
//holds the dispatch table; Default returns the shared one, pre-populated
//with the built-in formats.
package format

import (
	chemfiles "github.com/ynaimi/chemfiles"
	"github.com/ynaimi/chemfiles/files"
	"gonum.org/v1/gonum/mat"
)

// FormatInfo is the identity and metadata of a registered format, used for
// discovery and listing.
type FormatInfo struct {
	//Name is the case-sensitive format name, e.g. "XYZ". Never empty.
	Name string
	//Extension includes the leading dot, e.g. ".xyz", or is empty.
	Extension string
	//Description is a human-readable one-liner.
	Description string
}

// Format is one open, format-specific reader or writer, produced by a
// Creator. Callers type-assert to FrameReader, FrameWriter or
// RandomAccessReader depending on the mode they opened it in and the
// capabilities the format has.
type Format interface {
	Close() error
}

// FrameReader is a Format opened for reading.
type FrameReader interface {
	Format
	Readable() bool
	Next(output *mat.Dense, box ...[]float64) error
	Len() int
}

// FrameWriter is a Format opened for writing or appending.
type FrameWriter interface {
	Format
	WNext(coord *mat.Dense, box ...[]float64) error
	Len() int
}

// RandomAccessReader is a FrameReader over a binary-indexed file that can
// seek to any frame in O(1).
type RandomAccessReader interface {
	FrameReader
	Nframes() int
	NextAt(frame int, output *mat.Dense, box ...[]float64) error
}

// Creator builds a Format over the file at path, opened in the given mode
// with the given compression.
type Creator func(path string, mode files.Mode, comp files.Compression) (Format, error)

// MemoryCreator builds a Format over an in-memory buffer instead of a file
// on disk.
type MemoryCreator func(buf *files.MemoryFile, mode files.Mode) (Format, error)

// noMemoryCreator is what gets registered for formats without in-memory
// support, so that registration always succeeds and the failure happens,
// with a clear message, only if the creator is actually invoked.
func noMemoryCreator(name string) MemoryCreator {
	return func(*files.MemoryFile, files.Mode) (Format, error) {
		return nil, chemfiles.Errorf(chemfiles.ErrFormat,
			"in-memory IO is not supported for the '%s' format", name)
	}
}
