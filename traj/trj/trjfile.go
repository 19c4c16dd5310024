/*
 * trjfile.go, part of chemfiles.
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

package trj

import (
	"errors"
	"io"
	"os"

	chemfiles "github.com/ynaimi/chemfiles"
	"github.com/ynaimi/chemfiles/files"
)

//A TRJ file is a little-endian binary trajectory:
//
//  header: "GTRJ" magic, int32 version, int32 natoms
//  frame:  int32 blocksize (natoms*12), natoms*3 float32 coordinates,
//          int32 blocksize again as a check word, int32 box flag,
//          9 float64 box vectors if the flag is 1
//
//Opening for read or append scans the frame records once to build the
//per-frame byte-offset table, after which any frame is one seek away.

const (
	trjMagicString = "GTRJ"
	trjVersion     int32 = 1
)

//errLastFrame marks a clean end of trajectory while scanning or reading.
//It never leaves the package: TrjR translates it into a LastFrameError.
var errLastFrame = errors.New("end of trajectory")

// TrjFile is one open TRJ backing store: the native handle plus the
// frame-offset index. It is exclusively owned by the reader or writer
// wrapping it.
type TrjFile struct {
	path          string
	mode          files.Mode
	c             *codec
	natoms        int32
	offsets       []int64
	headerWritten bool
}

// OpenTrjFile opens path in the given mode. For Read and Append the header
// and the frame-offset table are parsed up front; the handle is released if
// that fails partway through.
func OpenTrjFile(path string, mode files.Mode) (*TrjFile, error) {
	T := &TrjFile{path: path, mode: mode}
	switch mode {
	case files.Read:
		f, err := os.Open(path)
		if err != nil {
			return nil, T.check(trjFileNotFound, "os.Open")
		}
		T.c = &codec{f: f}
		if err := T.readHeader(); err != nil {
			T.c.f.Close() //the handle opened above must not leak
			return nil, err
		}
		if err := T.scanOffsets(); err != nil {
			T.c.f.Close()
			return nil, err
		}
	case files.Write:
		f, err := os.Create(path)
		if err != nil {
			return nil, T.check(trjFileNotFound, "os.Create")
		}
		T.c = &codec{f: f}
	case files.Append:
		//If the file exists we need its atom count and offsets before
		//appending; a missing file just means we start from scratch.
		if _, err := os.Stat(path); err == nil {
			prev, err := OpenTrjFile(path, files.Read)
			if err != nil {
				return nil, errDecorate(err, "OpenTrjFile")
			}
			T.natoms = prev.natoms
			T.offsets = prev.offsets
			T.headerWritten = true
			prev.Close()
		}
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
		if err != nil {
			return nil, T.check(trjFileNotFound, "os.OpenFile")
		}
		T.c = &codec{f: f}
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			T.c.f.Close()
			return nil, T.check(trjSeek, "os.File.Seek")
		}
	}
	return T, nil
}

// check translates a codec status into a file error naming the failing
// operation and carrying the codec's own message. A trjOK status is nil.
func (T *TrjFile) check(st status, op string) error {
	if st == trjOK {
		return nil
	}
	return chemfiles.NewFileError(T.path,
		"error while calling %s in the TRJ library: %s", op, st.message())
}

func (T *TrjFile) readHeader() error {
	magic := make([]byte, 4)
	if st := T.c.readBytes(magic); st != trjOK {
		return T.check(st, "readBytes")
	}
	if string(magic) != trjMagicString {
		return T.check(trjMagic, "readHeader")
	}
	var version int32
	if st := T.c.readInt32(&version); st != trjOK {
		return T.check(st, "readInt32")
	}
	if version != trjVersion {
		return T.check(trjHeader, "readHeader")
	}
	if st := T.c.readInt32(&T.natoms); st != trjOK {
		return T.check(st, "readInt32")
	}
	if T.natoms <= 0 {
		return T.check(trjHeader, "readHeader")
	}
	return nil
}

// writeHeader starts a fresh file for natoms atoms per frame. It runs once,
// when the first frame is written.
func (T *TrjFile) writeHeader(natoms int32) error {
	if st := T.c.writeBytes([]byte(trjMagicString)); st != trjOK {
		return T.check(st, "writeBytes")
	}
	if st := T.c.writeInt32(trjVersion); st != trjOK {
		return T.check(st, "writeInt32")
	}
	if st := T.c.writeInt32(natoms); st != trjOK {
		return T.check(st, "writeInt32")
	}
	T.natoms = natoms
	T.headerWritten = true
	return nil
}

// scanOffsets walks the frame records after the header and fills the
// offset table, one strictly increasing entry per frame.
func (T *TrjFile) scanOffsets() error {
	blocksize := T.natoms * 12
	for {
		pos, st := T.c.tell()
		if st != trjOK {
			return T.check(st, "tell")
		}
		var size int32
		st = T.c.readInt32(&size)
		if st == trjEndOfFile {
			return nil //this end of file is the normal end of the scan
		}
		if st != trjOK {
			return T.check(st, "readInt32")
		}
		if size != blocksize {
			return T.check(trjHeader, "scanOffsets")
		}
		if st := T.c.skip(int64(blocksize)); st != trjOK {
			return T.check(st, "skip")
		}
		var checkword int32
		if st := T.c.readInt32(&checkword); st != trjOK {
			return T.check(st, "readInt32")
		}
		if checkword != blocksize {
			return T.check(trjHeader, "scanOffsets")
		}
		var boxflag int32
		if st := T.c.readInt32(&boxflag); st != trjOK {
			return T.check(st, "readInt32")
		}
		switch boxflag {
		case 0:
		case 1:
			if st := T.c.skip(72); st != trjOK {
				return T.check(st, "skip")
			}
		default:
			return T.check(trjHeader, "scanOffsets")
		}
		T.offsets = append(T.offsets, pos)
	}
}

// readFrame reads the frame at the current position into buf (natoms*3
// float32) and, if box is not nil, the 9 box components into box (zeroed
// when the frame carries none). A clean end of file yields errLastFrame.
func (T *TrjFile) readFrame(buf []float32, box []float64) error {
	var size int32
	st := T.c.readInt32(&size)
	if st == trjEndOfFile {
		return errLastFrame
	}
	if st != trjOK {
		return T.check(st, "readInt32")
	}
	if size != T.natoms*12 || len(buf) != int(T.natoms)*3 {
		return T.check(trjHeader, "readFrame")
	}
	if st := T.c.readFloat32s(buf); st != trjOK {
		return T.check(st, "readFloat32s")
	}
	var checkword int32
	if st := T.c.readInt32(&checkword); st != trjOK {
		return T.check(st, "readInt32")
	}
	if checkword != size {
		return T.check(trjHeader, "readFrame")
	}
	var boxflag int32
	if st := T.c.readInt32(&boxflag); st != trjOK {
		return T.check(st, "readInt32")
	}
	switch boxflag {
	case 0:
		if box != nil {
			for i := range box {
				box[i] = 0
			}
		}
	case 1:
		if box != nil {
			if st := T.c.readFloat64s(box); st != trjOK {
				return T.check(st, "readFloat64s")
			}
		} else if st := T.c.skip(72); st != trjOK {
			return T.check(st, "skip")
		}
	default:
		return T.check(trjHeader, "readFrame")
	}
	return nil
}

// writeFrame appends one frame and records its byte offset once the write
// has fully succeeded.
func (T *TrjFile) writeFrame(buf []float32, box []float64) error {
	pos, st := T.c.tell()
	if st != trjOK {
		return T.check(st, "tell")
	}
	blocksize := T.natoms * 12
	if st := T.c.writeInt32(blocksize); st != trjOK {
		return T.check(st, "writeInt32")
	}
	if st := T.c.writeFloat32s(buf); st != trjOK {
		return T.check(st, "writeFloat32s")
	}
	if st := T.c.writeInt32(blocksize); st != trjOK {
		return T.check(st, "writeInt32")
	}
	if box == nil {
		if st := T.c.writeInt32(0); st != trjOK {
			return T.check(st, "writeInt32")
		}
	} else {
		if st := T.c.writeInt32(1); st != trjOK {
			return T.check(st, "writeInt32")
		}
		if st := T.c.writeFloat64s(box); st != trjOK {
			return T.check(st, "writeFloat64s")
		}
	}
	T.offsets = append(T.offsets, pos)
	return nil
}

// Natoms returns the number of atoms per frame.
func (T *TrjFile) Natoms() int { return int(T.natoms) }

// Nframes returns the number of frames in the offset index.
func (T *TrjFile) Nframes() int { return len(T.offsets) }

// Offset returns the byte offset of the given frame.
func (T *TrjFile) Offset(frame int) int64 { return T.offsets[frame] }

// SeekFrame positions the handle at the start of the given frame, using the
// offset index instead of a sequential scan.
func (T *TrjFile) SeekFrame(frame int) error {
	if frame < 0 || frame >= len(T.offsets) {
		return chemfiles.NewFileError(T.path,
			"can not seek to frame %d in a trajectory with %d frames", frame, len(T.offsets))
	}
	return T.check(T.c.seek(T.offsets[frame]), "seek")
}

// Close releases the native handle. It is safe on a partially constructed
// or already closed file: the handle is closed exactly once.
func (T *TrjFile) Close() error {
	if T.c == nil || T.c.f == nil {
		return nil
	}
	st := T.c.close()
	T.c.f = nil
	return T.check(st, "close")
}

// errDecorate asserts that err implements ChemError and decorates it with
// the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(chemfiles.ChemError)
	err2.Decorate(caller)
	return err2
}
