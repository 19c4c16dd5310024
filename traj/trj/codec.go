/*
 * codec.go, part of chemfiles.
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
	"encoding/binary"
	"io"
	"os"
)

//The low-level TRJ codec. Every primitive returns a status code instead of
//an error; TrjFile.check translates non-OK statuses into file errors
//carrying the failing call's name and the codec message, so nothing gets
//swallowed across the abstraction boundary.

type status int

const (
	trjOK status = iota
	trjHeader
	trjMagic
	trjInt
	trjFloat
	trjDouble
	trj3DX
	trjSeek
	trjClose
	trjNoMem
	trjEndOfFile
	trjFileNotFound
	trjNR //not a status, marks the end of the list
)

var statusMessage = [trjNR]string{
	trjOK:           "no error",
	trjHeader:       "invalid frame header",
	trjMagic:        "wrong magic number",
	trjInt:          "failed to read or write an integer",
	trjFloat:        "failed to read or write a float",
	trjDouble:       "failed to read or write a double",
	trj3DX:          "failed to read or write coordinate data",
	trjSeek:         "failed to seek in the file",
	trjClose:        "could not close the file",
	trjNoMem:        "could not allocate memory",
	trjEndOfFile:    "unexpected end of file",
	trjFileNotFound: "file not found",
}

func (s status) message() string {
	if s < 0 || s >= trjNR {
		return "unknown status code from the TRJ library"
	}
	return statusMessage[s]
}

// codec reads and writes the little-endian primitives TRJ files are made of.
type codec struct {
	f *os.File
}

func (c *codec) readBytes(p []byte) status {
	if _, err := io.ReadFull(c.f, p); err != nil {
		if err == io.EOF {
			return trjEndOfFile
		}
		return trjInt
	}
	return trjOK
}

func (c *codec) writeBytes(p []byte) status {
	if _, err := c.f.Write(p); err != nil {
		return trjInt
	}
	return trjOK
}

func (c *codec) readInt32(v *int32) status {
	if err := binary.Read(c.f, binary.LittleEndian, v); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return trjEndOfFile
		}
		return trjInt
	}
	return trjOK
}

func (c *codec) writeInt32(v int32) status {
	if err := binary.Write(c.f, binary.LittleEndian, v); err != nil {
		return trjInt
	}
	return trjOK
}

func (c *codec) readFloat32s(p []float32) status {
	if err := binary.Read(c.f, binary.LittleEndian, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return trjEndOfFile
		}
		return trj3DX
	}
	return trjOK
}

func (c *codec) writeFloat32s(p []float32) status {
	if err := binary.Write(c.f, binary.LittleEndian, p); err != nil {
		return trj3DX
	}
	return trjOK
}

func (c *codec) readFloat64s(p []float64) status {
	if err := binary.Read(c.f, binary.LittleEndian, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return trjEndOfFile
		}
		return trjDouble
	}
	return trjOK
}

func (c *codec) writeFloat64s(p []float64) status {
	if err := binary.Write(c.f, binary.LittleEndian, p); err != nil {
		return trjDouble
	}
	return trjOK
}

func (c *codec) tell() (int64, status) {
	pos, err := c.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, trjSeek
	}
	return pos, trjOK
}

func (c *codec) seek(pos int64) status {
	if _, err := c.f.Seek(pos, io.SeekStart); err != nil {
		return trjSeek
	}
	return trjOK
}

func (c *codec) skip(n int64) status {
	if _, err := c.f.Seek(n, io.SeekCurrent); err != nil {
		return trjSeek
	}
	return trjOK
}

func (c *codec) close() status {
	if err := c.f.Close(); err != nil {
		return trjClose
	}
	return trjOK
}
