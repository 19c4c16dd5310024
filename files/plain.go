/*
 * plain.go, part of chemfiles.
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
	"bufio"
	"io"
	"os"

	chemfiles "github.com/ynaimi/chemfiles"
)

// PlainFile is the uncompressed disk backend, an os.File behind bufio.
type PlainFile struct {
	f    *os.File
	r    *bufio.Reader
	w    *bufio.Writer
	mode Mode
	path string
}

// OpenPlain opens path as an uncompressed File in the given mode.
func OpenPlain(path string, mode Mode) (*PlainFile, error) {
	P := &PlainFile{mode: mode, path: path}
	var err error
	switch mode {
	case Read:
		P.f, err = os.Open(path)
	case Write:
		P.f, err = os.Create(path)
	case Append:
		P.f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	}
	if err != nil {
		return nil, fileErr("open", path, err)
	}
	if mode == Read {
		P.r = bufio.NewReader(P.f)
	} else {
		P.w = bufio.NewWriter(P.f)
	}
	return P, nil
}

func (P *PlainFile) Read(p []byte) (int, error) {
	if P.r == nil {
		return 0, chemfiles.NewFileError(P.path, "read: file opened in %s mode", P.mode)
	}
	n, err := P.r.Read(p)
	if err != nil && err != io.EOF {
		return n, fileErr("read", P.path, err)
	}
	return n, err
}

func (P *PlainFile) Write(p []byte) (int, error) {
	if P.w == nil {
		return 0, chemfiles.NewFileError(P.path, "write: file opened in read mode")
	}
	n, err := P.w.Write(p)
	if err != nil {
		return n, fileErr("write", P.path, err)
	}
	return n, nil
}

// Seek moves to the absolute position pos.
func (P *PlainFile) Seek(pos int64) error {
	if P.w != nil {
		if err := P.w.Flush(); err != nil {
			return fileErr("seek", P.path, err)
		}
	}
	if _, err := P.f.Seek(pos, io.SeekStart); err != nil {
		return fileErr("seek", P.path, err)
	}
	if P.r != nil {
		P.r.Reset(P.f)
	}
	return nil
}

// Clear resets the stream to its beginning.
func (P *PlainFile) Clear() error {
	return P.Seek(0)
}

func (P *PlainFile) Close() error {
	if P.w != nil {
		if err := P.w.Flush(); err != nil {
			P.f.Close()
			return fileErr("close", P.path, err)
		}
	}
	if err := P.f.Close(); err != nil {
		return fileErr("close", P.path, err)
	}
	return nil
}
