/*
 * trj.go, part of chemfiles.
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

//Package trj reads and writes TRJ files, the library's binary-indexed
//trajectory format. The per-frame offset table built on open gives O(1)
//random access to any frame.
package trj

import (
	chemfiles "github.com/ynaimi/chemfiles"
	"github.com/ynaimi/chemfiles/files"
	"gonum.org/v1/gonum/mat"
)

// FormatName identifies this format in errors and in the registry.
const FormatName = "TRJ"

//Read!

// TrjR reads a TRJ trajectory. It implements chemfiles.RandomAccessTraj.
type TrjR struct {
	file     *TrjFile
	filename string
	buf      []float32
	readable bool
}

// New opens a TRJ trajectory for reading and returns a pointer to the
// handle.
func New(name string) (*TrjR, error) {
	file, err := OpenTrjFile(name, files.Read)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	R := &TrjR{
		file:     file,
		filename: name,
		buf:      make([]float32, file.Natoms()*3),
		readable: true,
	}
	return R, nil
}

// Readable returns true if the handle is readable (if it is possible to
// call Next on it).
func (R *TrjR) Readable() bool {
	return R.readable
}

// Len returns the number of atoms in each frame of the trajectory.
func (R *TrjR) Len() int {
	return R.file.Natoms()
}

// Nframes returns the number of frames in the trajectory.
func (R *TrjR) Nframes() int {
	return R.file.Nframes()
}

// Next puts in the given matrix the coordinates for the next frame of the
// trajectory and, if given and present in the frame, the box vectors in
// box[0]. A nil output discards the frame after reading it. The end of the
// trajectory is reported as a LastFrameError, not an actual error.
func (R *TrjR) Next(output *mat.Dense, box ...[]float64) error {
	if !R.readable {
		return chemfiles.New(chemfiles.ErrFile, "TRJ trajectory not initialized to read").
			SetFileName(R.filename).SetFormat(FormatName)
	}
	var boxbuf []float64
	if len(box) > 0 && len(box[0]) >= 9 {
		boxbuf = box[0][:9]
	}
	err := R.file.readFrame(R.buf, boxbuf)
	if err == errLastFrame {
		R.readable = false
		return chemfiles.NewLastFrameError(R.filename, FormatName, "Next")
	}
	if err != nil {
		return errDecorate(err, "Next")
	}
	if output == nil {
		return nil //the frame is read, and checked, but not kept
	}
	r, c := output.Dims()
	if r != R.Len() || c != 3 {
		return chemfiles.Errorf(chemfiles.ErrGeneric,
			"%dx%d output matrix given, but %dx3 expected", r, c, R.Len())
	}
	for i := 0; i < R.Len(); i++ {
		output.Set(i, 0, float64(R.buf[3*i]))
		output.Set(i, 1, float64(R.buf[3*i+1]))
		output.Set(i, 2, float64(R.buf[3*i+2]))
	}
	return nil
}

// NextAt reads the frame-th frame (counting from zero) wherever the
// previous read left the handle, seeking through the offset index.
func (R *TrjR) NextAt(frame int, output *mat.Dense, box ...[]float64) error {
	if !R.readable && frame < R.Nframes() {
		R.readable = true //seeking back into the file makes it readable again
	}
	if err := R.file.SeekFrame(frame); err != nil {
		return errDecorate(err, "NextAt")
	}
	if err := R.Next(output, box...); err != nil {
		return errDecorate(err, "NextAt")
	}
	return nil
}

// Close closes the trajectory and marks it as unreadable. The handle is
// released on the first call; later calls do nothing, even if a read already
// exhausted the trajectory.
func (R *TrjR) Close() error {
	R.readable = false
	return R.file.Close()
}

//Write!

// TrjW writes a TRJ trajectory. The header is written with the first frame,
// which fixes the number of atoms for the rest of the file.
type TrjW struct {
	file      *TrjFile
	filename  string
	buf       []float32
	natoms    int
	writeable bool
}

// NewWriter creates name and returns a writer for it. Anything already in
// the file is lost.
func NewWriter(name string) (*TrjW, error) {
	file, err := OpenTrjFile(name, files.Write)
	if err != nil {
		return nil, errDecorate(err, "NewWriter")
	}
	return &TrjW{file: file, filename: name, writeable: true}, nil
}

// NewAppender returns a writer adding frames at the end of name. If the
// file exists its header fixes the atom count; if not, the first written
// frame does, as with NewWriter.
func NewAppender(name string) (*TrjW, error) {
	file, err := OpenTrjFile(name, files.Append)
	if err != nil {
		return nil, errDecorate(err, "NewAppender")
	}
	return &TrjW{file: file, filename: name, natoms: file.Natoms(), writeable: true}, nil
}

// Len returns the number of atoms per frame, or 0 before the first frame is
// written.
func (W *TrjW) Len() int {
	return W.natoms
}

// Nframes returns the number of frames written so far (including any frames
// already in an appended file).
func (W *TrjW) Nframes() int {
	return W.file.Nframes()
}

// WNext writes coord as the next frame, with the box vectors of box[0], if
// given.
func (W *TrjW) WNext(coord *mat.Dense, box ...[]float64) error {
	if !W.writeable {
		return chemfiles.New(chemfiles.ErrFile, "TRJ trajectory not initialized to write").
			SetFileName(W.filename).SetFormat(FormatName)
	}
	if coord == nil {
		return chemfiles.New(chemfiles.ErrGeneric, "given nil coordinates").SetFileName(W.filename)
	}
	r, c := coord.Dims()
	if c != 3 {
		return chemfiles.Errorf(chemfiles.ErrGeneric, "%d columns in the coordinate matrix, 3 expected", c)
	}
	if !W.file.headerWritten {
		if err := W.file.writeHeader(int32(r)); err != nil {
			return errDecorate(err, "WNext")
		}
		W.natoms = r
		W.buf = make([]float32, r*3)
	} else if r != W.natoms {
		return chemfiles.Errorf(chemfiles.ErrGeneric,
			"%d coordinates given, but %d expected", r, W.natoms)
	}
	if W.buf == nil {
		W.buf = make([]float32, W.natoms*3)
	}
	for i := 0; i < r; i++ {
		W.buf[3*i] = float32(coord.At(i, 0))
		W.buf[3*i+1] = float32(coord.At(i, 1))
		W.buf[3*i+2] = float32(coord.At(i, 2))
	}
	var boxbuf []float64
	if len(box) > 0 && len(box[0]) >= 9 {
		boxbuf = box[0][:9]
	}
	if err := W.file.writeFrame(W.buf, boxbuf); err != nil {
		return errDecorate(err, "WNext")
	}
	return nil
}

// Close closes the trajectory. It can not be written after this call;
// closing again does nothing.
func (W *TrjW) Close() error {
	W.writeable = false
	return W.file.Close()
}
