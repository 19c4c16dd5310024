/*
 * xyz.go, part of chemfiles.
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

//Package xyz reads and writes XYZ trajectories through the files
//abstraction, so plain, compressed (traj.xyz.gz and friends) and in-memory
//backends all work the same way. Each frame is an atom-count line, a
//comment line and one "Symbol x y z" line per atom; box vectors, when
//present, ride on the comment line.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	chemfiles "github.com/ynaimi/chemfiles"
	"github.com/ynaimi/chemfiles/files"
	"gonum.org/v1/gonum/mat"
)

// FormatName identifies this format in errors and in the registry.
const FormatName = "XYZ"

//Read!

// XYZR reads an XYZ trajectory. The topology is populated from the first
// frame read.
type XYZR struct {
	f        files.File
	h        *bufio.Reader
	filename string
	natoms   int
	top      *chemfiles.Topology
	readable bool
}

// New opens name for reading, inferring the compression from the extension.
func New(name string) (*XYZR, error) {
	f, err := files.Open(name, files.Read, files.GuessCompression(name))
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	return NewReader(f, name), nil
}

// NewReader returns an XYZ reader over an already open File. name is only
// used in errors.
func NewReader(f files.File, name string) *XYZR {
	return &XYZR{f: f, h: bufio.NewReader(f), filename: name, readable: true}
}

// Readable returns true if the handle is readable (if it is possible to
// call Next on it).
func (R *XYZR) Readable() bool {
	return R.readable
}

// Len returns the number of atoms in each frame, or 0 before the first
// frame is read.
func (R *XYZR) Len() int {
	return R.natoms
}

// Topology returns the topology read from the first frame, or nil if no
// frame has been read yet. The caller owns the returned value.
func (R *XYZR) Topology() *chemfiles.Topology {
	return R.top
}

func (R *XYZR) formatErr(format string, a ...interface{}) error {
	return chemfiles.Errorf(chemfiles.ErrFile, format, a...).
		SetFileName(R.filename).SetFormat(FormatName)
}

// Next puts in the given matrix the coordinates for the next frame of the
// trajectory and, if given and present on the comment line, the box vectors
// in box[0]. A nil output discards the frame after checking it. The end of
// the trajectory is reported as a LastFrameError, not an actual error.
func (R *XYZR) Next(output *mat.Dense, box ...[]float64) error {
	if !R.readable {
		return R.formatErr("XYZ trajectory not initialized to read")
	}
	countline, err := R.h.ReadString('\n')
	if err == io.EOF && strings.TrimSpace(countline) == "" {
		//nothing bad happened here, the trajectory just ended
		R.Close()
		return chemfiles.NewLastFrameError(R.filename, FormatName, "Next")
	}
	if err != nil && err != io.EOF {
		return R.formatErr("can't read the atom count line: %s", err.Error())
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(countline))
	if err != nil || natoms <= 0 {
		return R.formatErr("malformed atom count line %q", strings.TrimSpace(countline))
	}
	if R.natoms == 0 {
		R.natoms = natoms
	} else if natoms != R.natoms {
		return R.formatErr("frame with %d atoms in a trajectory of %d atoms per frame", natoms, R.natoms)
	}
	comment, err := R.h.ReadString('\n')
	if err != nil && err != io.EOF {
		return R.formatErr("can't read the comment line: %s", err.Error())
	}
	if len(box) > 0 && len(box[0]) >= 9 {
		readBoxComment(comment, box[0])
	}
	if output != nil {
		if r, c := output.Dims(); r != natoms || c != 3 {
			return chemfiles.Errorf(chemfiles.ErrGeneric,
				"%dx%d output matrix given, but %dx3 expected", r, c, natoms)
		}
	}
	firstframe := R.top == nil
	if firstframe {
		R.top = chemfiles.NewTopology()
		R.top.Reserve(natoms)
	}
	for i := 0; i < natoms; i++ {
		line, err := R.h.ReadString('\n')
		if err != nil && err != io.EOF {
			return R.formatErr("can't read atom %d: %s", i, err.Error())
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return R.formatErr("malformed atom line %q", strings.TrimSpace(line))
		}
		if firstframe {
			R.top.Append(chemfiles.NewAtom(fields[0], fields[0]))
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return R.formatErr("can't parse coordinate %d of atom %d: %s", j, i, err.Error())
			}
			if output != nil {
				output.Set(i, j, v)
			}
		}
	}
	return nil
}

// Close closes the trajectory and marks it as unreadable.
func (R *XYZR) Close() error {
	if !R.readable {
		return nil
	}
	R.readable = false
	return R.f.Close()
}

//readBoxComment fills box from a comment line of the form
//"box a b c d e f g h i". Anything else leaves box zeroed.
func readBoxComment(comment string, box []float64) {
	for i := 0; i < 9; i++ {
		box[i] = 0
	}
	fields := strings.Fields(comment)
	if len(fields) < 10 || fields[0] != "box" {
		return
	}
	for i := 0; i < 9; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			for j := 0; j < 9; j++ {
				box[j] = 0
			}
			return
		}
		box[i] = v
	}
}

//Write!

// XYZW writes an XYZ trajectory. The first frame fixes the number of atoms
// for the rest of the file.
type XYZW struct {
	f         files.File
	filename  string
	natoms    int
	frame     int
	top       *chemfiles.Topology
	writeable bool
}

// NewWriter creates name (with compression inferred from the extension) and
// returns a writer for it.
func NewWriter(name string) (*XYZW, error) {
	f, err := files.Open(name, files.Write, files.GuessCompression(name))
	if err != nil {
		return nil, errDecorate(err, "NewWriter")
	}
	return NewWriterFile(f, name), nil
}

// NewAppender returns a writer adding frames at the end of name.
func NewAppender(name string) (*XYZW, error) {
	f, err := files.Open(name, files.Append, files.GuessCompression(name))
	if err != nil {
		return nil, errDecorate(err, "NewAppender")
	}
	return NewWriterFile(f, name), nil
}

// NewWriterFile returns an XYZ writer over an already open File. name is
// only used in errors.
func NewWriterFile(f files.File, name string) *XYZW {
	return &XYZW{f: f, filename: name, writeable: true}
}

// SetTopology provides the atom symbols written on each atom line; without
// it every atom is written as "X".
func (W *XYZW) SetTopology(top *chemfiles.Topology) {
	W.top = top
}

// Len returns the number of atoms per frame, or 0 before the first frame is
// written.
func (W *XYZW) Len() int {
	return W.natoms
}

// WNext writes coord as the next frame, with the box vectors of box[0], if
// given, on the comment line.
func (W *XYZW) WNext(coord *mat.Dense, box ...[]float64) error {
	if !W.writeable {
		return chemfiles.New(chemfiles.ErrFile, "XYZ trajectory not initialized to write").
			SetFileName(W.filename).SetFormat(FormatName)
	}
	if coord == nil {
		return chemfiles.New(chemfiles.ErrGeneric, "given nil coordinates").SetFileName(W.filename)
	}
	r, c := coord.Dims()
	if c != 3 {
		return chemfiles.Errorf(chemfiles.ErrGeneric, "%d columns in the coordinate matrix, 3 expected", c)
	}
	if W.natoms == 0 {
		W.natoms = r
	} else if r != W.natoms {
		return chemfiles.Errorf(chemfiles.ErrGeneric, "%d coordinates given, but %d expected", r, W.natoms)
	}
	if _, err := fmt.Fprintf(W.f, "%d\n", r); err != nil {
		return errDecorate(err, "WNext")
	}
	var comment string
	if len(box) > 0 && len(box[0]) >= 9 {
		b := box[0]
		comment = fmt.Sprintf("box %g %g %g %g %g %g %g %g %g",
			b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8])
	} else {
		comment = fmt.Sprintf("frame %d", W.frame)
	}
	if _, err := fmt.Fprintf(W.f, "%s\n", comment); err != nil {
		return errDecorate(err, "WNext")
	}
	for i := 0; i < r; i++ {
		symbol := "X"
		if W.top != nil && W.top.Len() == W.natoms {
			if s := W.top.Atom(i).Symbol; s != "" {
				symbol = s
			}
		}
		_, err := fmt.Fprintf(W.f, "%s %.10g %.10g %.10g\n",
			symbol, coord.At(i, 0), coord.At(i, 1), coord.At(i, 2))
		if err != nil {
			return errDecorate(err, "WNext")
		}
	}
	W.frame++
	return nil
}

// Close closes the trajectory, flushing the codec if the file is
// compressed. It can not be written after this call.
func (W *XYZW) Close() error {
	if !W.writeable {
		return nil
	}
	W.writeable = false
	return W.f.Close()
}

// errDecorate decorates err with the caller's name if it is a ChemError,
// and wraps it into a file error otherwise.
func errDecorate(err error, caller string) error {
	if cerr, ok := err.(chemfiles.ChemError); ok {
		cerr.Decorate(caller)
		return cerr
	}
	return chemfiles.Errorf(chemfiles.ErrFile, "%s: %s", caller, err.Error())
}
