/*
 * interfaces.go, part of chemfiles.
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

package chemfiles

import "gonum.org/v1/gonum/mat"

// Traj is the interface for any trajectory reader in the library.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into output (an natoms x 3 matrix), or
	//discards the frame if output is nil. If the frame carries box vectors
	//and box is given, the 9 box components are copied into box[0].
	Next(output *mat.Dense, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

// RandomAccessTraj is a trajectory that can seek to any frame in O(1),
// through a per-frame offset index built when the file is opened.
type RandomAccessTraj interface {
	Traj

	//Nframes returns the number of frames in the trajectory.
	Nframes() int

	//NextAt reads the frame-th frame, counting from zero.
	NextAt(frame int, output *mat.Dense, box ...[]float64) error
}

// TrajWriter is the writing counterpart of Traj.
type TrajWriter interface {

	//WNext writes coord (an natoms x 3 matrix) as the next frame, with the
	//box vectors in box[0], if given.
	WNext(coord *mat.Dense, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the atom sequence in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

// ChemError is the interface for errors that all packages in this library
// implement. Kind allows branching on the failure category at the call
// boundary; Decorate allows adding and retrieving info from the error
// without changing its type or wrapping it around something else.
type ChemError interface {
	error

	//Kind returns the category of the failure.
	Kind() Kind

	//Decorate appends the given string to the error's decoration slice and
	//returns the resulting slice. If passed an empty string, it just returns
	//the current value. The slice should contain the functions in the calling
	//stack, each optionally followed by extra info as "FunctionName: info".
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories.
type TrajError interface {
	ChemError
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors
// (i.e. last frame) so they can be filtered in a typeswitch that looks for
// this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
