/*
 * topology.go, part of chemfiles.
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

// Topology owns an ordered atom sequence and its connectivity graph. Format
// readers create one (empty or pre-sized) and mutate it while parsing; the
// caller owns it afterwards. Every bond index is kept below the atom count
// at all times.
type Topology struct {
	atoms   []Atom
	connect Connectivity
}

// NewTopology returns an empty topology.
func NewTopology() *Topology {
	return new(Topology)
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

// Atom returns the Atom corresponding to the index i
// of the atom sequence in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic("Topology: requested Atom out of bounds")
	}
	return &T.atoms[i]
}

// Append adds one atom at the end of the sequence.
func (T *Topology) Append(at Atom) {
	T.atoms = append(T.atoms, at)
}

// Reserve pre-allocates room for n atoms. It never changes the logical
// length, so it has no effect on correctness.
func (T *Topology) Reserve(n int) {
	if n <= cap(T.atoms) {
		return
	}
	atoms := make([]Atom, len(T.atoms), n)
	copy(atoms, T.atoms)
	T.atoms = atoms
}

// Resize grows or truncates the atom sequence to length n, filling new slots
// with undefined atoms. If n is negative, or if any existing bond references
// an atom index >= n, it returns an ErrGeneric error and leaves the topology
// unchanged.
func (T *Topology) Resize(n int) error {
	if n < 0 {
		return Errorf(ErrGeneric, "can not resize the topology to %d atoms", n)
	}
	if max := T.connect.maxIndex(); max >= n {
		for _, b := range T.connect.Bonds() {
			if b.I >= n || b.J >= n {
				return Errorf(ErrGeneric,
					"can not resize the topology to %d atoms as there is a bond between atoms %d-%d",
					n, b.I, b.J)
			}
		}
	}
	if n <= len(T.atoms) {
		T.atoms = T.atoms[:n]
		return nil
	}
	for len(T.atoms) < n {
		T.atoms = append(T.atoms, UndefinedAtom())
	}
	return nil
}

// Remove deletes the atom at idx; atoms after it shift down by one position.
// Every bond incident to idx is deleted, and the endpoints of the surviving
// bonds are renumbered to keep pointing at the same atoms.
func (T *Topology) Remove(idx int) error {
	if idx >= T.Len() || idx < 0 {
		return Errorf(ErrGeneric, "can not remove atom %d from a topology with %d atoms", idx, T.Len())
	}
	T.atoms = append(T.atoms[:idx], T.atoms[idx+1:]...)
	T.connect.removeAtom(idx)
	return nil
}

// AddBond adds a bond between atoms i and j. It returns an ErrGeneric error
// if i equals j or if either index is out of range.
func (T *Topology) AddBond(i, j int) error {
	if i == j {
		return Errorf(ErrGeneric, "can not bond atom %d with itself", i)
	}
	if i < 0 || j < 0 || i >= T.Len() || j >= T.Len() {
		return Errorf(ErrGeneric, "out of bounds bond %d-%d in a topology with %d atoms", i, j, T.Len())
	}
	T.connect.AddBond(i, j)
	return nil
}

// RemoveBond removes the bond between atoms i and j, if present.
func (T *Topology) RemoveBond(i, j int) error {
	if i < 0 || j < 0 || i >= T.Len() || j >= T.Len() {
		return Errorf(ErrGeneric, "out of bounds bond %d-%d in a topology with %d atoms", i, j, T.Len())
	}
	T.connect.RemoveBond(i, j)
	return nil
}

// Bonds returns an independent snapshot of the bond set.
func (T *Topology) Bonds() []Bond {
	return T.connect.Bonds()
}

// Angles returns an independent snapshot of the angles derived from the
// current bonds.
func (T *Topology) Angles() []Angle {
	return T.connect.Angles()
}

// Dihedrals returns an independent snapshot of the dihedrals derived from
// the current bonds.
func (T *Topology) Dihedrals() []Dihedral {
	return T.connect.Dihedrals()
}

// IsBond reports whether atoms i and j are bonded, in either order.
func (T *Topology) IsBond(i, j int) bool {
	return T.connect.HasBond(i, j)
}

// IsAngle reports whether i-j-k (or its reversal) is an angle of the
// topology.
func (T *Topology) IsAngle(i, j, k int) bool {
	return T.connect.HasAngle(i, j, k)
}

// IsDihedral reports whether i-j-k-m (or its reversal) is a dihedral of the
// topology.
func (T *Topology) IsDihedral(i, j, k, m int) bool {
	return T.connect.HasDihedral(i, j, k, m)
}
