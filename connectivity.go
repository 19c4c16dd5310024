/*
 * connectivity.go, part of chemfiles.
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

import "sort"

// Bond is an unordered pair of atom indices denoting a direct connection.
// It is always stored with I < J.
type Bond struct {
	I, J int
}

// NewBond returns the canonical Bond between atoms i and j.
func NewBond(i, j int) Bond {
	if j < i {
		i, j = j, i
	}
	return Bond{I: i, J: j}
}

// Angle is an ordered triple of atom indices forming two adjacent bonds
// I-J and J-K. The canonical orientation has I < K: an angle and its
// reversal are the same angle.
type Angle struct {
	I, J, K int
}

// NewAngle returns the canonical Angle with central atom j.
func NewAngle(i, j, k int) Angle {
	if k < i {
		i, k = k, i
	}
	return Angle{I: i, J: j, K: k}
}

// Dihedral is an ordered quadruple of atom indices forming three consecutive
// bonds I-J, J-K and K-M. The canonical orientation has J < K: a dihedral
// and its reversal are the same dihedral.
type Dihedral struct {
	I, J, K, M int
}

// NewDihedral returns the canonical Dihedral over the bond chain i-j-k-m.
func NewDihedral(i, j, k, m int) Dihedral {
	if k < j {
		i, j, k, m = m, k, j, i
	}
	return Dihedral{I: i, J: j, K: k, M: m}
}

// Connectivity is a bond set plus the angle and dihedral sets derived from
// it. The derived sets are cached and rebuilt after any bond mutation, so
// every accessor returns values matching a from-scratch derivation.
type Connectivity struct {
	bonds     []Bond
	angles    []Angle
	dihedrals []Dihedral
	stale     bool
}

// AddBond adds the bond between atoms i and j. Adding an already present
// bond has no effect. Index validity is the caller's business; Topology
// checks it before calling here.
func (C *Connectivity) AddBond(i, j int) {
	b := NewBond(i, j)
	for _, v := range C.bonds {
		if v == b {
			return
		}
	}
	C.bonds = append(C.bonds, b)
	C.stale = true
}

// RemoveBond removes the bond between atoms i and j, reporting whether it
// was present.
func (C *Connectivity) RemoveBond(i, j int) bool {
	b := NewBond(i, j)
	for n, v := range C.bonds {
		if v == b {
			C.bonds = append(C.bonds[:n], C.bonds[n+1:]...)
			C.stale = true
			return true
		}
	}
	return false
}

// HasBond reports whether atoms i and j are bonded, in either order.
func (C *Connectivity) HasBond(i, j int) bool {
	b := NewBond(i, j)
	for _, v := range C.bonds {
		if v == b {
			return true
		}
	}
	return false
}

// NBonds returns the number of bonds in the set.
func (C *Connectivity) NBonds() int {
	return len(C.bonds)
}

// Bonds returns an independent snapshot of the bond set, sorted.
func (C *Connectivity) Bonds() []Bond {
	res := make([]Bond, len(C.bonds))
	copy(res, C.bonds)
	sort.Slice(res, func(a, b int) bool {
		if res[a].I != res[b].I {
			return res[a].I < res[b].I
		}
		return res[a].J < res[b].J
	})
	return res
}

// Angles returns an independent snapshot of every angle derivable from the
// current bonds: one per pair of bonds sharing exactly one endpoint.
func (C *Connectivity) Angles() []Angle {
	C.derive()
	res := make([]Angle, len(C.angles))
	copy(res, C.angles)
	return res
}

// Dihedrals returns an independent snapshot of every dihedral derivable from
// the current bonds: one per chain of three bonds over four distinct atoms.
func (C *Connectivity) Dihedrals() []Dihedral {
	C.derive()
	res := make([]Dihedral, len(C.dihedrals))
	copy(res, C.dihedrals)
	return res
}

// HasAngle reports whether (i, j, k) or its reversal is a derived angle.
func (C *Connectivity) HasAngle(i, j, k int) bool {
	C.derive()
	a := NewAngle(i, j, k)
	for _, v := range C.angles {
		if v == a {
			return true
		}
	}
	return false
}

// HasDihedral reports whether (i, j, k, m) or its reversal is a derived
// dihedral.
func (C *Connectivity) HasDihedral(i, j, k, m int) bool {
	C.derive()
	d := NewDihedral(i, j, k, m)
	for _, v := range C.dihedrals {
		if v == d {
			return true
		}
	}
	return false
}

// removeAtom drops every bond incident to idx and shifts down by one the
// endpoints of every surviving bond positioned after idx, keeping the bond
// set consistent with an atom sequence from which idx was deleted.
func (C *Connectivity) removeAtom(idx int) {
	kept := C.bonds[:0]
	for _, b := range C.bonds {
		if b.I == idx || b.J == idx {
			continue
		}
		if b.I > idx {
			b.I--
		}
		if b.J > idx {
			b.J--
		}
		kept = append(kept, b)
	}
	C.bonds = kept
	C.stale = true
}

// maxIndex returns the largest atom index any bond references, or -1 if
// there are no bonds.
func (C *Connectivity) maxIndex() int {
	max := -1
	for _, b := range C.bonds {
		if b.J > max { //J >= I always
			max = b.J
		}
	}
	return max
}

// derive rebuilds the cached angle and dihedral sets if any bond mutation
// happened since the last derivation.
func (C *Connectivity) derive() {
	if !C.stale && C.angles != nil {
		return
	}
	angleset := make(map[Angle]bool)
	for n, b1 := range C.bonds {
		for _, b2 := range C.bonds[n+1:] {
			i, j, k, ok := sharedEndpoint(b1, b2)
			if ok {
				angleset[NewAngle(i, j, k)] = true
			}
		}
	}
	C.angles = make([]Angle, 0, len(angleset))
	for a := range angleset {
		C.angles = append(C.angles, a)
	}
	sort.Slice(C.angles, func(a, b int) bool {
		x, y := C.angles[a], C.angles[b]
		if x.I != y.I {
			return x.I < y.I
		}
		if x.J != y.J {
			return x.J < y.J
		}
		return x.K < y.K
	})
	//a dihedral is an angle extended by one bond at either end, with all
	//four atoms distinct
	dihedralset := make(map[Dihedral]bool)
	for _, a := range C.angles {
		for _, b := range C.bonds {
			if m, ok := other(b, a.K); ok && m != a.I && m != a.J {
				dihedralset[NewDihedral(a.I, a.J, a.K, m)] = true
			}
			if m, ok := other(b, a.I); ok && m != a.J && m != a.K {
				dihedralset[NewDihedral(m, a.I, a.J, a.K)] = true
			}
		}
	}
	C.dihedrals = make([]Dihedral, 0, len(dihedralset))
	for d := range dihedralset {
		C.dihedrals = append(C.dihedrals, d)
	}
	sort.Slice(C.dihedrals, func(a, b int) bool {
		x, y := C.dihedrals[a], C.dihedrals[b]
		if x.I != y.I {
			return x.I < y.I
		}
		if x.J != y.J {
			return x.J < y.J
		}
		if x.K != y.K {
			return x.K < y.K
		}
		return x.M < y.M
	})
	C.stale = false
}

// sharedEndpoint returns (i, j, k) such that j is the single atom b1 and b2
// have in common and i, k are the outer endpoints. ok is false if the bonds
// share zero or both endpoints.
func sharedEndpoint(b1, b2 Bond) (i, j, k int, ok bool) {
	switch {
	case b1.I == b2.I && b1.J == b2.J:
		return 0, 0, 0, false
	case b1.I == b2.I:
		return b1.J, b1.I, b2.J, true
	case b1.I == b2.J:
		return b1.J, b1.I, b2.I, true
	case b1.J == b2.I:
		return b1.I, b1.J, b2.J, true
	case b1.J == b2.J:
		return b1.I, b1.J, b2.I, true
	}
	return 0, 0, 0, false
}

// other returns the endpoint of b opposite to atom, if atom is one of b's
// endpoints.
func other(b Bond, atom int) (int, bool) {
	if b.I == atom {
		return b.J, true
	}
	if b.J == atom {
		return b.I, true
	}
	return 0, false
}
