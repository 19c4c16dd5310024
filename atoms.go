/*
 * atoms.go, part of chemfiles.
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

// Atom is one particle in a topology's ordered sequence. Coordinates are
// kept apart, in the per-frame matrices the trajectory readers fill.
type Atom struct {
	Name    string
	Symbol  string
	Mass    float64
	Charge  float64
	defined bool
}

// NewAtom returns a defined Atom with the given name and chemical symbol.
func NewAtom(name, symbol string) Atom {
	return Atom{Name: name, Symbol: symbol, defined: true}
}

// UndefinedAtom returns the placeholder atom used to fill slots created by
// growing a topology, before a format reader assigns them real data.
func UndefinedAtom() Atom {
	return Atom{}
}

// Defined reports whether the atom holds real data, as opposed to being an
// undefined placeholder.
func (a Atom) Defined() bool {
	return a.defined
}
