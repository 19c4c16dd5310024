/*
 * doc.go, part of chemfiles.
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

/*
Package chemfiles is the infrastructure core of a molecular-trajectory I/O
library. It provides the format-agnostic connectivity model (atoms, bonds and
the angle/dihedral graph derived from them), the error taxonomy shared by
every package of the library, and the interfaces trajectory readers and
writers implement.

The format registry lives in the format subpackage, the byte-stream file
abstraction (plain, in-memory and transparently compressed backends) in the
files subpackage, and the concrete trajectory formats under traj/.
*/
package chemfiles
