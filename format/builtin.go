/*
 * builtin.go, part of chemfiles.
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

package format

import (
	chemfiles "github.com/ynaimi/chemfiles"
	"github.com/ynaimi/chemfiles/files"
	"github.com/ynaimi/chemfiles/traj/trj"
	"github.com/ynaimi/chemfiles/traj/xyz"
)

// registerBuiltins fills a fresh registry with the formats the library
// ships. Registration of the built-in set can only fail through a
// programming error, hence the panic.
func registerBuiltins(R *Registry) {
	builtins := []struct {
		info    FormatInfo
		creator Creator
		memory  MemoryCreator
	}{
		{
			info: FormatInfo{
				Name:        xyz.FormatName,
				Extension:   ".xyz",
				Description: "XYZ text format",
			},
			creator: xyzCreator,
			memory:  xyzMemoryCreator,
		},
		{
			info: FormatInfo{
				Name:        trj.FormatName,
				Extension:   ".trj",
				Description: "binary trajectory with a frame-offset index",
			},
			creator: trjCreator,
			//no memory creator: TRJ needs a seekable native handle
		},
	}
	for _, b := range builtins {
		if err := R.Register(b.info, b.creator, b.memory); err != nil {
			panic("chemfiles: broken built-in format table: " + err.Error())
		}
	}
}

func xyzCreator(path string, mode files.Mode, comp files.Compression) (Format, error) {
	f, err := files.Open(path, mode, comp)
	if err != nil {
		return nil, err
	}
	if mode == files.Read {
		return xyz.NewReader(f, path), nil
	}
	return xyz.NewWriterFile(f, path), nil
}

func xyzMemoryCreator(buf *files.MemoryFile, mode files.Mode) (Format, error) {
	if mode == files.Read {
		return xyz.NewReader(buf, "<memory>"), nil
	}
	return xyz.NewWriterFile(buf, "<memory>"), nil
}

func trjCreator(path string, mode files.Mode, comp files.Compression) (Format, error) {
	if comp != files.None {
		return nil, chemfiles.Errorf(chemfiles.ErrFormat,
			"the '%s' format does not support %s compression", trj.FormatName, comp)
	}
	switch mode {
	case files.Write:
		return trj.NewWriter(path)
	case files.Append:
		return trj.NewAppender(path)
	default:
		return trj.New(path)
	}
}
