/*
 * plugin.go, part of chemfiles.
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
	"plugin"

	chemfiles "github.com/ynaimi/chemfiles"
)

// PluginSymbol is the name a format plugin must export: a
// func(*Registry) error that registers the plugin's formats.
const PluginSymbol = "RegisterFormats"

// LoadPlugin loads an external format backend from the shared object at
// path and lets it register its formats into R. Every failure along the
// way (loading the object, finding the symbol, its signature, or the
// registration call itself) surfaces as a plugin error.
func LoadPlugin(R *Registry, path string) error {
	p, err := plugin.Open(path)
	if err != nil {
		return chemfiles.Errorf(chemfiles.ErrPlugin,
			"can not load the format plugin at %s: %s", path, err.Error())
	}
	sym, err := p.Lookup(PluginSymbol)
	if err != nil {
		return chemfiles.Errorf(chemfiles.ErrPlugin,
			"the plugin at %s does not export %s: %s", path, PluginSymbol, err.Error())
	}
	register, ok := sym.(func(*Registry) error)
	if !ok {
		return chemfiles.Errorf(chemfiles.ErrPlugin,
			"%s in the plugin at %s is not a func(*Registry) error", PluginSymbol, path)
	}
	if err := register(R); err != nil {
		return chemfiles.Errorf(chemfiles.ErrPlugin,
			"the plugin at %s failed to register its formats: %s", path, err.Error())
	}
	return nil
}
