/*
 * registry.go, part of chemfiles.
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
	"strings"
	"sync"
	"unicode"

	chemfiles "github.com/ynaimi/chemfiles"
)

type registered struct {
	info    FormatInfo
	creator Creator
	memory  MemoryCreator
}

// Registry is a table of registered formats. The zero value is not usable;
// call NewRegistry. A single mutex guards the table, held only for the
// duration of the table access; the edit-distance scan behind the lookup
// suggestions runs on a snapshot taken under the lock.
type Registry struct {
	mu      sync.Mutex
	formats []registered
}

// NewRegistry returns an empty, isolated registry. Most callers want
// Default instead; isolated registries exist so tests and embedders don't
// share global mutable state.
func NewRegistry() *Registry {
	return new(Registry)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, built on first use and
// pre-populated with the built-in formats. It lives for the rest of the
// process; entries are only ever added to it.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

// Register adds a format to the registry. It fails with a format error if
// info.Name is empty, if the name is already registered, or if the
// extension is non-empty and already registered; a failed registration
// leaves the registry exactly as it was. A nil memory creator registers a
// stub that fails, when invoked, with an "in-memory IO is not supported"
// error; registration itself never fails for that reason.
func (R *Registry) Register(info FormatInfo, creator Creator, memory MemoryCreator) error {
	R.mu.Lock()
	defer R.mu.Unlock()
	if info.Name == "" {
		return chemfiles.New(chemfiles.ErrFormat, "can not register a format with no name")
	}
	if R.findByName(info.Name) != -1 {
		return chemfiles.Errorf(chemfiles.ErrFormat,
			"there is already a format associated with the name '%s'", info.Name)
	}
	if info.Extension != "" {
		if idx := R.findByExtension(info.Extension); idx != -1 {
			return chemfiles.Errorf(chemfiles.ErrFormat,
				"the extension '%s' is already associated with format '%s'",
				info.Extension, R.formats[idx].info.Name)
		}
	}
	if memory == nil {
		memory = noMemoryCreator(info.Name)
	}
	R.formats = append(R.formats, registered{info: info, creator: creator, memory: memory})
	return nil
}

// Name returns the creator for the format with the exact, case-sensitive
// name. A failed lookup lists every registered name within edit distance 4
// of the query as a "did you mean" suggestion.
func (R *Registry) Name(name string) (Creator, error) {
	R.mu.Lock()
	if idx := R.findByName(name); idx != -1 {
		creator := R.formats[idx].creator
		R.mu.Unlock()
		return creator, nil
	}
	infos := R.snapshotLocked()
	R.mu.Unlock()
	return nil, chemfiles.New(chemfiles.ErrFormat, suggestNames(infos, name))
}

// MemoryStream is Name for the in-memory constructor.
func (R *Registry) MemoryStream(name string) (MemoryCreator, error) {
	R.mu.Lock()
	if idx := R.findByName(name); idx != -1 {
		memory := R.formats[idx].memory
		R.mu.Unlock()
		return memory, nil
	}
	infos := R.snapshotLocked()
	R.mu.Unlock()
	return nil, chemfiles.New(chemfiles.ErrFormat, suggestNames(infos, name))
}

// Extension returns the creator for the format with the given extension
// (leading dot included). No suggestions are computed for extensions.
func (R *Registry) Extension(extension string) (Creator, error) {
	R.mu.Lock()
	defer R.mu.Unlock()
	if idx := R.findByExtension(extension); idx != -1 {
		return R.formats[idx].creator, nil
	}
	return nil, chemfiles.Errorf(chemfiles.ErrFormat,
		"can not find a format associated with the '%s' extension", extension)
}

// Formats returns a snapshot of all registered FormatInfo, in registration
// order.
func (R *Registry) Formats() []FormatInfo {
	R.mu.Lock()
	defer R.mu.Unlock()
	return R.snapshotLocked()
}

func (R *Registry) snapshotLocked() []FormatInfo {
	infos := make([]FormatInfo, 0, len(R.formats))
	for _, f := range R.formats {
		infos = append(infos, f.info)
	}
	return infos
}

func (R *Registry) findByName(name string) int {
	for i := range R.formats {
		if R.formats[i].info.Name == name {
			return i
		}
	}
	return -1
}

func (R *Registry) findByExtension(extension string) int {
	for i := range R.formats {
		if R.formats[i].info.Extension == extension {
			return i
		}
	}
	return -1
}

// editDistance computes the edit distance between two strings using the
// Wagner-Fischer algorithm, with unit cost for insertions, deletions and
// substitutions and case-insensitive character comparison.
func editDistance(first, second string) int {
	a := []rune(first)
	b := []rune(second)
	m := len(a) + 1
	n := len(b) + 1
	distances := make([][]int, m)
	for i := range distances {
		distances[i] = make([]int, n)
		distances[i][0] = i
	}
	for j := 0; j < n; j++ {
		distances[0][j] = j
	}
	for j := 1; j < n; j++ {
		for i := 1; i < m; i++ {
			if unicode.ToLower(a[i-1]) == unicode.ToLower(b[j-1]) {
				distances[i][j] = distances[i-1][j-1]
			} else {
				min := distances[i-1][j] + 1
				if d := distances[i][j-1] + 1; d < min {
					min = d
				}
				if d := distances[i-1][j-1] + 1; d < min {
					min = d
				}
				distances[i][j] = min
			}
		}
	}
	return distances[m-1][n-1]
}

// suggestNames builds the message for a failed name lookup, listing every
// registered name within edit distance 4 of the query.
func suggestNames(infos []FormatInfo, name string) string {
	var suggestions []string
	for _, info := range infos {
		if editDistance(name, info.Name) < 4 {
			suggestions = append(suggestions, info.Name)
		}
	}
	var message strings.Builder
	message.WriteString("can not find a format named '" + name + "'")
	if len(suggestions) != 0 {
		message.WriteString(", did you mean")
		for n, suggestion := range suggestions {
			if n != 0 {
				message.WriteString(" or")
			}
			message.WriteString(" '" + suggestion + "'")
		}
		message.WriteString("?")
	}
	return message.String()
}
