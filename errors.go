/*
 * errors.go, part of chemfiles.
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

import "fmt"

// Kind is the category of a library error. Callers can branch on it
// with IsKind without inspecting message text.
type Kind int

const (
	//ErrGeneric covers invariant violations in the topology/connectivity
	//model and everything that fits no other category.
	ErrGeneric Kind = iota
	//ErrFile covers open/read/write/seek failures and any failing status
	//reported by an underlying codec.
	ErrFile
	//ErrMemory covers allocation or capacity failures in a buffer.
	ErrMemory
	//ErrFormat covers registry collisions and lookup failures.
	ErrFormat
	//ErrPlugin covers failures while loading an external format backend.
	ErrPlugin
)

func (k Kind) String() string {
	switch k {
	case ErrFile:
		return "file error"
	case ErrMemory:
		return "memory error"
	case ErrFormat:
		return "format error"
	case ErrPlugin:
		return "plugin error"
	default:
		return "error"
	}
}

// Error is the concrete error used across the library. It carries a Kind,
// a message, the name of the file involved (empty if none) and a "decoration"
// trail of the functions the error went through on its way up.
type Error struct {
	kind     Kind
	message  string
	filename string
	format   string
	deco     []string
	critical bool
}

// New returns an Error of the given Kind.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message, critical: true}
}

// Errorf is New with fmt.Sprintf formatting.
func Errorf(kind Kind, format string, a ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, a...))
}

// NewFileError returns an ErrFile Error associated to the given filename.
func NewFileError(filename, format string, a ...interface{}) *Error {
	err := Errorf(ErrFile, format, a...)
	err.filename = filename
	return err
}

func (err *Error) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("%s (%s): %s", err.kind.String(), err.filename, err.message)
	}
	return fmt.Sprintf("%s: %s", err.kind.String(), err.message)
}

// Kind returns the category of the error.
func (err *Error) Kind() Kind {
	return err.kind
}

// Decorate adds new information to the error and returns the current
// decoration trail. An empty string only queries the trail.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, or an empty string.
func (err *Error) FileName() string { return err.filename }

// Format returns the trajectory format associated to the error, if any.
func (err *Error) Format() string { return err.format }

// Critical returns true unless the error only signals a normal condition,
// such as the end of a trajectory.
func (err *Error) Critical() bool { return err.critical }

// SetFileName associates the error to a file. It returns the error itself
// so it can be chained on a return statement.
func (err *Error) SetFileName(filename string) *Error {
	err.filename = filename
	return err
}

// SetFormat marks the error as coming from the given trajectory format.
func (err *Error) SetFormat(format string) *Error {
	err.format = format
	return err
}

// IsKind reports whether err is a library error of the given Kind.
func IsKind(err error, kind Kind) bool {
	cerr, ok := err.(ChemError)
	return ok && cerr.Kind() == kind
}

// errDecorate asserts that err implements ChemError and decorates it with
// the caller's name before returning it. Calling it on any other error type
// panics, as that is a programming error within the library.
func errDecorate(err error, caller string) error {
	err2 := err.(ChemError)
	err2.Decorate(caller)
	return err2
}

//lastFrameError implements LastFrameError. It is returned by every
//trajectory reader in the library when a read hits the end of the file
//cleanly, so callers can stop iteration with a type test instead of
//comparing messages.
type lastFrameError struct {
	fileName string
	format   string
	deco     []string
}

func (err *lastFrameError) NormalLastFrameTermination() {}

func (err *lastFrameError) Error() string { return "EOF" }

func (err *lastFrameError) Kind() Kind { return ErrFile }

func (err *lastFrameError) FileName() string { return err.fileName }

func (err *lastFrameError) Format() string { return err.format }

func (err *lastFrameError) Critical() bool { return false }

func (err *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// NewLastFrameError returns the error trajectory readers use to signal a
// normal end of trajectory for the file filename, read as format.
func NewLastFrameError(filename, format, caller string) LastFrameError {
	return &lastFrameError{fileName: filename, format: format, deco: []string{caller}}
}
