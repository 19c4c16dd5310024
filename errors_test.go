/*
 * errors_test.go, part of chemfiles.
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

import "testing"

func TestErrorKinds(Te *testing.T) {
	err := NewFileError("traj.xyz", "read failed after %d bytes", 12)
	if !IsKind(err, ErrFile) {
		Te.Error("NewFileError should build a file-category error")
	}
	if IsKind(err, ErrFormat) {
		Te.Error("a file error is not a format error")
	}
	if err.FileName() != "traj.xyz" {
		Te.Errorf("wrong filename: %s", err.FileName())
	}
	want := "file error (traj.xyz): read failed after 12 bytes"
	if err.Error() != want {
		Te.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestDecorationTrail(Te *testing.T) {
	err := New(ErrGeneric, "boom")
	err.Decorate("inner")
	err.Decorate("outer")
	deco := err.Decorate("")
	if len(deco) != 2 || deco[0] != "inner" || deco[1] != "outer" {
		Te.Errorf("wrong decoration trail: %v", deco)
	}
}

func TestLastFrameErrorIsNotCritical(Te *testing.T) {
	err := NewLastFrameError("t.trj", "TRJ", "Next")
	if err.Critical() {
		Te.Error("the last-frame condition is not a critical error")
	}
	if _, ok := interface{}(err).(LastFrameError); !ok {
		Te.Error("NewLastFrameError must satisfy LastFrameError")
	}
	if err.Format() != "TRJ" || err.FileName() != "t.trj" {
		Te.Error("last-frame errors should keep the file and format")
	}
}
