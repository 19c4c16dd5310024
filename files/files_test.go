/*
 * files_test.go, part of chemfiles.
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

package files

import (
	"io"
	"path/filepath"
	"testing"

	chemfiles "github.com/ynaimi/chemfiles"
)

func TestGuessCompression(Te *testing.T) {
	cases := []struct {
		path string
		want Compression
	}{
		{"traj.xyz", None},
		{"traj.xyz.gz", Gzip},
		{"traj.xyz.bz2", Bzip2},
		{"traj.xyz.xz", Xz},
		{"traj.xyz.zst", Zstd},
		{"traj.xyz.zstd", Zstd},
		{"gz", None}, //the extension, not a substring, decides
	}
	for _, c := range cases {
		if got := GuessCompression(c.path); got != c.want {
			Te.Errorf("GuessCompression(%q) = %s, want %s", c.path, got, c.want)
		}
	}
}

func TestPlainRoundtrip(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "plain.txt")
	w, err := OpenPlain(path, Write)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := w.Write([]byte("hello world")); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	r, err := OpenPlain(path, Read)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	if err := r.Seek(6); err != nil {
		Te.Fatal(err)
	}
	buf := make([]byte, 5)
	if _, err := io.ReadFull(r, buf); err != nil {
		Te.Fatal(err)
	}
	if string(buf) != "world" {
		Te.Errorf("read %q after Seek(6), want \"world\"", buf)
	}
	if err := r.Clear(); err != nil {
		Te.Fatal(err)
	}
	all, err := io.ReadAll(r)
	if err != nil {
		Te.Fatal(err)
	}
	if string(all) != "hello world" {
		Te.Errorf("read %q after Clear, want the whole file", all)
	}
	//a read-mode file rejects writes with a file error
	if _, err := r.Write([]byte("no")); err == nil || !chemfiles.IsKind(err, chemfiles.ErrFile) {
		Te.Errorf("writing a read-mode file should fail with a file error, got %v", err)
	}
}

func TestPlainOpenMissing(Te *testing.T) {
	_, err := OpenPlain(filepath.Join(Te.TempDir(), "nope.txt"), Read)
	if err == nil || !chemfiles.IsKind(err, chemfiles.ErrFile) {
		Te.Errorf("opening a missing file should fail with a file error, got %v", err)
	}
}

func TestMemoryFile(Te *testing.T) {
	r := NewMemoryReader([]byte("abcdef"))
	buf := make([]byte, 3)
	if _, err := io.ReadFull(r, buf); err != nil || string(buf) != "abc" {
		Te.Fatalf("read %q, %v", buf, err)
	}
	if err := r.Seek(1); err != nil {
		Te.Fatal(err)
	}
	if _, err := io.ReadFull(r, buf); err != nil || string(buf) != "bcd" {
		Te.Errorf("read %q after Seek(1), want \"bcd\"", buf)
	}
	if err := r.Seek(99); err == nil {
		Te.Error("seeking past the buffer should fail")
	}
	r.Seek(6)
	if _, err := r.Read(buf); err != io.EOF {
		Te.Errorf("reading at the end of the buffer should return io.EOF, got %v", err)
	}
	if _, err := r.Write([]byte("no")); err == nil {
		Te.Error("writing a memory reader should fail")
	}
}

func TestMemoryWriterLimit(Te *testing.T) {
	w := NewMemoryWriter(8)
	if _, err := w.Write([]byte("12345")); err != nil {
		Te.Fatal(err)
	}
	//this write would exceed the limit: it must fail and write nothing
	_, err := w.Write([]byte("6789"))
	if err == nil || !chemfiles.IsKind(err, chemfiles.ErrMemory) {
		Te.Fatalf("expected a memory error, got %v", err)
	}
	if string(w.Bytes()) != "12345" {
		Te.Errorf("a failed write changed the buffer to %q", w.Bytes())
	}
	if _, err := w.Write([]byte("678")); err != nil {
		Te.Errorf("a write within the limit should still work, got %v", err)
	}
	if err := w.Clear(); err != nil {
		Te.Fatal(err)
	}
	if w.Len() != 0 {
		Te.Error("Clear on a writer should discard the content")
	}
}

func TestCompressedRoundtrip(Te *testing.T) {
	content := "the quick brown fox jumps over the lazy dog\n"
	for _, comp := range []Compression{Gzip, Bzip2, Xz, Zstd} {
		path := filepath.Join(Te.TempDir(), "data.txt."+comp.String())
		w, err := OpenCompressed(path, Write, comp)
		if err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		if err := w.Seek(0); err == nil {
			Te.Errorf("%s: a compressed file opened for writing should not be seekable", comp)
		}
		if err := w.Close(); err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		r, err := OpenCompressed(path, Read, comp)
		if err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		all, err := io.ReadAll(r)
		if err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		if string(all) != content {
			Te.Errorf("%s: read %q", comp, all)
		}
		//Seek works in the decoded domain, whatever the compressed bytes are
		if err := r.Seek(4); err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		buf := make([]byte, 5)
		if _, err := io.ReadFull(r, buf); err != nil || string(buf) != "quick" {
			Te.Errorf("%s: read %q after Seek(4), want \"quick\"", comp, buf)
		}
		if err := r.Clear(); err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		all, err = io.ReadAll(r)
		if err != nil || string(all) != content {
			Te.Errorf("%s: Clear did not rewind the decoded stream", comp)
		}
		if err := r.Close(); err != nil {
			Te.Fatal(err)
		}
	}
}

func TestCompressedAppend(Te *testing.T) {
	//gzip and zstd both concatenate members transparently on decode
	for _, comp := range []Compression{Gzip, Zstd} {
		path := filepath.Join(Te.TempDir(), "log.txt."+comp.String())
		w, err := OpenCompressed(path, Write, comp)
		if err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		w.Write([]byte("hello\n"))
		if err := w.Close(); err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		a, err := OpenCompressed(path, Append, comp)
		if err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		if a.PreviousSize() != 6 {
			Te.Errorf("%s: PreviousSize() = %d, want the decoded length 6", comp, a.PreviousSize())
		}
		a.Write([]byte("world\n"))
		if err := a.Close(); err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		r, err := OpenCompressed(path, Read, comp)
		if err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		all, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			Te.Fatalf("%s: %v", comp, err)
		}
		if string(all) != "hello\nworld\n" {
			Te.Errorf("%s: read %q after an append", comp, all)
		}
	}
}

func TestCompressedAppendToMissing(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "new.txt.gz")
	a, err := OpenCompressed(path, Append, Gzip)
	if err != nil {
		Te.Fatal(err)
	}
	if a.PreviousSize() != 0 {
		Te.Errorf("PreviousSize() = %d on a fresh file", a.PreviousSize())
	}
	a.Write([]byte("first\n"))
	if err := a.Close(); err != nil {
		Te.Fatal(err)
	}
	r, err := Open(path, Read, GuessCompression(path))
	if err != nil {
		Te.Fatal(err)
	}
	all, _ := io.ReadAll(r)
	r.Close()
	if string(all) != "first\n" {
		Te.Errorf("read %q", all)
	}
}
