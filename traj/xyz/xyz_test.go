/*
 * xyz_test.go, part of chemfiles.
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

package xyz

import (
	"path/filepath"
	"testing"

	chemfiles "github.com/ynaimi/chemfiles"
	"github.com/ynaimi/chemfiles/files"
	"gonum.org/v1/gonum/mat"
)

func water() (*chemfiles.Topology, *mat.Dense) {
	top := chemfiles.NewTopology()
	top.Append(chemfiles.NewAtom("O", "O"))
	top.Append(chemfiles.NewAtom("H1", "H"))
	top.Append(chemfiles.NewAtom("H2", "H"))
	coords := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0.7, 0.7, 0,
		-0.7, 0.7, 0,
	})
	return top, coords
}

func roundtrip(Te *testing.T, path string) {
	top, coords := water()
	box := []float64{15, 0, 0, 0, 15, 0, 0, 0, 15}
	W, err := NewWriter(path)
	if err != nil {
		Te.Fatal(err)
	}
	W.SetTopology(top)
	if err := W.WNext(coords); err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(coords, box); err != nil {
		Te.Fatal(err)
	}
	if err := W.Close(); err != nil {
		Te.Fatal(err)
	}

	R, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	got := mat.NewDense(3, 3, nil)
	gotbox := make([]float64, 9)
	if err := R.Next(got, gotbox); err != nil {
		Te.Fatal(err)
	}
	if R.Len() != 3 {
		Te.Errorf("Len() = %d, want 3", R.Len())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got.At(i, j) != coords.At(i, j) {
				Te.Fatalf("coordinate %d,%d: got %g, want %g", i, j, got.At(i, j), coords.At(i, j))
			}
		}
	}
	for _, v := range gotbox {
		if v != 0 {
			Te.Fatalf("frame 0 carries no box, but got %v", gotbox)
		}
	}
	//the topology comes from the first frame; symbols survive the roundtrip
	rtop := R.Topology()
	if rtop == nil || rtop.Len() != 3 {
		Te.Fatal("no topology read from the first frame")
	}
	if rtop.Atom(0).Symbol != "O" || rtop.Atom(1).Symbol != "H" {
		Te.Errorf("wrong symbols read back: %s %s", rtop.Atom(0).Symbol, rtop.Atom(1).Symbol)
	}
	if err := R.Next(got, gotbox); err != nil {
		Te.Fatal(err)
	}
	for i, v := range gotbox {
		if v != box[i] {
			Te.Fatalf("wrong box read back: %v", gotbox)
		}
	}
	err = R.Next(nil)
	if _, ok := err.(chemfiles.LastFrameError); !ok {
		Te.Fatalf("expected a LastFrameError at the end, got %v", err)
	}
}

func TestRoundtrip(Te *testing.T) {
	roundtrip(Te, filepath.Join(Te.TempDir(), "water.xyz"))
}

func TestCompressedRoundtrip(Te *testing.T) {
	//the compression is inferred from the extension, nothing else changes
	roundtrip(Te, filepath.Join(Te.TempDir(), "water.xyz.gz"))
	roundtrip(Te, filepath.Join(Te.TempDir(), "water.xyz.zst"))
}

func TestInMemory(Te *testing.T) {
	_, coords := water()
	buf := files.NewMemoryWriter(0)
	W := NewWriterFile(buf, "<memory>")
	if err := W.WNext(coords); err != nil {
		Te.Fatal(err)
	}
	if err := W.Close(); err != nil {
		Te.Fatal(err)
	}
	R := NewReader(files.NewMemoryReader(buf.Bytes()), "<memory>")
	got := mat.NewDense(3, 3, nil)
	if err := R.Next(got); err != nil {
		Te.Fatal(err)
	}
	if got.At(1, 0) != coords.At(1, 0) {
		Te.Errorf("wrong coordinates from the memory buffer: %v", got.RawMatrix().Data)
	}
	err := R.Next(nil)
	if _, ok := err.(chemfiles.LastFrameError); !ok {
		Te.Fatalf("expected a LastFrameError at the end, got %v", err)
	}
	//without a topology the writer falls back to the X placeholder symbol
	buf2 := files.NewMemoryWriter(0)
	W2 := NewWriterFile(buf2, "<memory>")
	if err := W2.WNext(coords); err != nil {
		Te.Fatal(err)
	}
	W2.Close()
	R2 := NewReader(files.NewMemoryReader(buf2.Bytes()), "<memory>")
	if err := R2.Next(nil); err != nil {
		Te.Fatal(err)
	}
	if R2.Topology().Atom(0).Name != "X" {
		Te.Errorf("expected the X placeholder, got %q", R2.Topology().Atom(0).Name)
	}
}

func TestMismatchedFrames(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "bad.xyz")
	_, coords := water()
	W, err := NewWriter(path)
	if err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(coords); err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(mat.NewDense(2, 3, nil)); err == nil {
		Te.Error("a 2-atom frame in a 3-atom trajectory should fail")
	}
	if err := W.WNext(mat.NewDense(3, 4, nil)); err == nil {
		Te.Error("a matrix without 3 columns should fail")
	}
	if err := W.WNext(nil); err == nil {
		Te.Error("nil coordinates should fail")
	}
	W.Close()
}
