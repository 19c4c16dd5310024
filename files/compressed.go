/*
 * compressed.go, part of chemfiles.
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
	"bufio"
	"compress/bzip2"
	"io"
	"os"

	dbzip2 "github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	chemfiles "github.com/ynaimi/chemfiles"
)

// CompressedFile is the streaming-compression backend: plain text over
// compressed bytes. The codec holds internal state, so compressed byte
// offsets are meaningless to callers; Seek and Clear reinitialize the codec
// and, for a seek, re-decode from the start up to the target position.
type CompressedFile struct {
	path string
	mode Mode
	comp Compression
	f    *os.File
	br   *bufio.Reader
	bw   *bufio.Writer
	dec  io.ReadCloser
	enc  io.WriteCloser
	//decoded length of the pre-existing stream, filled in append mode
	prevSize int64
}

//This will cause additional indirections but I suppose it won't matter,
//as each call will take enough time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

// newDecoder returns a decoding codec for comp over r.
func newDecoder(comp Compression, r io.Reader) (io.ReadCloser, error) {
	switch comp {
	case Gzip:
		return gzip.NewReader(r)
	case Bzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	case Xz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(xr), nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdql{zr.Close, zr}, nil
	}
	return io.NopCloser(r), nil
}

// newEncoder returns an encoding codec for comp over w. Closing the returned
// codec finishes the stream, draining everything it buffered.
func newEncoder(comp Compression, w io.Writer) (io.WriteCloser, error) {
	switch comp {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Bzip2:
		return dbzip2.NewWriter(w, &dbzip2.WriterConfig{Level: dbzip2.BestCompression})
	case Xz:
		return xz.NewWriter(w)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nil, chemfiles.Errorf(chemfiles.ErrFile, "no encoder for compression kind %s", comp)
}

// OpenCompressed opens path as a compressed File using the comp codec. In
// append mode the existing stream is first decoded to its end, so the
// decoded length of the previous content is known, and writing then starts
// a fresh compressed member after it.
func OpenCompressed(path string, mode Mode, comp Compression) (*CompressedFile, error) {
	C := &CompressedFile{path: path, mode: mode, comp: comp}
	switch mode {
	case Read:
		var err error
		C.f, err = os.Open(path)
		if err != nil {
			return nil, fileErr("open", path, err)
		}
		C.br = bufio.NewReader(C.f)
		C.dec, err = newDecoder(comp, C.br)
		if err != nil {
			C.f.Close() //the handle must not leak when construction fails halfway
			return nil, fileErr("open", path, err)
		}
	case Write:
		var err error
		C.f, err = os.Create(path)
		if err != nil {
			return nil, fileErr("open", path, err)
		}
		C.bw = bufio.NewWriter(C.f)
		C.enc, err = newEncoder(comp, C.bw)
		if err != nil {
			C.f.Close()
			return nil, fileErr("open", path, err)
		}
	case Append:
		if prev, err := OpenCompressed(path, Read, comp); err == nil {
			n, err := io.Copy(io.Discard, prev)
			prev.Close()
			if err != nil {
				return nil, errDecorateFile(err, "OpenCompressed")
			}
			C.prevSize = n
		} //the file might legitimately not exist yet
		var err error
		C.f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fileErr("open", path, err)
		}
		C.bw = bufio.NewWriter(C.f)
		C.enc, err = newEncoder(comp, C.bw)
		if err != nil {
			C.f.Close()
			return nil, fileErr("open", path, err)
		}
	}
	return C, nil
}

// Read decodes up to len(p) bytes, re-filling the compressed buffer and
// re-invoking the codec as needed until the request is satisfied or the
// stream ends.
func (C *CompressedFile) Read(p []byte) (int, error) {
	if C.dec == nil {
		return 0, chemfiles.NewFileError(C.path, "read: file opened in %s mode", C.mode)
	}
	total := 0
	for total < len(p) {
		n, err := C.dec.Read(p[total:])
		total += n
		if err == io.EOF {
			if total > 0 {
				return total, nil
			}
			return 0, io.EOF
		}
		if err != nil {
			return total, fileErr("read", C.path, err)
		}
	}
	return total, nil
}

func (C *CompressedFile) Write(p []byte) (int, error) {
	if C.enc == nil {
		return 0, chemfiles.NewFileError(C.path, "write: file opened in read mode")
	}
	n, err := C.enc.Write(p)
	if err != nil {
		return n, fileErr("write", C.path, err)
	}
	return n, nil
}

// Seek moves to the absolute position pos in the decoded domain. The codec
// is reinitialized and the stream re-decoded from the start up to pos.
func (C *CompressedFile) Seek(pos int64) error {
	if C.mode != Read {
		return chemfiles.NewFileError(C.path,
			"seek: a compressed file opened for writing is not seekable")
	}
	if err := C.reset(); err != nil {
		return err
	}
	if pos == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, C.dec, pos); err != nil {
		return fileErr("seek", C.path, err)
	}
	return nil
}

// Clear resets the stream to its beginning, dropping all codec state.
func (C *CompressedFile) Clear() error {
	if C.mode != Read {
		return chemfiles.NewFileError(C.path,
			"clear: a compressed file opened for writing can not be rewound")
	}
	return C.reset()
}

// reset throws away the current decoder and starts a fresh one at the
// beginning of the file.
func (C *CompressedFile) reset() error {
	C.dec.Close()
	if _, err := C.f.Seek(0, io.SeekStart); err != nil {
		return fileErr("seek", C.path, err)
	}
	C.br.Reset(C.f)
	dec, err := newDecoder(C.comp, C.br)
	if err != nil {
		return fileErr("seek", C.path, err)
	}
	C.dec = dec
	return nil
}

// Close finishes the codec (in write/append mode, forcing it to drain every
// buffered byte into the file) and releases the handle. The handle is closed
// even if the finish step fails.
func (C *CompressedFile) Close() error {
	if C.mode == Read {
		C.dec.Close()
		if err := C.f.Close(); err != nil {
			return fileErr("close", C.path, err)
		}
		return nil
	}
	ferr := C.enc.Close() //finish: loops internally until the codec reports completion
	if err := C.bw.Flush(); err != nil && ferr == nil {
		ferr = err
	}
	if err := C.f.Close(); err != nil && ferr == nil {
		ferr = err
	}
	if ferr != nil {
		return fileErr("close", C.path, ferr)
	}
	return nil
}

// PreviousSize returns the decoded length of the stream that was already in
// the file when it was opened in append mode.
func (C *CompressedFile) PreviousSize() int64 {
	return C.prevSize
}

// errDecorateFile decorates err if it is a ChemError, and otherwise wraps it
// into a file error for path-less failures bubbling up from os or a codec.
func errDecorateFile(err error, caller string) error {
	if cerr, ok := err.(chemfiles.ChemError); ok {
		cerr.Decorate(caller)
		return cerr
	}
	return chemfiles.Errorf(chemfiles.ErrFile, "%s: %s", caller, err.Error())
}
