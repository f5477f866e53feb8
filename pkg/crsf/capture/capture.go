// Package capture records inbound chunks so a session can be replayed with
// the original fragmentation.
//
// Each chunk is prefixed by its length as 4 bytes little-endian.
package capture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxChunkSize bounds a recorded chunk.
const MaxChunkSize = 1 << 20

// ErrChunkTooLarge indicates a corrupted capture.
var ErrChunkTooLarge = errors.New("chunk too large")

// Writer records chunks.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteChunk implements link.ChunkWriter.
func (w *Writer) WriteChunk(chunk []byte) error {
	size := uint32(len(chunk))
	if err := binary.Write(w.w, binary.LittleEndian, size); err != nil {
		return err
	}
	_, err := w.w.Write(chunk)
	return err
}

// Reader replays chunks.
type Reader struct {
	r io.Reader
}

// NewReader creates a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadChunk implements link.ChunkReader. It returns io.EOF at the end of
// the capture and io.ErrUnexpectedEOF for a truncated chunk.
func (r *Reader) ReadChunk() ([]byte, error) {
	var size uint32
	if err := binary.Read(r.r, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxChunkSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrChunkTooLarge, size)
	}
	chunk := make([]byte, size)
	if _, err := io.ReadFull(r.r, chunk); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return chunk, nil
}
