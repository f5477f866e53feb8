package link

import (
	"io"
)

// DefaultReadSize is the read buffer size of a Stream.
const DefaultReadSize = 256

// Stream implements ChunkReadWriter over a byte stream, a chunk is what a
// single Read returns.
type Stream struct {
	io.ReadWriter
	ReadSize int
}

// NewStream wraps io.ReadWriter.
func NewStream(rw io.ReadWriter) *Stream {
	return &Stream{ReadWriter: rw, ReadSize: DefaultReadSize}
}

// ReadChunk implements ChunkReader.
func (s *Stream) ReadChunk() ([]byte, error) {
	size := s.ReadSize
	if size <= 0 {
		size = DefaultReadSize
	}
	buf := make([]byte, size)
	for {
		n, err := s.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteChunk implements ChunkWriter.
func (s *Stream) WriteChunk(chunk []byte) error {
	_, err := s.Write(chunk)
	return err
}
