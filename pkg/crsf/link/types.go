package link

// ChunkReader reads bytes in chunks as they arrive, a chunk has no relation
// to frame boundaries.
type ChunkReader interface {
	ReadChunk() ([]byte, error)
}

// ChunkWriter writes a chunk of bytes.
type ChunkWriter interface {
	WriteChunk([]byte) error
}

// ChunkReadWriter reads/writes chunks.
type ChunkReadWriter interface {
	ChunkReader
	ChunkWriter
}
