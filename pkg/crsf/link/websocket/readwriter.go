// Package websocket carries chunks as websocket binary messages.
package websocket

import (
	"golang.org/x/net/websocket"
)

// ReadWriter implements link.ChunkReadWriter, each binary message is a
// chunk.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// Dial connects to a websocket server.
func Dial(url, origin string) (*ReadWriter, error) {
	conn, err := websocket.Dial(url, "", origin)
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}

// ReadChunk implements link.ChunkReader.
func (p *ReadWriter) ReadChunk() (chunk []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &chunk)
	return
}

// WriteChunk implements link.ChunkWriter.
func (p *ReadWriter) WriteChunk(chunk []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), chunk)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}
