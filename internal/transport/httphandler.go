package transport

import (
	"errors"
	"log"
	"net"
	"tinyhttpd/internal/http/stream"
	"tinyhttpd/internal/random"
	"tinyhttpd/session"
)

const sessionIDLength = 8

type httpHandler struct {
	store      session.FileStore
	randomizer random.Random
	bufferSize int
}

func newHTTPHandler(store session.FileStore, randomizer random.Random, bufferSize int) *httpHandler {
	return &httpHandler{
		store:      store,
		randomizer: randomizer,
		bufferSize: bufferSize,
	}
}

func (hh *httpHandler) handler(conn net.Conn) {
	defer hh.closeConnection(conn)

	id := hh.sessionID()
	log.Printf("[%s] connection from %s", id, conn.RemoteAddr())

	reader := stream.NewReader(conn, hh.bufferSize)
	writer := stream.NewWriter(conn)
	session.New(id, reader, writer, hh.store).Run()
}

func (hh *httpHandler) sessionID() string {
	id, err := hh.randomizer.String(sessionIDLength)
	if err != nil {
		log.Printf("Failed to generate session id: %v", err)
		return "-"
	}
	return id
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Error closing connection: %v", err)
	}
}
