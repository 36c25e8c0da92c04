package transport

import (
	"errors"
	"log"
	"net"
	"tinyhttpd/internal/config"
	"tinyhttpd/internal/random"
	"tinyhttpd/session"

	"golang.org/x/sync/errgroup"
)

type httpServer struct {
	handler    *httpHandler
	address    string
	maxWorkers int
}

func NewHTTPServer(conf config.Config, store session.FileStore, randomizer random.Random) Transport {
	return &httpServer{
		handler:    newHTTPHandler(store, randomizer, conf.BufferSize()),
		address:    conf.Address(),
		maxWorkers: conf.MaxWorkers(),
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ht.address)
}

// Serve runs one worker per accepted connection. With a single worker the
// loop joins each one before accepting the next, so requests never overlap.
func (ht *httpServer) Serve(listener net.Listener) error {
	log.Printf("HTTP server is listening on %s", listener.Addr())

	var workers errgroup.Group
	workers.SetLimit(ht.maxWorkers)
	defer func() {
		_ = workers.Wait()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Printf("Unable to connect: %v", err)
			continue
		}

		workers.Go(func() error {
			ht.handler.handler(conn)
			return nil
		})
		if ht.sequential() {
			_ = workers.Wait()
		}
	}
}

func (ht *httpServer) sequential() bool {
	return ht.maxWorkers <= 1
}
