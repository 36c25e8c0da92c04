package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"tinyhttpd/internal/config"
	"tinyhttpd/internal/random"
	"tinyhttpd/internal/static"
	"tinyhttpd/internal/transport"
	"tinyhttpd/internal/version"
)

type Bootstrap struct {
	Config     config.Config
	Store      static.Store
	HTTPServer transport.Transport
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(conf config.Config) (*Bootstrap, error) {
	if conf == nil {
		return nil, errors.New("config is required")
	}

	store := static.New(conf.StaticFolder())
	httpServer := transport.NewHTTPServer(conf, store, random.New())

	return &Bootstrap{
		Config:     conf,
		Store:      store,
		HTTPServer: httpServer,
		ErrChan:    make(chan error, 2),
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

func serveHTTP(httpServer transport.Transport, listener net.Listener, errChan chan<- error) {
	if err := httpServer.Serve(listener); err != nil && !errors.Is(err, net.ErrClosed) {
		errChan <- fmt.Errorf("error when serving http server: %w", err)
	}
}

func startPprof(pprofPort string, errChan chan<- error) {
	pprofAddr := fmt.Sprintf("localhost:%s", pprofPort)
	log.Printf("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := http.ListenAndServe(pprofAddr, nil); err != nil {
		errChan <- fmt.Errorf("pprof server error: %v", err)
	}
}

// Run binds the listener and blocks until a service fails or a shutdown
// signal arrives. A bind failure is returned as is.
func (b *Bootstrap) Run() error {
	listener, err := b.HTTPServer.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	defer func() {
		if err := listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("failed to close listener: %v", err)
		}
	}()

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	log.Printf("%s serving %s", version.GetVersion(), b.Store.Root())
	log.Printf("Configured ADDR=%s PORT=%s, bound to %s", b.Config.Addr(), b.Config.Port(), listener.Addr())

	go serveHTTP(b.HTTPServer, listener, b.ErrChan)

	if b.Config.PprofEnabled() {
		go startPprof(b.Config.PprofPort(), b.ErrChan)
	}

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)
		return nil
	}
}
