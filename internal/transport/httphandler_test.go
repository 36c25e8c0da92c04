package transport

import (
	"bytes"
	"errors"
	"log"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRandom struct {
	mock.Mock
}

func (m *MockRandom) String(length int) (string, error) {
	args := m.Called(length)
	return args.String(0), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Read(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

type closeErrConn struct {
	net.Conn
	err error
}

func (c *closeErrConn) Close() error {
	_ = c.Conn.Close()
	return c.err
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
	})
	return &buf
}

func TestHTTPHandler_Handler(t *testing.T) {
	logs := captureLog(t)

	store := new(MockFileStore)
	store.On("Read", "/index.html").Return("hello", nil).Once()
	randomizer := new(MockRandom)
	randomizer.On("String", sessionIDLength).Return("cafe0123", nil).Once()

	hh := newHTTPHandler(store, randomizer, 4096)

	server, client := net.Pipe()
	done := make(chan struct{})
	go func() {
		hh.handler(server)
		close(done)
	}()

	_, err := client.Write([]byte("GET / HTTP/1.1\r\n\r\n"))
	assert.NoError(t, err)

	buf := make([]byte, 64)
	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := client.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\nhello", string(buf[:n]))

	<-done
	assert.Contains(t, logs.String(), "[cafe0123]")
	store.AssertExpectations(t)
	randomizer.AssertExpectations(t)
}

func TestHTTPHandler_SessionIDFailure(t *testing.T) {
	randomizer := new(MockRandom)
	randomizer.On("String", sessionIDLength).Return("", errors.New("no entropy")).Once()

	hh := newHTTPHandler(new(MockFileStore), randomizer, 4096)
	assert.Equal(t, "-", hh.sessionID())
	randomizer.AssertExpectations(t)
}

func TestHTTPHandler_CloseConnection(t *testing.T) {
	tests := []struct {
		name      string
		closeErr  error
		expectLog bool
	}{
		{"clean close", nil, false},
		{"already closed", net.ErrClosed, false},
		{"close failure", errors.New("reset by peer"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLog(t)
			server, client := net.Pipe()
			defer client.Close()

			hh := newHTTPHandler(new(MockFileStore), new(MockRandom), 4096)
			hh.closeConnection(&closeErrConn{Conn: server, err: tt.closeErr})

			if tt.expectLog {
				assert.Contains(t, logs.String(), "Error closing connection")
			} else {
				assert.NotContains(t, logs.String(), "Error closing connection")
			}
		})
	}
}
