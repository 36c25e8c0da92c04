package session

import (
	"errors"
	"log"
	"strings"
	"tinyhttpd/internal/http/header"
	"tinyhttpd/internal/http/stream"
	"tinyhttpd/types"
)

const indexFile = "index.html"

// FileStore is the part of the static store a session reads from.
type FileStore interface {
	Read(name string) (string, error)
}

type Session interface {
	Run()
	Phase() types.SessionPhase
	Headers() []header.Header
	Body() string
}

type session struct {
	id      string
	reader  stream.Reader
	writer  stream.Writer
	store   FileStore
	phase   types.SessionPhase
	headers []header.Header
	body    string
	respond bool
}

func New(id string, reader stream.Reader, writer stream.Writer, store FileStore) Session {
	return &session{
		id:      id,
		reader:  reader,
		writer:  writer,
		store:   store,
		phase:   types.PhaseReadingHeaders,
		headers: make([]header.Header, 0, 8),
	}
}

func (s *session) Phase() types.SessionPhase { return s.phase }
func (s *session) Headers() []header.Header  { return s.headers }
func (s *session) Body() string              { return s.body }

// Run reads one request and answers it. It returns once the session is done,
// whether or not a response was sent.
func (s *session) Run() {
	for s.phase != types.PhaseDone {
		switch s.phase {
		case types.PhaseReadingHeaders:
			s.readHeader()
		case types.PhaseReadingBody:
			s.readBody()
		}
	}

	log.Printf("[%s] headers: %v", s.id, s.headers)

	if s.respond {
		s.dispatch()
	}
}

func (s *session) readHeader() {
	line, err := s.reader.ReadLine()
	if errors.Is(err, stream.ErrLineTooLong) {
		log.Printf("[%s] dropped header line: %v", s.id, err)
		return
	}
	if err != nil {
		log.Printf("[%s] could not read the stream: %v", s.id, err)
		s.phase = types.PhaseDone
		return
	}

	if isBlankLine(line) {
		s.endHeaders()
		return
	}

	if h, ok := header.Parse(line); ok {
		s.headers = append(s.headers, h)
	}
}

func (s *session) endHeaders() {
	rl, ok := s.requestLine()
	if !ok {
		log.Printf("[%s] method not supported", s.id)
		s.phase = types.PhaseDone
		return
	}

	s.respond = true
	switch rl.Method {
	case header.MethodPOST:
		s.phase = types.PhaseReadingBody
	default:
		s.phase = types.PhaseDone
	}
}

func (s *session) readBody() {
	body, err := s.reader.ReadBody()
	if err != nil {
		log.Printf("[%s] could not read the body: %v", s.id, err)
		body = ""
	}
	s.body = body
	s.phase = types.PhaseDone
}

// requestLine reports the first parsed header when it is a request line.
func (s *session) requestLine() (header.RequestLine, bool) {
	if len(s.headers) == 0 {
		return header.RequestLine{}, false
	}
	rl, ok := s.headers[0].(header.RequestLine)
	return rl, ok
}

func (s *session) dispatch() {
	rl, ok := s.requestLine()
	if !ok {
		return
	}

	var (
		status = header.ResponseStatus{Version: rl.Version, Status: header.StatusOK}
		body   string
	)
	switch rl.Method {
	case header.MethodGET:
		name := rl.Path
		if strings.HasSuffix(name, "/") {
			name += indexFile
		}
		contents, err := s.store.Read(name)
		if err != nil {
			log.Printf("[%s] %s: %v", s.id, name, err)
			status.Status = header.StatusNotFound
		} else {
			body = contents
		}
	case header.MethodPOST:
		body = s.body
	default:
		return
	}

	if err := s.writer.WriteResponse(status, body); err != nil {
		log.Printf("[%s] failed sending response: %v", s.id, err)
		return
	}
	log.Printf("[%s] response sent: %s", s.id, status)
}

func isBlankLine(line string) bool {
	return strings.HasPrefix(line, "\r\n") || strings.HasPrefix(line, "\n")
}
