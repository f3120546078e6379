package space

import (
	"github.com/viant/simspace/internal/stream"
)

// readState is the ReadState of dense vector spaces. owner identifies the
// space instance that opened it.
type readState struct {
	owner any
	path  string
	in    *stream.Reader
	line  int
	dim   int
	phase Phase
}

func (s *readState) Path() string { return s.path }
func (s *readState) Line() int { return s.line }
func (s *readState) Dim() int { return s.dim }
func (s *readState) Phase() Phase { return s.phase }

// Close releases the stream. A state closed before exhausting its stream
// reads as ended.
func (s *readState) Close() error {
	if s.in == nil {
		return nil
	}
	err := s.in.Close()
	s.in = nil
	if !s.phase.Terminal() {
		s.phase = PhaseEndOfStream
	}
	return err
}

func (s *readState) fail() { s.phase = PhaseFailed }

type writeState struct {
	owner   any
	path    string
	out     *stream.Writer
	written int
}

func (s *writeState) Path() string { return s.path }
func (s *writeState) Written() int { return s.written }

func (s *writeState) Close() error {
	if s.out == nil {
		return nil
	}
	err := s.out.Close()
	s.out = nil
	return err
}
