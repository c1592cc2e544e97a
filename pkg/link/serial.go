//go:build !tinygo

package link

import (
	"context"
	"fmt"
	"sync"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// DefaultBaudRate is the UART speed of the appliance.
const DefaultBaudRate = 115200

// Port represents a serial port.
type Port struct {
	Name        string
	Description string
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(names))
	for _, name := range names {
		result = append(result, Port{Name: name, Description: name})
	}
	return result, nil
}

// Serial is the host end of the dump link.
type Serial struct {
	port     string
	baudRate int
	log      *zap.Logger

	mu   sync.Mutex
	conn serial.Port
}

// New creates a link on port. A zero baud rate selects DefaultBaudRate and a
// nil logger disables logging.
func New(port string, baudRate int, log *zap.Logger) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Serial{
		port:     port,
		baudRate: baudRate,
		log:      log,
	}
}

// Connect opens the serial port.
func (s *Serial) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return fmt.Errorf("already connected")
	}

	conn, err := serial.Open(s.port, &serial.Mode{BaudRate: s.baudRate})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", s.port, err)
	}
	s.conn = conn
	s.log.Info("[link] connected", zap.String("port", s.port), zap.Int("baudRate", s.baudRate))
	return nil
}

// Close closes the serial port.
func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *Serial) closeLocked() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.log.Info("[link] closed", zap.String("port", s.port))
	return err
}

// Dump requests the stored run and reads it back. Cancelling ctx closes the
// port.
func (s *Serial) Dump(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, ErrNotConnected
	}
	if err := s.conn.ResetInputBuffer(); err != nil {
		s.log.Warn("[link] failed to flush input", zap.Error(err), zap.String("port", s.port))
	}
	if _, err := s.conn.Write([]byte(DumpCommand + "\n")); err != nil {
		return nil, fmt.Errorf("failed to send dump command: %w", err)
	}

	type result struct {
		entries []Entry
		err     error
	}
	done := make(chan result, 1)
	conn := s.conn
	go func() {
		entries, err := ReadDump(conn)
		done <- result{entries, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			s.log.Warn("[link] dump failed", zap.Error(r.err), zap.Int("entries", len(r.entries)))
			return r.entries, r.err
		}
		s.log.Info("[link] dump received", zap.Int("entries", len(r.entries)))
		return r.entries, nil
	case <-ctx.Done():
		// unblocks the reader
		if err := s.closeLocked(); err != nil {
			s.log.Warn("[link] error closing serial port", zap.Error(err))
		}
		<-done
		return nil, ctx.Err()
	}
}
