package record

import (
	"fmt"
	"io"

	"github.com/itohio/senselog/pkg/hal"
)

// Slots is the number of records a capture session writes.
const Slots = 90

// Store addresses a block of Slots records at a fixed base offset.
// Slot i occupies bytes [base+i*Size, base+i*Size+Size). There is no header,
// version or checksum.
type Store struct {
	mem   hal.Storage
	base  int64
	slots int
}

// NewStore creates a store of slots records starting at base.
func NewStore(mem hal.Storage, base int64, slots int) *Store {
	if slots <= 0 {
		slots = Slots
	}
	return &Store{
		mem:   mem,
		base:  base,
		slots: slots,
	}
}

// Capacity returns the number of slots.
func (s *Store) Capacity() int {
	return s.slots
}

// Offset returns the storage offset of slot.
func (s *Store) Offset(slot int) int64 {
	return s.base + int64(slot)*Size
}

// Clamp limits slot to a valid index.
func (s *Store) Clamp(slot int) int {
	return max(0, min(slot, s.slots-1))
}

// Write stores r in slot.
func (s *Store) Write(slot int, r Record) error {
	if slot < 0 || slot >= s.slots {
		return fmt.Errorf("write slot %d: %w", slot, ErrSlotRange)
	}
	if _, err := s.mem.WriteAt(r[:], s.Offset(slot)); err != nil {
		return fmt.Errorf("write slot %d: %w", slot, err)
	}
	return nil
}

// Read loads the record in slot. The bytes are returned as stored; use
// Decode or ReplayValue to interpret them.
func (s *Store) Read(slot int) (Record, error) {
	var r Record
	if slot < 0 || slot >= s.slots {
		return r, fmt.Errorf("read slot %d: %w", slot, ErrSlotRange)
	}
	n, err := s.mem.ReadAt(r[:], s.Offset(slot))
	if err != nil && !(err == io.EOF && n == Size) {
		return r, fmt.Errorf("read slot %d: %w", slot, err)
	}
	if n != Size {
		return r, fmt.Errorf("read slot %d: %d bytes: %w", slot, n, ErrShortRead)
	}
	return r, nil
}

// Image returns the raw bytes of every slot.
func (s *Store) Image() ([]byte, error) {
	buf := make([]byte, s.slots*Size)
	n, err := s.mem.ReadAt(buf, s.base)
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if n != len(buf) {
		return nil, fmt.Errorf("read image: %d bytes: %w", n, ErrShortRead)
	}
	return buf, nil
}
