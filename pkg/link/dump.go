// Package link carries the stored run from the appliance to a host over a
// serial line.
//
// The host sends the dump command on its own line. The appliance answers
// with one line per slot, "SS,RRRRRRRRRRR", holding the two digit slot index
// and the raw record, followed by a line reading "end".
package link

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itohio/senselog/pkg/record"
)

const (
	// DumpCommand asks the appliance to send its stored run.
	DumpCommand = "d"
	// EndMarker terminates a dump.
	EndMarker = "end"
)

// Entry is one stored slot as sent over the link.
type Entry struct {
	Slot   int
	Record record.Record
}

// WriteDump sends every slot of store followed by the end marker.
// Slots that cannot be read are sent as they are; unreadable storage stops
// the dump with an error.
func WriteDump(w io.Writer, store *record.Store) error {
	for slot := 0; slot < store.Capacity(); slot++ {
		rec, err := store.Read(slot)
		if err != nil {
			return fmt.Errorf("dump slot %d: %w", slot, err)
		}
		if _, err := fmt.Fprintf(w, "%02d,%s\n", slot, rec[:]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, EndMarker+"\n")
	return err
}

// ReadDump reads dump lines up to the end marker.
func ReadDump(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == EndMarker {
			return entries, nil
		}

		e, err := parseLine(line)
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("read dump: %w", err)
	}
	return entries, fmt.Errorf("%w: missing %q after %d lines", ErrProtocol, EndMarker, len(entries))
}

// Restore writes entries into store at their slots.
func Restore(store *record.Store, entries []Entry) error {
	for _, e := range entries {
		if err := store.Write(e.Slot, e.Record); err != nil {
			return err
		}
	}
	return nil
}

// parseLine parses one dump line.
// Format: slot,record
// Example: 07,00320531010
func parseLine(line string) (Entry, error) {
	slotStr, recStr, ok := strings.Cut(line, ",")
	if !ok {
		return Entry{}, fmt.Errorf("%w: no separator in %q", ErrProtocol, line)
	}

	slot, err := strconv.Atoi(slotStr)
	if err != nil || slot < 0 {
		return Entry{}, fmt.Errorf("%w: invalid slot %q", ErrProtocol, slotStr)
	}

	if len(recStr) != record.Size {
		return Entry{}, fmt.Errorf("%w: record %q is %d bytes, expected %d", ErrProtocol, recStr, len(recStr), record.Size)
	}

	var rec record.Record
	copy(rec[:], recStr)
	return Entry{Slot: slot, Record: rec}, nil
}
