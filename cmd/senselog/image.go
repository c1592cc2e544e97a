package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/itohio/senselog/pkg/hal"
	"github.com/itohio/senselog/pkg/record"
)

// openImage opens the EEPROM image at path for reading and writing. A new or
// short image is padded to size with erased bytes.
func openImage(path string, size int) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat image %s: %w", path, err)
	}
	if pad := int64(size) - info.Size(); pad > 0 {
		if _, err := f.WriteAt(bytes.Repeat([]byte{0xFF}, int(pad)), info.Size()); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to erase image %s: %w", path, err)
		}
	}
	return f, nil
}

// imageStore lays the stored run over mem as configured.
func imageStore(mem hal.Storage) *record.Store {
	return record.NewStore(mem, cfg.Capture.BaseOffset, cfg.Capture.Slots)
}
