package config

import "fmt"

// recordSize mirrors record.Size; config sits below record in the import graph.
const recordSize = 11

// Validate checks that the stored run fits the storage and the display can
// hold the graph.
func (c *Config) Validate() error {
	if c.Capture.Slots < 1 {
		return fmt.Errorf("capture slots must be positive, got %d", c.Capture.Slots)
	}
	if c.Capture.BaseOffset < 0 {
		return fmt.Errorf("capture base offset must not be negative, got %d", c.Capture.BaseOffset)
	}
	if end := c.Capture.BaseOffset + int64(c.Capture.Slots*recordSize); end > int64(c.Storage.Size) {
		return fmt.Errorf("capture needs %d bytes of storage, only %d available", end, c.Storage.Size)
	}
	if c.Display.Width < 8 || c.Display.Height < 8 {
		return fmt.Errorf("display %dx%d too small", c.Display.Width, c.Display.Height)
	}
	return nil
}
