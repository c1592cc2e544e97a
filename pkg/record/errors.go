package record

// Error is a sentinel error of the record package.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrMalformed = Error("malformed record")
	ErrSlotRange = Error("slot index out of range")
	ErrShortRead = Error("short storage read")
)
