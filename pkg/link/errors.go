package link

// Error is a constant link error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrProtocol marks a dump line that does not follow the dump format.
	ErrProtocol = Error("dump protocol violation")
	// ErrNotConnected is returned when the port is not open.
	ErrNotConnected = Error("not connected")
)
