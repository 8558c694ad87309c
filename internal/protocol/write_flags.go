package protocol

// WriteFlags are hints passed along with a write to the transport.
type WriteFlags uint8

const (
	// WriteFlagNone is the default.
	WriteFlagNone WriteFlags = 0
	// WriteFlagCork indicates that more data follows shortly.
	WriteFlagCork WriteFlags = 1
	// WriteFlagEOR marks the end of a record.
	WriteFlagEOR WriteFlags = 2
)

func (f WriteFlags) String() string {
	switch f {
	case WriteFlagNone:
		return "none"
	case WriteFlagCork:
		return "cork"
	case WriteFlagEOR:
		return "eor"
	case WriteFlagCork | WriteFlagEOR:
		return "cork|eor"
	default:
		return "invalid write flags"
	}
}

// Has reports whether all bits of flag are set.
func (f WriteFlags) Has(flag WriteFlags) bool { return f&flag == flag }
