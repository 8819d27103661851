package wire

// SkipValue advances past a single value of the given wire type at the
// front of b, without interpreting it. It is used both for unknown
// fields during decode and for fields whose wire type on the wire
// doesn't match what the schema declared; pbwire treats the latter the
// same as an unknown field rather than a hard parse error, since no
// schema-evolution tracking beyond the wire rules themselves is in
// scope.
//
// Group wire types (3, 4) are never accepted: SkipValue returns
// ErrWireType for them, and callers must propagate that as a parse
// failure rather than silently skipping.
func SkipValue(wireType Type, b []byte) (n int, err error) {
	switch wireType {
	case Varint:
		n = SkipVarint(b)
	case Fixed32:
		if len(b) < 4 {
			return 0, ErrTruncated
		}
		return 4, nil
	case Fixed64:
		if len(b) < 8 {
			return 0, ErrTruncated
		}
		return 8, nil
	case Bytes:
		_, n = ConsumeBytes(b)
	default:
		return 0, ErrWireType
	}
	if n == 0 || n == -2 {
		// -2 is ConsumeBytes's "declared length runs past the end of b".
		return 0, ErrTruncated
	}
	if n < 0 {
		return 0, ErrVarintOverflow
	}
	return n, nil
}
