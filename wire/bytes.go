package wire

// AppendBytes appends a length-delimited byte run: a varint length prefix
// followed by the bytes themselves.
func AppendBytes(buf []byte, data []byte) []byte {
	buf = AppendVarint(buf, uint64(len(data)))
	return append(buf, data...)
}

// SizeBytes returns the size of the length-delimited encoding of data,
// including its length prefix.
func SizeBytes(data []byte) int {
	return SizeVarint(uint64(len(data))) + len(data)
}

// ConsumeBytes reads a length-delimited byte run from the front of b and
// returns a slice aliasing b's backing array (no copy). n is the total
// number of bytes consumed, including the length prefix; it is 0 if the
// length varint is truncated, -1 if the length varint is malformed, and
// -2 if the declared length runs past the end of b.
func ConsumeBytes(b []byte) (data []byte, n int) {
	length, ln := ConsumeVarint(b)
	if ln <= 0 {
		return nil, ln
	}
	if length > uint64(len(b)-ln) {
		return nil, -2
	}
	end := ln + int(length)
	return b[ln:end], end
}
