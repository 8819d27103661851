package field

import "github.com/gowire/pbwire/wire"

// consumeVarintChecked wraps wire.ConsumeVarint, translating its n<=0
// convention into the (value, n, error) shape every field decode path
// shares.
func consumeVarintChecked(data []byte) (uint64, int, error) {
	v, n := wire.ConsumeVarint(data)
	switch {
	case n > 0:
		return v, n, nil
	case n == 0:
		return 0, 0, wire.ErrTruncated
	default:
		return 0, n, wire.ErrVarintOverflow
	}
}

func fixed32Err(n int) error {
	if n == 4 {
		return nil
	}
	return wire.ErrTruncated
}

func fixed64Err(n int) error {
	if n == 8 {
		return nil
	}
	return wire.ErrTruncated
}

// SkipMismatchedValue is used by a field's Decode when the tag's wire
// type doesn't match what the field's Kind expects. Rather than failing
// the whole parse, the value is skipped exactly as an unknown field
// would be.
func SkipMismatchedValue(wireType wire.Type, data []byte) (int, error) {
	return wire.SkipValue(wireType, data)
}
