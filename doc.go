// Package pbwire is the root of a schema-driven protobuf wire codec.
// The schema is the Go type: a record declares its own field list at
// init time using the field package's generic constructors, and codec
// operates on any record through that declared list, with no .proto
// parsing, no reflection, no message descriptors.
//
// See the subpackages:
//
//	wire    - varint/zigzag/fixed/length-delimited primitives
//	field   - field-kind classification and compile-time field lists
//	codec   - Size/Serialize/MergeInto/ParseNew
//	inspect - schema-less hex-dump inspector
package pbwire
