// Package temporenc implements Temporenc v1, a compact binary format for
// temporal data.
//
// Temporenc (https://temporenc.org/) encodes dates, times and combinations
// thereof into fixed-size byte sequences of 3 to 10 bytes. Every field is
// optional: a year, day or minute can individually be "unspecified", which
// the format represents with a reserved bit pattern rather than a flag.
// This package is (intentionally) not a time library; it handles only the
// Temporenc format and converts losslessly between its six encodings and
// six Go value types.
//
// # Types
//
// Each of the six Temporenc types maps to one value type:
//   - [Date]: year, month, day (3 bytes)
//   - [Time]: hour, minute, second (3 bytes)
//   - [DateTime]: date + time (5 bytes)
//   - [DateTimeOffset]: date + time + UTC offset (6 bytes)
//   - [DateTimeSubsecond]: date + time + sub-second (6-9 bytes)
//   - [DateTimeSubsecondOffset]: all components (7-10 bytes)
//
// Values are immutable and constructed either by the New* constructors,
// which validate every field, or by the decoders, which validate every
// encoded field before the value is assembled. Pass [Unspecified] to a
// constructor to leave a field absent; accessors return it for absent
// fields.
//
// # Basic Usage
//
// To encode a date:
//
//	d, err := temporenc.NewDate(2016, 11, 4)
//	if err != nil {
//		// a field was out of range
//	}
//	b, _ := d.MarshalBinary() // 3 bytes
//
// To decode whatever type a byte sequence holds:
//
//	v, err := temporenc.Decode(b)
//	if d, ok := v.(temporenc.DateValue); ok {
//		fmt.Println(d.Year(), d.Month(), d.Day())
//	}
//
// [Encoder] and [Decoder] read and write streams of values, and
// [EncodeBlock] and [DecodeBlock] handle the block container, a framed
// and optionally compressed batch of values.
//
// # Security Considerations
//
// The block container includes built-in protection against oversized
// allocations and decompression bombs via configurable [Limits]. All size
// limits are enforced during decoding to prevent resource exhaustion
// attacks. The value codec itself never allocates based on input data.
package temporenc
