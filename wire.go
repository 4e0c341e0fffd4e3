package temporenc

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Type tags. Values are packed MSB first, so the tag occupies the top
// bits of the first byte.
const (
	tagDateTime                = 0b00      // 2 bits
	tagDateTimeSubsecond       = 0b01      // 2 bits
	tagDate                    = 0b100     // 3 bits
	tagDateTimeOffset          = 0b110     // 3 bits
	tagDateTimeSubsecondOffset = 0b111     // 3 bits
	tagTime                    = 0b1010000 // 7 bits
)

// Per-field "no value" bit patterns.
const (
	yearNone   = 4095
	monthNone  = 15
	dayNone    = 31
	hourNone   = 31
	minuteNone = 63
	secondNone = 63
)

// Largest meaningful raw value per field. Raw values between these and
// the none pattern are reserved. Year and day have no reserved gap.
const (
	monthRawMax  = 11
	hourRawMax   = 23
	minuteRawMax = 59
	secondRawMax = 60
)

// UTC offsets travel as quarter-hour counts biased by +64, so raw 0
// means -16:00 and raw 125 means +15:15. Two raw values are special.
const (
	offsetRawBias      = 64
	offsetRawElsewhere = 126
	offsetRawNone      = 127
)

// Encoded sizes. The two sub-second layouts grow by the precision's
// payload bytes.
const (
	dateLen               = 3
	timeLen               = 3
	dateTimeLen           = 5
	dateTimeOffsetLen     = 6
	dateTimeSubBaseLen    = 6
	dateTimeSubOffBaseLen = 7
)

// Sub-second precision tags, 2 bits. The wire order differs from the
// Precision constants, whose zero value is PrecisionNone.
const (
	precTagMilli = 0b00
	precTagMicro = 0b01
	precTagNano  = 0b10
	precTagNone  = 0b11
)

func (p Precision) wireTag() uint64 {
	switch p {
	case PrecisionMilli:
		return precTagMilli
	case PrecisionMicro:
		return precTagMicro
	case PrecisionNano:
		return precTagNano
	}
	return precTagNone
}

func precisionFromWire(tag byte) Precision {
	switch tag {
	case precTagMilli:
		return PrecisionMilli
	case precTagMicro:
		return PrecisionMicro
	case precTagNano:
		return PrecisionNano
	}
	return PrecisionNone
}

// width is the sub-second field width in bits.
func (p Precision) width() uint {
	switch p {
	case PrecisionMilli:
		return 10
	case PrecisionMicro:
		return 20
	case PrecisionNano:
		return 30
	}
	return 0
}

// extraBytes is the encoded size added over the precision-less layout.
func (p Precision) extraBytes() int {
	switch p {
	case PrecisionMilli:
		return 1
	case PrecisionMicro:
		return 2
	case PrecisionNano:
		return 3
	}
	return 0
}

// maxMagnitude is the largest valid sub-second count. The wire field is
// wider than one decimal group, so decoded counts above it are errors.
func (p Precision) maxMagnitude() uint32 {
	switch p {
	case PrecisionMilli:
		return MillisMax
	case PrecisionMicro:
		return MicrosMax
	}
	return NanosMax
}

// bitWriter packs MSB-first bit fields into b, which must be zeroed and
// long enough for every write.
type bitWriter struct {
	b   []byte
	off uint
}

func (w *bitWriter) writeBits(v uint64, n uint) {
	for n > 0 {
		idx, bit := w.off>>3, w.off&7
		free := 8 - bit
		take := free
		if n < free {
			take = n
		}
		chunk := byte(v >> (n - take) & (1<<take - 1))
		w.b[idx] |= chunk << (free - take)
		w.off += take
		n -= take
	}
}

// bitReader reads MSB-first bit fields from b. Callers bound their
// reads by the slice length up front.
type bitReader struct {
	b   []byte
	off uint
}

func (r *bitReader) readBits(n uint) uint64 {
	var v uint64
	for n > 0 {
		idx, bit := r.off>>3, r.off&7
		avail := 8 - bit
		take := avail
		if n < avail {
			take = n
		}
		chunk := r.b[idx] >> (avail - take) & (1<<take - 1)
		v = v<<take | uint64(chunk)
		r.off += take
		n -= take
	}
	return v
}

// encodedLenFromFirstByte sizes a value from its leading byte: the tag
// picks the layout, and for sub-second layouts the precision bits that
// share the first byte pick the tail length.
func encodedLenFromFirstByte(b0 byte) (int, error) {
	switch {
	case b0>>6 == tagDateTime:
		return dateTimeLen, nil
	case b0>>6 == tagDateTimeSubsecond:
		return dateTimeSubBaseLen + precisionFromWire(b0>>4&0b11).extraBytes(), nil
	case b0>>5 == tagDate:
		return dateLen, nil
	case b0>>1 == tagTime:
		return timeLen, nil
	case b0>>5 == tagDateTimeOffset:
		return dateTimeOffsetLen, nil
	case b0>>5 == tagDateTimeSubsecondOffset:
		return dateTimeSubOffBaseLen + precisionFromWire(b0>>3&0b11).extraBytes(), nil
	}
	return 0, fmt.Errorf("%w: first byte %#02x", ErrUnrecognizedTag, b0)
}

// Block container framing.

const (
	// VersionV1 is the only block format version written and read.
	VersionV1 uint16 = 1

	blockHeaderSizeV1 = 24
)

// Magic is the 8-byte block signature.
var Magic = [8]byte{'T', 'P', 'N', 'C', '\r', '\n', 0x1A, 0x00}

const (
	blockFlagCompressionMask    uint16 = 0x000F
	blockFlagHasUncompressedLen uint16 = 0x0010
)

type blockHeaderV1 struct {
	Magic      [8]byte
	Version    uint16
	Flags      uint16
	ValueCount uint32
	PayloadLen uint64
}

func readBlockHeader(r io.Reader) (blockHeaderV1, error) {
	var buf [blockHeaderSizeV1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return blockHeaderV1{}, err
	}
	var h blockHeaderV1
	copy(h.Magic[:], buf[0:8])
	h.Version = binary.LittleEndian.Uint16(buf[8:10])
	h.Flags = binary.LittleEndian.Uint16(buf[10:12])
	h.ValueCount = binary.LittleEndian.Uint32(buf[12:16])
	h.PayloadLen = binary.LittleEndian.Uint64(buf[16:24])
	return h, nil
}

func writeBlockHeader(w io.Writer, h blockHeaderV1) error {
	var buf [blockHeaderSizeV1]byte
	copy(buf[0:8], h.Magic[:])
	binary.LittleEndian.PutUint16(buf[8:10], h.Version)
	binary.LittleEndian.PutUint16(buf[10:12], h.Flags)
	binary.LittleEndian.PutUint32(buf[12:16], h.ValueCount)
	binary.LittleEndian.PutUint64(buf[16:24], h.PayloadLen)
	_, err := w.Write(buf[:])
	return err
}

func (h blockHeaderV1) compression() Compression {
	return Compression(h.Flags & blockFlagCompressionMask)
}

func (h blockHeaderV1) hasUncompressedLen() bool {
	return (h.Flags & blockFlagHasUncompressedLen) != 0
}

func validateBlockHeader(h blockHeaderV1) error {
	if h.Magic != Magic {
		return ErrInvalidMagic
	}
	if h.Version != VersionV1 {
		return fmt.Errorf("%w: version %d", ErrUnsupportedVersion, h.Version)
	}
	if h.Flags&^(blockFlagCompressionMask|blockFlagHasUncompressedLen) != 0 {
		return fmt.Errorf("%w: unknown flag bits %#04x", ErrInvalidBlock, h.Flags)
	}
	comp := h.compression()
	switch comp {
	case CompNone, CompSnappy, CompZSTD, CompLZ4, CompBR:
	default:
		return fmt.Errorf("%w: unknown compression %d", ErrInvalidBlock, comp)
	}
	if comp == CompNone {
		if h.hasUncompressedLen() {
			return fmt.Errorf("%w: COMP_NONE must not set HAS_UNCOMPRESSED_LEN", ErrInvalidBlock)
		}
	} else if !h.hasUncompressedLen() {
		return fmt.Errorf("%w: compressed payload must set HAS_UNCOMPRESSED_LEN", ErrInvalidBlock)
	}
	return nil
}
