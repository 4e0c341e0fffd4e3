package temporenc

import "fmt"

// Decoding reads the tag from the leading byte first, then checks the
// input holds the full encoding, then unpacks and validates each field
// in wire order. The typed decoders accept input with trailing bytes
// beyond the encoding so callers can walk a concatenated stream; the
// UnmarshalBinary methods are strict.

// DecodeDate decodes a Date from the front of b.
func DecodeDate(b []byte) (Date, error) {
	if len(b) == 0 {
		return Date{}, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	if b[0]>>5 != tagDate {
		return Date{}, fmt.Errorf("%w: first byte %#02x, want Date", ErrUnrecognizedTag, b[0])
	}
	if len(b) < dateLen {
		return Date{}, fmt.Errorf("%w: %d bytes, Date needs %d", ErrTruncated, len(b), dateLen)
	}
	r := bitReader{b: b, off: 3}
	year := r.readBits(12)
	month := r.readBits(4)
	day := r.readBits(5)
	return dateFromRaw(year, month, day)
}

// DecodeTime decodes a Time from the front of b.
func DecodeTime(b []byte) (Time, error) {
	if len(b) == 0 {
		return Time{}, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	if b[0]>>1 != tagTime {
		return Time{}, fmt.Errorf("%w: first byte %#02x, want Time", ErrUnrecognizedTag, b[0])
	}
	if len(b) < timeLen {
		return Time{}, fmt.Errorf("%w: %d bytes, Time needs %d", ErrTruncated, len(b), timeLen)
	}
	r := bitReader{b: b, off: 7}
	hour := r.readBits(5)
	minute := r.readBits(6)
	second := r.readBits(6)
	return timeFromRaw(hour, minute, second)
}

// DecodeDateTime decodes a DateTime from the front of b.
func DecodeDateTime(b []byte) (DateTime, error) {
	if len(b) == 0 {
		return DateTime{}, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	if b[0]>>6 != tagDateTime {
		return DateTime{}, fmt.Errorf("%w: first byte %#02x, want DateTime", ErrUnrecognizedTag, b[0])
	}
	if len(b) < dateTimeLen {
		return DateTime{}, fmt.Errorf("%w: %d bytes, DateTime needs %d", ErrTruncated, len(b), dateTimeLen)
	}
	r := bitReader{b: b, off: 2}
	date, err := dateFromRaw(r.readBits(12), r.readBits(4), r.readBits(5))
	if err != nil {
		return DateTime{}, err
	}
	tod, err := timeFromRaw(r.readBits(5), r.readBits(6), r.readBits(6))
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: tod}, nil
}

// DecodeDateTimeOffset decodes a DateTimeOffset from the front of b.
func DecodeDateTimeOffset(b []byte) (DateTimeOffset, error) {
	if len(b) == 0 {
		return DateTimeOffset{}, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	if b[0]>>5 != tagDateTimeOffset {
		return DateTimeOffset{}, fmt.Errorf("%w: first byte %#02x, want DateTimeOffset", ErrUnrecognizedTag, b[0])
	}
	if len(b) < dateTimeOffsetLen {
		return DateTimeOffset{}, fmt.Errorf("%w: %d bytes, DateTimeOffset needs %d", ErrTruncated, len(b), dateTimeOffsetLen)
	}
	r := bitReader{b: b, off: 3}
	date, err := dateFromRaw(r.readBits(12), r.readBits(4), r.readBits(5))
	if err != nil {
		return DateTimeOffset{}, err
	}
	tod, err := timeFromRaw(r.readBits(5), r.readBits(6), r.readBits(6))
	if err != nil {
		return DateTimeOffset{}, err
	}
	off := offsetFromRaw(r.readBits(7))
	return DateTimeOffset{date: date, time: tod, off: off}, nil
}

// DecodeDateTimeSubsecond decodes a DateTimeSubsecond from the front of
// b. The encoded size depends on the precision bits in the first byte.
func DecodeDateTimeSubsecond(b []byte) (DateTimeSubsecond, error) {
	if len(b) == 0 {
		return DateTimeSubsecond{}, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	if b[0]>>6 != tagDateTimeSubsecond {
		return DateTimeSubsecond{}, fmt.Errorf("%w: first byte %#02x, want DateTimeSubsecond", ErrUnrecognizedTag, b[0])
	}
	prec := precisionFromWire(b[0] >> 4 & 0b11)
	if n := dateTimeSubBaseLen + prec.extraBytes(); len(b) < n {
		return DateTimeSubsecond{}, fmt.Errorf("%w: %d bytes, DateTimeSubsecond needs %d", ErrTruncated, len(b), n)
	}
	r := bitReader{b: b, off: 4}
	date, err := dateFromRaw(r.readBits(12), r.readBits(4), r.readBits(5))
	if err != nil {
		return DateTimeSubsecond{}, err
	}
	tod, err := timeFromRaw(r.readBits(5), r.readBits(6), r.readBits(6))
	if err != nil {
		return DateTimeSubsecond{}, err
	}
	frac, err := fracFromRaw(prec, r.readBits(prec.width()))
	if err != nil {
		return DateTimeSubsecond{}, err
	}
	return DateTimeSubsecond{date: date, time: tod, frac: frac}, nil
}

// DecodeDateTimeSubsecondOffset decodes a DateTimeSubsecondOffset from
// the front of b. The encoded size depends on the precision bits in the
// first byte.
func DecodeDateTimeSubsecondOffset(b []byte) (DateTimeSubsecondOffset, error) {
	if len(b) == 0 {
		return DateTimeSubsecondOffset{}, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	if b[0]>>5 != tagDateTimeSubsecondOffset {
		return DateTimeSubsecondOffset{}, fmt.Errorf("%w: first byte %#02x, want DateTimeSubsecondOffset", ErrUnrecognizedTag, b[0])
	}
	prec := precisionFromWire(b[0] >> 3 & 0b11)
	if n := dateTimeSubOffBaseLen + prec.extraBytes(); len(b) < n {
		return DateTimeSubsecondOffset{}, fmt.Errorf("%w: %d bytes, DateTimeSubsecondOffset needs %d", ErrTruncated, len(b), n)
	}
	r := bitReader{b: b, off: 5}
	date, err := dateFromRaw(r.readBits(12), r.readBits(4), r.readBits(5))
	if err != nil {
		return DateTimeSubsecondOffset{}, err
	}
	tod, err := timeFromRaw(r.readBits(5), r.readBits(6), r.readBits(6))
	if err != nil {
		return DateTimeSubsecondOffset{}, err
	}
	frac, err := fracFromRaw(prec, r.readBits(prec.width()))
	if err != nil {
		return DateTimeSubsecondOffset{}, err
	}
	off := offsetFromRaw(r.readBits(7))
	return DateTimeSubsecondOffset{date: date, time: tod, frac: frac, off: off}, nil
}

// Decode decodes whichever value the leading tag bits of b indicate.
func Decode(b []byte) (Value, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	switch {
	case b[0]>>6 == tagDateTime:
		v, err := DecodeDateTime(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	case b[0]>>6 == tagDateTimeSubsecond:
		v, err := DecodeDateTimeSubsecond(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	case b[0]>>5 == tagDate:
		v, err := DecodeDate(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	case b[0]>>1 == tagTime:
		v, err := DecodeTime(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	case b[0]>>5 == tagDateTimeOffset:
		v, err := DecodeDateTimeOffset(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	case b[0]>>5 == tagDateTimeSubsecondOffset:
		v, err := DecodeDateTimeSubsecondOffset(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: first byte %#02x", ErrUnrecognizedTag, b[0])
}

func checkExact(data []byte, n int) error {
	if len(data) != n {
		return fmt.Errorf("%w: %d bytes after %d-byte encoding", ErrTrailingBytes, len(data)-n, n)
	}
	return nil
}

// UnmarshalBinary decodes data, which must be exactly one Date encoding.
func (d *Date) UnmarshalBinary(data []byte) error {
	v, err := DecodeDate(data)
	if err != nil {
		return err
	}
	if err := checkExact(data, v.EncodedLen()); err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalBinary decodes data, which must be exactly one Time encoding.
func (t *Time) UnmarshalBinary(data []byte) error {
	v, err := DecodeTime(data)
	if err != nil {
		return err
	}
	if err := checkExact(data, v.EncodedLen()); err != nil {
		return err
	}
	*t = v
	return nil
}

// UnmarshalBinary decodes data, which must be exactly one DateTime
// encoding.
func (d *DateTime) UnmarshalBinary(data []byte) error {
	v, err := DecodeDateTime(data)
	if err != nil {
		return err
	}
	if err := checkExact(data, v.EncodedLen()); err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalBinary decodes data, which must be exactly one DateTimeOffset
// encoding.
func (d *DateTimeOffset) UnmarshalBinary(data []byte) error {
	v, err := DecodeDateTimeOffset(data)
	if err != nil {
		return err
	}
	if err := checkExact(data, v.EncodedLen()); err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalBinary decodes data, which must be exactly one
// DateTimeSubsecond encoding.
func (d *DateTimeSubsecond) UnmarshalBinary(data []byte) error {
	v, err := DecodeDateTimeSubsecond(data)
	if err != nil {
		return err
	}
	if err := checkExact(data, v.EncodedLen()); err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalBinary decodes data, which must be exactly one
// DateTimeSubsecondOffset encoding.
func (d *DateTimeSubsecondOffset) UnmarshalBinary(data []byte) error {
	v, err := DecodeDateTimeSubsecondOffset(data)
	if err != nil {
		return err
	}
	if err := checkExact(data, v.EncodedLen()); err != nil {
		return err
	}
	*d = v
	return nil
}
