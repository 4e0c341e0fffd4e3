package temporenc

// Encoding writes each value's tag and then its component fields MSB
// first into a stack buffer of the value's exact encoded size, so the
// trailing pad bits of the sub-second layouts are already zero.
//
// AppendBinary never fails for a constructed value: every reachable
// field state has a wire representation. The error return exists to
// satisfy encoding.BinaryAppender.

// EncodedLen reports the encoded size in bytes, always 3.
func (d Date) EncodedLen() int { return dateLen }

// Kind returns KindDate.
func (d Date) Kind() Kind { return KindDate }

func (d Date) AppendBinary(b []byte) ([]byte, error) {
	var buf [dateLen]byte
	w := bitWriter{b: buf[:]}
	w.writeBits(tagDate, 3)
	w.writeBits(d.rawYear(), 12)
	w.writeBits(d.rawMonth(), 4)
	w.writeBits(d.rawDay(), 5)
	return append(b, buf[:]...), nil
}

func (d Date) MarshalBinary() ([]byte, error) { return d.AppendBinary(nil) }

// EncodedLen reports the encoded size in bytes, always 3.
func (t Time) EncodedLen() int { return timeLen }

// Kind returns KindTime.
func (t Time) Kind() Kind { return KindTime }

func (t Time) AppendBinary(b []byte) ([]byte, error) {
	var buf [timeLen]byte
	w := bitWriter{b: buf[:]}
	w.writeBits(tagTime, 7)
	w.writeBits(t.rawHour(), 5)
	w.writeBits(t.rawMinute(), 6)
	w.writeBits(t.rawSecond(), 6)
	return append(b, buf[:]...), nil
}

func (t Time) MarshalBinary() ([]byte, error) { return t.AppendBinary(nil) }

// EncodedLen reports the encoded size in bytes, always 5.
func (d DateTime) EncodedLen() int { return dateTimeLen }

// Kind returns KindDateTime.
func (d DateTime) Kind() Kind { return KindDateTime }

func (d DateTime) AppendBinary(b []byte) ([]byte, error) {
	var buf [dateTimeLen]byte
	w := bitWriter{b: buf[:]}
	w.writeBits(tagDateTime, 2)
	w.writeBits(d.date.rawYear(), 12)
	w.writeBits(d.date.rawMonth(), 4)
	w.writeBits(d.date.rawDay(), 5)
	w.writeBits(d.time.rawHour(), 5)
	w.writeBits(d.time.rawMinute(), 6)
	w.writeBits(d.time.rawSecond(), 6)
	return append(b, buf[:]...), nil
}

func (d DateTime) MarshalBinary() ([]byte, error) { return d.AppendBinary(nil) }

// EncodedLen reports the encoded size in bytes, always 6.
func (d DateTimeOffset) EncodedLen() int { return dateTimeOffsetLen }

// Kind returns KindDateTimeOffset.
func (d DateTimeOffset) Kind() Kind { return KindDateTimeOffset }

func (d DateTimeOffset) AppendBinary(b []byte) ([]byte, error) {
	var buf [dateTimeOffsetLen]byte
	w := bitWriter{b: buf[:]}
	w.writeBits(tagDateTimeOffset, 3)
	w.writeBits(d.date.rawYear(), 12)
	w.writeBits(d.date.rawMonth(), 4)
	w.writeBits(d.date.rawDay(), 5)
	w.writeBits(d.time.rawHour(), 5)
	w.writeBits(d.time.rawMinute(), 6)
	w.writeBits(d.time.rawSecond(), 6)
	w.writeBits(d.off.raw(), 7)
	return append(b, buf[:]...), nil
}

func (d DateTimeOffset) MarshalBinary() ([]byte, error) { return d.AppendBinary(nil) }

// EncodedLen reports the encoded size in bytes: 6, 7, 8 or 9 depending
// on the sub-second precision.
func (d DateTimeSubsecond) EncodedLen() int {
	return dateTimeSubBaseLen + d.frac.prec.extraBytes()
}

// Kind returns KindDateTimeSubsecond.
func (d DateTimeSubsecond) Kind() Kind { return KindDateTimeSubsecond }

func (d DateTimeSubsecond) AppendBinary(b []byte) ([]byte, error) {
	var buf [dateTimeSubBaseLen + 3]byte
	w := bitWriter{b: buf[:]}
	w.writeBits(tagDateTimeSubsecond, 2)
	w.writeBits(d.frac.prec.wireTag(), 2)
	w.writeBits(d.date.rawYear(), 12)
	w.writeBits(d.date.rawMonth(), 4)
	w.writeBits(d.date.rawDay(), 5)
	w.writeBits(d.time.rawHour(), 5)
	w.writeBits(d.time.rawMinute(), 6)
	w.writeBits(d.time.rawSecond(), 6)
	w.writeBits(uint64(d.frac.val), d.frac.prec.width())
	return append(b, buf[:d.EncodedLen()]...), nil
}

func (d DateTimeSubsecond) MarshalBinary() ([]byte, error) { return d.AppendBinary(nil) }

// EncodedLen reports the encoded size in bytes: 7, 8, 9 or 10 depending
// on the sub-second precision.
func (d DateTimeSubsecondOffset) EncodedLen() int {
	return dateTimeSubOffBaseLen + d.frac.prec.extraBytes()
}

// Kind returns KindDateTimeSubsecondOffset.
func (d DateTimeSubsecondOffset) Kind() Kind { return KindDateTimeSubsecondOffset }

func (d DateTimeSubsecondOffset) AppendBinary(b []byte) ([]byte, error) {
	var buf [dateTimeSubOffBaseLen + 3]byte
	w := bitWriter{b: buf[:]}
	w.writeBits(tagDateTimeSubsecondOffset, 3)
	w.writeBits(d.frac.prec.wireTag(), 2)
	w.writeBits(d.date.rawYear(), 12)
	w.writeBits(d.date.rawMonth(), 4)
	w.writeBits(d.date.rawDay(), 5)
	w.writeBits(d.time.rawHour(), 5)
	w.writeBits(d.time.rawMinute(), 6)
	w.writeBits(d.time.rawSecond(), 6)
	w.writeBits(uint64(d.frac.val), d.frac.prec.width())
	w.writeBits(d.off.raw(), 7)
	return append(b, buf[:d.EncodedLen()]...), nil
}

func (d DateTimeSubsecondOffset) MarshalBinary() ([]byte, error) { return d.AppendBinary(nil) }
