package temporenc

import "fmt"

// Stored field forms. Every optional field keeps zero for "unspecified"
// so the zero value of each type is the all-unspecified value: years are
// stored as year+1, months and days as their 1-based calendar value, and
// hours, minutes and seconds as value+1.

func yearStored(year int) (uint16, error) {
	if year == Unspecified {
		return 0, nil
	}
	if year < YearMin || year > YearMax {
		return 0, fmt.Errorf("%w: year %d", ErrFieldRange, year)
	}
	return uint16(year) + 1, nil
}

func monthStored(month int) (uint8, error) {
	if month == Unspecified {
		return 0, nil
	}
	if month < MonthMin || month > MonthMax {
		return 0, fmt.Errorf("%w: month %d", ErrFieldRange, month)
	}
	return uint8(month), nil
}

func dayStored(day int) (uint8, error) {
	if day == Unspecified {
		return 0, nil
	}
	if day < DayMin || day > DayMax {
		return 0, fmt.Errorf("%w: day %d", ErrFieldRange, day)
	}
	return uint8(day), nil
}

func hourStored(hour int) (uint8, error) {
	if hour == Unspecified {
		return 0, nil
	}
	if hour < 0 || hour > HourMax {
		return 0, fmt.Errorf("%w: hour %d", ErrFieldRange, hour)
	}
	return uint8(hour) + 1, nil
}

func minuteStored(minute int) (uint8, error) {
	if minute == Unspecified {
		return 0, nil
	}
	if minute < 0 || minute > MinuteMax {
		return 0, fmt.Errorf("%w: minute %d", ErrFieldRange, minute)
	}
	return uint8(minute) + 1, nil
}

func secondStored(second int) (uint8, error) {
	if second == Unspecified {
		return 0, nil
	}
	if second < 0 || second > SecondMax {
		return 0, fmt.Errorf("%w: second %d", ErrFieldRange, second)
	}
	return uint8(second) + 1, nil
}

// Wire forms. Each field travels as an unsigned raw value whose all-ones
// pattern means "no value"; months and days are shifted down by one so
// their raw range starts at zero.

func (d Date) rawYear() uint64 {
	if d.year == 0 {
		return yearNone
	}
	return uint64(d.year) - 1
}

func (d Date) rawMonth() uint64 {
	if d.month == 0 {
		return monthNone
	}
	return uint64(d.month) - 1
}

func (d Date) rawDay() uint64 {
	if d.day == 0 {
		return dayNone
	}
	return uint64(d.day) - 1
}

func (t Time) rawHour() uint64 {
	if t.hour == 0 {
		return hourNone
	}
	return uint64(t.hour) - 1
}

func (t Time) rawMinute() uint64 {
	if t.minute == 0 {
		return minuteNone
	}
	return uint64(t.minute) - 1
}

func (t Time) rawSecond() uint64 {
	if t.second == 0 {
		return secondNone
	}
	return uint64(t.second) - 1
}

func (o Offset) raw() uint64 {
	switch o.state {
	case offElsewhere:
		return offsetRawElsewhere
	case offMinutes:
		return uint64(int(o.min)/OffsetStep + offsetRawBias)
	}
	return offsetRawNone
}

// dateFromRaw validates decoded raw date fields. Every 12-bit year and
// 5-bit day pattern is either a value or the none pattern, so only the
// month has a reserved gap to reject.
func dateFromRaw(year, month, day uint64) (Date, error) {
	var d Date
	if year != yearNone {
		d.year = uint16(year) + 1
	}
	switch {
	case month == monthNone:
	case month <= monthRawMax:
		d.month = uint8(month) + 1
	default:
		return Date{}, fmt.Errorf("%w: month bits %d", ErrReservedValue, month)
	}
	if day != dayNone {
		d.day = uint8(day) + 1
	}
	return d, nil
}

// timeFromRaw validates decoded raw time fields, rejecting the reserved
// gaps between each field's largest value and its none pattern.
func timeFromRaw(hour, minute, second uint64) (Time, error) {
	var t Time
	switch {
	case hour == hourNone:
	case hour <= hourRawMax:
		t.hour = uint8(hour) + 1
	default:
		return Time{}, fmt.Errorf("%w: hour bits %d", ErrReservedValue, hour)
	}
	switch {
	case minute == minuteNone:
	case minute <= minuteRawMax:
		t.minute = uint8(minute) + 1
	default:
		return Time{}, fmt.Errorf("%w: minute bits %d", ErrReservedValue, minute)
	}
	switch {
	case second == secondNone:
	case second <= secondRawMax:
		t.second = uint8(second) + 1
	default:
		return Time{}, fmt.Errorf("%w: second bits %d", ErrReservedValue, second)
	}
	return t, nil
}

// offsetFromRaw never fails: all 126 biased quarter-hour counts plus the
// two special patterns cover the 7-bit space exactly.
func offsetFromRaw(raw uint64) Offset {
	switch raw {
	case offsetRawNone:
		return Offset{}
	case offsetRawElsewhere:
		return Offset{state: offElsewhere}
	}
	return Offset{state: offMinutes, min: int16((int(raw) - offsetRawBias) * OffsetStep)}
}

// fracFromRaw validates a decoded sub-second magnitude against its
// precision's maximum. The wire field is wider than one decimal group,
// so in-width magnitudes above the maximum are possible and rejected.
func fracFromRaw(p Precision, mag uint64) (FracSecond, error) {
	if p == PrecisionNone {
		return FracSecond{}, nil
	}
	if mag > uint64(p.maxMagnitude()) {
		return FracSecond{}, fmt.Errorf("%w: %d at %s precision", ErrSubsecondRange, mag, p)
	}
	return FracSecond{prec: p, val: uint32(mag)}, nil
}
