package temporenc

import "fmt"

// Unspecified is returned by field accessors when a field carries no
// value, and is accepted by the constructors to leave a field absent.
const Unspecified = -1

// Field ranges accepted by the constructors.
const (
	YearMin = 0
	YearMax = 4094

	MonthMin = 1
	MonthMax = 12

	DayMin = 1
	DayMax = 31

	HourMax   = 23
	MinuteMax = 59
	SecondMax = 60 // 60 admits leap seconds

	MillisMax = 999
	MicrosMax = 999_999
	NanosMax  = 999_999_999

	// UTC offsets are quarter-hour aligned minute counts.
	OffsetMin  = -960
	OffsetMax  = 915
	OffsetStep = 15
)

// MaxEncodedLen is the largest encoded size of any value: a
// DateTimeSubsecondOffset carrying nanoseconds.
const MaxEncodedLen = 10

// Kind identifies one of the six encodable type variants.
type Kind uint8

const (
	KindDate Kind = iota + 1
	KindTime
	KindDateTime
	KindDateTimeOffset
	KindDateTimeSubsecond
	KindDateTimeSubsecondOffset
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindDateTime:
		return "DateTime"
	case KindDateTimeOffset:
		return "DateTimeOffset"
	case KindDateTimeSubsecond:
		return "DateTimeSubsecond"
	case KindDateTimeSubsecondOffset:
		return "DateTimeSubsecondOffset"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Precision is the resolution of a sub-second component.
type Precision uint8

const (
	PrecisionNone Precision = iota
	PrecisionMilli
	PrecisionMicro
	PrecisionNano
)

func (p Precision) String() string {
	switch p {
	case PrecisionNone:
		return "none"
	case PrecisionMilli:
		return "milli"
	case PrecisionMicro:
		return "micro"
	case PrecisionNano:
		return "nano"
	}
	return fmt.Sprintf("Precision(%d)", uint8(p))
}

// FracSecond is an optional sub-second component: a magnitude at one of
// three precisions. The zero value carries no sub-second component.
type FracSecond struct {
	prec Precision
	val  uint32
}

// Milliseconds returns a FracSecond of n milliseconds, 0..999.
func Milliseconds(n int) (FracSecond, error) {
	if n < 0 || n > MillisMax {
		return FracSecond{}, fmt.Errorf("%w: %d ms", ErrSubsecondRange, n)
	}
	return FracSecond{prec: PrecisionMilli, val: uint32(n)}, nil
}

// Microseconds returns a FracSecond of n microseconds, 0..999999.
func Microseconds(n int) (FracSecond, error) {
	if n < 0 || n > MicrosMax {
		return FracSecond{}, fmt.Errorf("%w: %d us", ErrSubsecondRange, n)
	}
	return FracSecond{prec: PrecisionMicro, val: uint32(n)}, nil
}

// Nanoseconds returns a FracSecond of n nanoseconds, 0..999999999.
func Nanoseconds(n int) (FracSecond, error) {
	if n < 0 || n > NanosMax {
		return FracSecond{}, fmt.Errorf("%w: %d ns", ErrSubsecondRange, n)
	}
	return FracSecond{prec: PrecisionNano, val: uint32(n)}, nil
}

// Precision reports the resolution of the component.
func (f FracSecond) Precision() Precision { return f.prec }

// Magnitude returns the count at the component's precision, or
// Unspecified when the precision is PrecisionNone.
func (f FracSecond) Magnitude() int {
	if f.prec == PrecisionNone {
		return Unspecified
	}
	return int(f.val)
}

func (f FracSecond) String() string {
	switch f.prec {
	case PrecisionMilli:
		return fmt.Sprintf(".%03d", f.val)
	case PrecisionMicro:
		return fmt.Sprintf(".%06d", f.val)
	case PrecisionNano:
		return fmt.Sprintf(".%09d", f.val)
	}
	return ""
}

const (
	offUnspecified uint8 = iota
	offElsewhere
	offMinutes
)

// Offset is an optional UTC offset: a minute count east of UTC,
// "elsewhere" for a value known to be local to some unstated zone, or
// unspecified. The zero value is unspecified.
type Offset struct {
	state uint8
	min   int16
}

// OffsetMinutes returns an Offset of min minutes east of UTC. The value
// must be a multiple of OffsetStep within [OffsetMin, OffsetMax].
func OffsetMinutes(min int) (Offset, error) {
	if min < OffsetMin || min > OffsetMax || min%OffsetStep != 0 {
		return Offset{}, fmt.Errorf("%w: offset %d min", ErrFieldRange, min)
	}
	return Offset{state: offMinutes, min: int16(min)}, nil
}

// OffsetElsewhere returns the Offset marking a value as local to a zone
// the encoding does not carry.
func OffsetElsewhere() Offset { return Offset{state: offElsewhere} }

// OffsetUnspecified returns the zero Offset.
func OffsetUnspecified() Offset { return Offset{} }

// Minutes returns the offset in minutes east of UTC; ok is false when
// the offset is elsewhere or unspecified.
func (o Offset) Minutes() (min int, ok bool) { return int(o.min), o.state == offMinutes }

// Elsewhere reports whether the value is local to an unstated zone.
func (o Offset) Elsewhere() bool { return o.state == offElsewhere }

// Unspecified reports whether no offset is carried.
func (o Offset) Unspecified() bool { return o.state == offUnspecified }

func (o Offset) String() string {
	switch o.state {
	case offElsewhere:
		return "elsewhere"
	case offMinutes:
		sign, min := "+", int(o.min)
		if min < 0 {
			sign, min = "-", -min
		}
		return fmt.Sprintf("%s%02d:%02d", sign, min/60, min%60)
	}
	return "unspecified"
}

// Value is implemented by the six encodable types.
type Value interface {
	// Kind reports which type variant the value is.
	Kind() Kind
	// EncodedLen reports the exact encoded size in bytes.
	EncodedLen() int
	// AppendBinary appends the encoding of the value to b.
	AppendBinary(b []byte) ([]byte, error)
	// MarshalBinary returns the encoding of the value.
	MarshalBinary() ([]byte, error)
}

// DateValue is implemented by values carrying a date component.
type DateValue interface {
	Value
	Year() int
	Month() int
	Day() int
}

// TimeValue is implemented by values carrying a time-of-day component.
type TimeValue interface {
	Value
	Hour() int
	Minute() int
	Second() int
}

// SubsecondValue is implemented by values carrying a sub-second
// component.
type SubsecondValue interface {
	Value
	Subsecond() FracSecond
}

// OffsetValue is implemented by values carrying a UTC offset component.
type OffsetValue interface {
	Value
	Offset() Offset
}

// Date is a year, month and day, each optionally unspecified. The zero
// value has every field unspecified.
type Date struct {
	year  uint16 // year+1; 0 when unspecified
	month uint8  // 1..12; 0 when unspecified
	day   uint8  // 1..31; 0 when unspecified
}

// NewDate returns a Date with the given fields. Each field is either
// Unspecified or in range: year 0..4094, month 1..12, day 1..31. Days
// are not checked against month lengths.
func NewDate(year, month, day int) (Date, error) {
	y, err := yearStored(year)
	if err != nil {
		return Date{}, err
	}
	m, err := monthStored(month)
	if err != nil {
		return Date{}, err
	}
	d, err := dayStored(day)
	if err != nil {
		return Date{}, err
	}
	return Date{year: y, month: m, day: d}, nil
}

// Year returns the year 0..4094, or Unspecified.
func (d Date) Year() int {
	if d.year == 0 {
		return Unspecified
	}
	return int(d.year) - 1
}

// Month returns the month 1..12, or Unspecified.
func (d Date) Month() int {
	if d.month == 0 {
		return Unspecified
	}
	return int(d.month)
}

// Day returns the day 1..31, or Unspecified.
func (d Date) Day() int {
	if d.day == 0 {
		return Unspecified
	}
	return int(d.day)
}

// Time is an hour, minute and second, each optionally unspecified. The
// zero value has every field unspecified.
type Time struct {
	hour   uint8 // hour+1; 0 when unspecified
	minute uint8 // minute+1; 0 when unspecified
	second uint8 // second+1; 0 when unspecified
}

// NewTime returns a Time with the given fields. Each field is either
// Unspecified or in range: hour 0..23, minute 0..59, second 0..60.
func NewTime(hour, minute, second int) (Time, error) {
	h, err := hourStored(hour)
	if err != nil {
		return Time{}, err
	}
	m, err := minuteStored(minute)
	if err != nil {
		return Time{}, err
	}
	s, err := secondStored(second)
	if err != nil {
		return Time{}, err
	}
	return Time{hour: h, minute: m, second: s}, nil
}

// Hour returns the hour 0..23, or Unspecified.
func (t Time) Hour() int {
	if t.hour == 0 {
		return Unspecified
	}
	return int(t.hour) - 1
}

// Minute returns the minute 0..59, or Unspecified.
func (t Time) Minute() int {
	if t.minute == 0 {
		return Unspecified
	}
	return int(t.minute) - 1
}

// Second returns the second 0..60, or Unspecified.
func (t Time) Second() int {
	if t.second == 0 {
		return Unspecified
	}
	return int(t.second) - 1
}

// DateTime is a date and a time of day.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime combines a date and a time of day.
func NewDateTime(d Date, t Time) DateTime { return DateTime{date: d, time: t} }

func (d DateTime) Year() int   { return d.date.Year() }
func (d DateTime) Month() int  { return d.date.Month() }
func (d DateTime) Day() int    { return d.date.Day() }
func (d DateTime) Hour() int   { return d.time.Hour() }
func (d DateTime) Minute() int { return d.time.Minute() }
func (d DateTime) Second() int { return d.time.Second() }

// DateTimeOffset is a date and time of day qualified by a UTC offset.
type DateTimeOffset struct {
	date Date
	time Time
	off  Offset
}

// NewDateTimeOffset combines a date, a time of day and a UTC offset.
func NewDateTimeOffset(d Date, t Time, off Offset) DateTimeOffset {
	return DateTimeOffset{date: d, time: t, off: off}
}

func (d DateTimeOffset) Year() int      { return d.date.Year() }
func (d DateTimeOffset) Month() int     { return d.date.Month() }
func (d DateTimeOffset) Day() int       { return d.date.Day() }
func (d DateTimeOffset) Hour() int      { return d.time.Hour() }
func (d DateTimeOffset) Minute() int    { return d.time.Minute() }
func (d DateTimeOffset) Second() int    { return d.time.Second() }
func (d DateTimeOffset) Offset() Offset { return d.off }

// DateTimeSubsecond is a date and time of day extended with a
// sub-second component.
type DateTimeSubsecond struct {
	date Date
	time Time
	frac FracSecond
}

// NewDateTimeSubsecond combines a date, a time of day and a sub-second
// component.
func NewDateTimeSubsecond(d Date, t Time, frac FracSecond) DateTimeSubsecond {
	return DateTimeSubsecond{date: d, time: t, frac: frac}
}

func (d DateTimeSubsecond) Year() int             { return d.date.Year() }
func (d DateTimeSubsecond) Month() int            { return d.date.Month() }
func (d DateTimeSubsecond) Day() int              { return d.date.Day() }
func (d DateTimeSubsecond) Hour() int             { return d.time.Hour() }
func (d DateTimeSubsecond) Minute() int           { return d.time.Minute() }
func (d DateTimeSubsecond) Second() int           { return d.time.Second() }
func (d DateTimeSubsecond) Subsecond() FracSecond { return d.frac }

// DateTimeSubsecondOffset is a date and time of day extended with a
// sub-second component and qualified by a UTC offset.
type DateTimeSubsecondOffset struct {
	date Date
	time Time
	frac FracSecond
	off  Offset
}

// NewDateTimeSubsecondOffset combines a date, a time of day, a
// sub-second component and a UTC offset.
func NewDateTimeSubsecondOffset(d Date, t Time, frac FracSecond, off Offset) DateTimeSubsecondOffset {
	return DateTimeSubsecondOffset{date: d, time: t, frac: frac, off: off}
}

func (d DateTimeSubsecondOffset) Year() int             { return d.date.Year() }
func (d DateTimeSubsecondOffset) Month() int            { return d.date.Month() }
func (d DateTimeSubsecondOffset) Day() int              { return d.date.Day() }
func (d DateTimeSubsecondOffset) Hour() int             { return d.time.Hour() }
func (d DateTimeSubsecondOffset) Minute() int           { return d.time.Minute() }
func (d DateTimeSubsecondOffset) Second() int           { return d.time.Second() }
func (d DateTimeSubsecondOffset) Subsecond() FracSecond { return d.frac }
func (d DateTimeSubsecondOffset) Offset() Offset        { return d.off }
