package temporenc

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cmpOpts lets go-cmp look inside the value types, whose fields are all
// unexported.
var cmpOpts = cmp.Options{cmp.AllowUnexported(
	Date{}, Time{}, DateTime{}, DateTimeOffset{},
	DateTimeSubsecond{}, DateTimeSubsecondOffset{},
	FracSecond{}, Offset{},
)}

func mustDate(t *testing.T, year, month, day int) Date {
	t.Helper()
	d, err := NewDate(year, month, day)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustTime(t *testing.T, hour, minute, second int) Time {
	t.Helper()
	v, err := NewTime(hour, minute, second)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func mustMillis(t *testing.T, n int) FracSecond {
	t.Helper()
	f, err := Milliseconds(n)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func mustMicros(t *testing.T, n int) FracSecond {
	t.Helper()
	f, err := Microseconds(n)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func mustNanos(t *testing.T, n int) FracSecond {
	t.Helper()
	f, err := Nanoseconds(n)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func mustOffset(t *testing.T, min int) Offset {
	t.Helper()
	o, err := OffsetMinutes(min)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// sampleValues returns one value of every kind, for the stream and block
// tests.
func sampleValues(t *testing.T) []Value {
	t.Helper()
	d := mustDate(t, 1983, 1, 15)
	tod := mustTime(t, 18, 25, 12)
	return []Value{
		d,
		tod,
		NewDateTime(d, tod),
		NewDateTimeOffset(d, tod, mustOffset(t, 60)),
		NewDateTimeSubsecond(d, tod, mustMicros(t, 123456)),
		NewDateTimeSubsecondOffset(d, tod, mustNanos(t, 123456789), mustOffset(t, -480)),
		Date{},
		Time{},
	}
}

// TestConformanceVectors pins the encodings against byte sequences from
// the reference implementation of the format.
func TestConformanceVectors(t *testing.T) {
	date := mustDate(t, 1983, 1, 15)
	tod := mustTime(t, 18, 25, 12)
	plusHour := mustOffset(t, 60)

	cases := []struct {
		name string
		v    Value
		hex  string
	}{
		{"Date", date, "8f7e0e"},
		{"Date all unspecified", Date{}, "9fffff"},
		{"Time", tod, "a1264c"},
		{"Time all unspecified", Time{}, "a1ffff"},
		{"DateTime", NewDateTime(date, tod), "1efc1d264c"},
		{"DateTime all unspecified", DateTime{}, "3fffffffff"},
		{"DateTimeOffset", NewDateTimeOffset(date, tod, plusHour), "cf7e0e932644"},
		{"DateTimeOffset all unspecified", DateTimeOffset{}, "dfffffffffff"},
		{"DateTimeSubsecond none", NewDateTimeSubsecond(date, tod, FracSecond{}), "77bf07499300"},
		{"DateTimeSubsecond ms", NewDateTimeSubsecond(date, tod, mustMillis(t, 123)), "47bf07499307b0"},
		{"DateTimeSubsecond us", NewDateTimeSubsecond(date, tod, mustMicros(t, 123456)), "57bf0749930789" + "00"},
		{"DateTimeSubsecond ns", NewDateTimeSubsecond(date, tod, mustNanos(t, 123456789)), "67bf07499307" + "5bcd15"},
		{"DateTimeSubsecond all unspecified", DateTimeSubsecond{}, "7fffffffffc0"},
		{"DateTimeSubsecondOffset none", NewDateTimeSubsecondOffset(date, tod, FracSecond{}, plusHour), "fbdf83a4c99100"},
		{"DateTimeSubsecondOffset ms", NewDateTimeSubsecondOffset(date, tod, mustMillis(t, 123), plusHour), "e3df83a4c983dc40"},
		{"DateTimeSubsecondOffset us", NewDateTimeSubsecondOffset(date, tod, mustMicros(t, 123456), plusHour), "ebdf83a4c983c48110"},
		{"DateTimeSubsecondOffset ns", NewDateTimeSubsecondOffset(date, tod, mustNanos(t, 123456789), plusHour), "f3df83a4c983ade68ac4"},
		{"DateTimeSubsecondOffset all unspecified", DateTimeSubsecondOffset{}, "ffffffffffffc0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := unhex(t, tc.hex)
			got, err := tc.v.MarshalBinary()
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("encoded %x, want %x", got, want)
			}
			if n := tc.v.EncodedLen(); n != len(want) {
				t.Fatalf("EncodedLen %d, want %d", n, len(want))
			}
			back, err := Decode(want)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(back, tc.v) {
				t.Fatalf("decoded %#v, want %#v", back, tc.v)
			}
			if back.Kind() != tc.v.Kind() {
				t.Fatalf("decoded kind %v, want %v", back.Kind(), tc.v.Kind())
			}
		})
	}
}

func TestRoundTripBoundaries(t *testing.T) {
	dates := []Date{
		mustDate(t, YearMin, MonthMin, DayMin),
		mustDate(t, YearMax, MonthMax, DayMax),
		mustDate(t, 2016, 11, 4),
		mustDate(t, Unspecified, 2, 29), // no calendar check: the format has no such authority
		mustDate(t, 2021, 4, 31),        // likewise for 31 in a 30-day month
		{},
	}
	for _, d := range dates {
		b, err := d.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		back, err := DecodeDate(b)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		if back != d {
			t.Fatalf("round trip %#v != %#v", back, d)
		}
	}

	times := []Time{
		mustTime(t, 0, 0, 0),
		mustTime(t, HourMax, MinuteMax, SecondMax), // 23:59:60, a leap second
		mustTime(t, 12, Unspecified, 30),
		{},
	}
	for _, v := range times {
		b, err := v.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		back, err := DecodeTime(b)
		if err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		if back != v {
			t.Fatalf("round trip %#v != %#v", back, v)
		}
	}

	fracs := []FracSecond{
		{},
		mustMillis(t, 0), mustMillis(t, MillisMax),
		mustMicros(t, 0), mustMicros(t, MicrosMax),
		mustNanos(t, 0), mustNanos(t, NanosMax),
	}
	for _, f := range fracs {
		v := NewDateTimeSubsecond(mustDate(t, 2000, 6, 15), mustTime(t, 1, 2, 3), f)
		b, err := v.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		back, err := DecodeDateTimeSubsecond(b)
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		if back != v {
			t.Fatalf("round trip %#v != %#v", back, v)
		}
	}

	offsets := []Offset{
		OffsetUnspecified(),
		OffsetElsewhere(),
		mustOffset(t, OffsetMin),
		mustOffset(t, OffsetMax),
		mustOffset(t, 0),
		mustOffset(t, -330),
	}
	for _, o := range offsets {
		v := NewDateTimeOffset(mustDate(t, 2000, 6, 15), mustTime(t, 1, 2, 3), o)
		b, err := v.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		back, err := DecodeDateTimeOffset(b)
		if err != nil {
			t.Fatalf("%v: %v", o, err)
		}
		if back != v {
			t.Fatalf("round trip %#v != %#v", back, v)
		}
	}
}

func TestDateAccessors(t *testing.T) {
	d := mustDate(t, 2016, 11, 4)
	if d.Year() != 2016 || d.Month() != 11 || d.Day() != 4 {
		t.Fatalf("got %d-%d-%d", d.Year(), d.Month(), d.Day())
	}
	b, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeDate(b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Year() != 2016 || back.Month() != 11 || back.Day() != 4 {
		t.Fatalf("after round trip: %d-%d-%d", back.Year(), back.Month(), back.Day())
	}
}

func TestTimeAllUnspecified(t *testing.T) {
	v := mustTime(t, Unspecified, Unspecified, Unspecified)
	b, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeTime(b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Hour() != Unspecified || back.Minute() != Unspecified || back.Second() != Unspecified {
		t.Fatalf("got %d:%d:%d, want all unspecified", back.Hour(), back.Minute(), back.Second())
	}
}

// Year 0 and second 0 are valid values, distinct from unspecified.
func TestZeroFieldsAreNotUnspecified(t *testing.T) {
	v := NewDateTime(mustDate(t, 0, 1, 1), mustTime(t, 0, 0, 0))
	b, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeDateTime(b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Year() != 0 || back.Hour() != 0 || back.Second() != 0 {
		t.Fatalf("got year %d hour %d second %d", back.Year(), back.Hour(), back.Second())
	}
}

func TestDateTimeSubsecondOffsetMicroScenario(t *testing.T) {
	v := NewDateTimeSubsecondOffset(
		mustDate(t, 2023, 1, 1),
		mustTime(t, 0, 0, 0),
		mustMicros(t, 123456),
		mustOffset(t, 120),
	)
	if v.EncodedLen() != 9 {
		t.Fatalf("EncodedLen %d, want 9", v.EncodedLen())
	}
	b, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 9 {
		t.Fatalf("encoded %d bytes, want 9", len(b))
	}
	back, err := DecodeDateTimeSubsecondOffset(b)
	if err != nil {
		t.Fatal(err)
	}
	if back != v {
		t.Fatalf("round trip %#v != %#v", back, v)
	}
	if back.Year() != 2023 || back.Month() != 1 || back.Day() != 1 {
		t.Fatal("date mismatch")
	}
	if back.Subsecond().Precision() != PrecisionMicro || back.Subsecond().Magnitude() != 123456 {
		t.Fatalf("subsecond %v", back.Subsecond())
	}
	if min, ok := back.Offset().Minutes(); !ok || min != 120 {
		t.Fatalf("offset %v", back.Offset())
	}
}

func TestOffsetElsewhereRoundTrip(t *testing.T) {
	v := NewDateTimeOffset(mustDate(t, 1999, 12, 31), mustTime(t, 23, 59, 59), OffsetElsewhere())
	b, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeDateTimeOffset(b)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Offset().Elsewhere() {
		t.Fatalf("offset %v, want elsewhere", back.Offset())
	}
	if _, ok := back.Offset().Minutes(); ok {
		t.Fatal("elsewhere offset must not report minutes")
	}
}

func TestAppendBinaryAppends(t *testing.T) {
	d := mustDate(t, 1983, 1, 15)
	prefix := []byte{0xAA, 0xBB}
	out, err := d.AppendBinary(prefix)
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte{0xAA, 0xBB}, unhex(t, "8f7e0e")...)
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x, want %x", out, want)
	}
}

func TestUnmarshalBinary(t *testing.T) {
	var d Date
	if err := d.UnmarshalBinary(unhex(t, "8f7e0e")); err != nil {
		t.Fatal(err)
	}
	if d.Year() != 1983 || d.Month() != 1 || d.Day() != 15 {
		t.Fatalf("got %d-%d-%d", d.Year(), d.Month(), d.Day())
	}

	// Typed slice decoders accept trailing bytes; UnmarshalBinary does not.
	if _, err := DecodeDate(unhex(t, "8f7e0eff")); err != nil {
		t.Fatal(err)
	}
	if err := d.UnmarshalBinary(unhex(t, "8f7e0eff")); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("got %v, want ErrTrailingBytes", err)
	}

	var dts DateTimeSubsecond
	if err := dts.UnmarshalBinary(unhex(t, "47bf07499307b0")); err != nil {
		t.Fatal(err)
	}
	if dts.Subsecond().Magnitude() != 123 {
		t.Fatalf("subsecond %v", dts.Subsecond())
	}
	if err := dts.UnmarshalBinary(unhex(t, "47bf07499307b000")); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("got %v, want ErrTrailingBytes", err)
	}
}

func TestDecodeDispatch(t *testing.T) {
	for _, v := range sampleValues(t) {
		b, err := v.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		got, err := Decode(b)
		if err != nil {
			t.Fatalf("%v: %v", v.Kind(), err)
		}
		if diff := cmp.Diff(v, got, cmpOpts); diff != "" {
			t.Fatalf("%v mismatch (-want +got):\n%s", v.Kind(), diff)
		}
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindDate:                    "Date",
		KindTime:                    "Time",
		KindDateTime:                "DateTime",
		KindDateTimeOffset:          "DateTimeOffset",
		KindDateTimeSubsecond:       "DateTimeSubsecond",
		KindDateTimeSubsecondOffset: "DateTimeSubsecondOffset",
		Kind(99):                    "Kind(99)",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Fatalf("got %q, want %q", k.String(), want)
		}
	}
	if Precision(99).String() != "Precision(99)" {
		t.Fatal("unexpected Precision string")
	}
}

func TestStrings(t *testing.T) {
	if s := mustOffset(t, 330).String(); s != "+05:30" {
		t.Fatalf("got %q", s)
	}
	if s := mustOffset(t, -150).String(); s != "-02:30" {
		t.Fatalf("got %q", s)
	}
	if s := OffsetElsewhere().String(); s != "elsewhere" {
		t.Fatalf("got %q", s)
	}
	if s := OffsetUnspecified().String(); s != "unspecified" {
		t.Fatalf("got %q", s)
	}
	if s := mustMicros(t, 42).String(); s != ".000042" {
		t.Fatalf("got %q", s)
	}
	if s := (FracSecond{}).String(); s != "" {
		t.Fatalf("got %q", s)
	}
}
