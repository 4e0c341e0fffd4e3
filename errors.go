package temporenc

import "errors"

var (
	// Value codec errors.
	ErrFieldRange      = errors.New("temporenc: field value out of range")
	ErrTruncated       = errors.New("temporenc: truncated input")
	ErrUnrecognizedTag = errors.New("temporenc: unrecognized type tag")
	ErrReservedValue   = errors.New("temporenc: reserved field bit pattern")
	ErrSubsecondRange  = errors.New("temporenc: sub-second magnitude out of range")
	ErrTrailingBytes   = errors.New("temporenc: trailing bytes after encoded value")

	// Block container errors.
	ErrInvalidMagic       = errors.New("temporenc: invalid block magic")
	ErrUnsupportedVersion = errors.New("temporenc: unsupported block version")
	ErrInvalidBlock       = errors.New("temporenc: invalid block header")
	ErrInvalidPayload     = errors.New("temporenc: invalid block payload")
	ErrLimitExceeded      = errors.New("temporenc: limit exceeded")
)
