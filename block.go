package temporenc

import (
	"fmt"
	"io"
)

// EncodeBlock writes vals to w as one block: a fixed header followed by
// the back-to-back encodings of the values, optionally compressed.
//
// By default the payload is compressed with Zstandard (CompZSTD) and the
// default [Limits] apply. Use WriteOption functions to customize this
// behavior:
//   - WithBlockCompression(comp): change the payload compression
//   - WithWriteLimits(l): set custom size limits
func EncodeBlock(w io.Writer, vals []Value, opts ...WriteOption) error {
	cfg := writeConfig{limits: defaultLimits(), compression: CompZSTD}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	if len(vals) > cfg.limits.MaxValues {
		return fmt.Errorf("%w: %d values", ErrLimitExceeded, len(vals))
	}
	var raw []byte
	for i, v := range vals {
		if v == nil {
			return fmt.Errorf("%w: value %d is nil", ErrInvalidBlock, i)
		}
		b, err := v.AppendBinary(raw)
		if err != nil {
			return err
		}
		raw = b
	}
	if uint64(len(raw)) > cfg.limits.MaxUncompressed {
		return fmt.Errorf("%w: %d payload bytes", ErrLimitExceeded, len(raw))
	}

	flags, payload, err := compressPayload(cfg.compression, raw)
	if err != nil {
		return err
	}
	if uint64(len(payload)) > cfg.limits.MaxBlockLen {
		return fmt.Errorf("%w: %d stored payload bytes", ErrLimitExceeded, len(payload))
	}

	h := blockHeaderV1{
		Magic:      Magic,
		Version:    VersionV1,
		Flags:      flags,
		ValueCount: uint32(len(vals)),
		PayloadLen: uint64(len(payload)),
	}
	if err := writeBlockHeader(w, h); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// DecodeBlock reads one block from r and returns its values.
//
// The decoding process:
//  1. Reads and validates the 24-byte fixed header
//  2. Reads and decompresses the payload, enforcing size limits
//  3. Decodes exactly the declared number of values
//
// DecodeBlock returns ErrInvalidMagic if the input is not a block,
// ErrUnsupportedVersion if the version is not 1, ErrLimitExceeded if any
// size limit is exceeded, and the value decode errors for a payload that
// does not hold exactly the declared values.
func DecodeBlock(r io.Reader, opts ...ReadOption) ([]Value, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	h, err := readBlockHeader(r)
	if err != nil {
		return nil, err
	}
	if err := validateBlockHeader(h); err != nil {
		return nil, err
	}
	if uint64(h.ValueCount) > uint64(cfg.limits.MaxValues) {
		return nil, fmt.Errorf("%w: %d values", ErrLimitExceeded, h.ValueCount)
	}
	if h.PayloadLen > cfg.limits.MaxBlockLen {
		return nil, fmt.Errorf("%w: %d stored payload bytes", ErrLimitExceeded, h.PayloadLen)
	}

	payload := make([]byte, h.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	raw, err := decompressPayload(h.compression(), h.Flags, payload, cfg.limits.MaxUncompressed)
	if err != nil {
		return nil, err
	}

	// The smallest encoding is 3 bytes, which bounds how many values an
	// honest payload can hold regardless of the declared count.
	capHint := int(h.ValueCount)
	if c := len(raw) / dateLen; capHint > c {
		capHint = c
	}
	vals := make([]Value, 0, capHint)
	for i := 0; i < int(h.ValueCount); i++ {
		v, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		vals = append(vals, v)
		raw = raw[v.EncodedLen():]
	}
	if len(raw) != 0 {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", ErrInvalidPayload, len(raw))
	}
	return vals, nil
}
