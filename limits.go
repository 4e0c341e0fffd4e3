package temporenc

// Limits bound what DecodeBlock will allocate and what EncodeBlock will
// produce. A zero field means the default for that field.
type Limits struct {
	MaxBlockLen     uint64 // payload bytes as stored in the block
	MaxUncompressed uint64 // payload bytes after decompression
	MaxValues       int    // values per block
}

func defaultLimits() Limits {
	return Limits{
		MaxBlockLen:     1 << 30,   // 1 GiB stored payload cap
		MaxUncompressed: 256 << 20, // 256 MiB
		MaxValues:       10_000_000,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxBlockLen == 0 {
		l.MaxBlockLen = d.MaxBlockLen
	}
	if l.MaxUncompressed == 0 {
		l.MaxUncompressed = d.MaxUncompressed
	}
	if l.MaxValues == 0 {
		l.MaxValues = d.MaxValues
	}
	return l
}
