package temporenc

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

type writeConfig struct {
	limits      Limits
	compression Compression
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithBlockCompression selects the payload compression for EncodeBlock.
// The default is CompZSTD.
func WithBlockCompression(comp Compression) WriteOption {
	return func(c *writeConfig) { c.compression = comp }
}
