package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithFilePath sets the path the buffer was read from and saves to.
func WithFilePath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// WithReadOnly marks the buffer read-only.
func WithReadOnly(readOnly bool) Option {
	return func(b *Buffer) {
		b.readOnly = readOnly
	}
}
