package temporenc

import "io"

// Encoder writes values one after another to an io.Writer.
type Encoder struct {
	w   io.Writer
	buf [MaxEncodedLen]byte
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the encoding of v.
func (e *Encoder) Encode(v Value) error {
	b, err := v.AppendBinary(e.buf[:0])
	if err != nil {
		return err
	}
	_, err = e.w.Write(b)
	return err
}

// Decoder reads values one after another from an io.Reader.
type Decoder struct {
	r   io.Reader
	buf [MaxEncodedLen]byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the next value. It returns io.EOF when the reader is
// exhausted at a value boundary and io.ErrUnexpectedEOF when it ends
// mid-value.
func (d *Decoder) Decode() (Value, error) {
	if _, err := io.ReadFull(d.r, d.buf[:1]); err != nil {
		return nil, err
	}
	n, err := encodedLenFromFirstByte(d.buf[0])
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(d.r, d.buf[1:n]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return Decode(d.buf[:n])
}
