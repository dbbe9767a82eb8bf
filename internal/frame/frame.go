package frame

import (
	"bytes"
	"fmt"
	"time"
)

const (
	headerSize = 2
	recordSize = 4
)

// Frame is one rendered image of a Geometry, stored in its wire format:
//
//	byte 0      width
//	byte 1      height
//	2 + i*4 +0  marker (0xE1 once set, 0x00 otherwise)
//	        +1  blue
//	        +2  green
//	        +3  red
//
// The buffer length is fixed at Count()*4+2 for the frame's lifetime.
type Frame struct {
	Geometry Geometry
	Num      int
	Time     time.Duration

	data []byte
}

// Size returns the byte length of a frame of geometry g.
func Size(g Geometry) int {
	return g.Count()*recordSize + headerSize
}

func New(g Geometry, num int, t time.Duration) *Frame {
	f := &Frame{
		Geometry: g,
		Num:      num,
		Time:     t,
		data:     make([]byte, Size(g)),
	}
	f.data[0] = headerByte(g.Width)
	f.data[1] = headerByte(g.Height)
	return f
}

func headerByte(v int) byte {
	if v > MaxDimension {
		return MaxDimension
	}
	return byte(v)
}

// Decode rebuilds a frame from its wire bytes. The slice is copied.
func Decode(data []byte) (*Frame, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedData, len(data))
	}
	g, err := NewGeometry(int(data[0]), int(data[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if len(data) != Size(g) {
		return nil, fmt.Errorf("%w: %d bytes for %s, want %d", ErrMalformedData, len(data), g, Size(g))
	}
	f := &Frame{Geometry: g, data: make([]byte, len(data))}
	copy(f.data, data)
	return f, nil
}

// Clone returns an independent byte-for-byte copy.
func (f *Frame) Clone() *Frame {
	c := &Frame{
		Geometry: f.Geometry,
		Num:      f.Num,
		Time:     f.Time,
		data:     make([]byte, len(f.data)),
	}
	copy(c.data, f.data)
	return c
}

// Data returns the underlying wire buffer. Callers must not resize it.
func (f *Frame) Data() []byte { return f.data }

func (f *Frame) Count() int { return f.Geometry.Count() }

func (f *Frame) offset(i int) (int, error) {
	if i < 0 || i >= f.Geometry.Count() {
		return 0, fmt.Errorf("%w: index %d of %d", ErrIndexOutOfRange, i, f.Geometry.Count())
	}
	return headerSize + i*recordSize, nil
}

// Set writes c at (x, y).
func (f *Frame) Set(x, y int, c Color) error {
	i, err := f.Geometry.Index(x, y)
	if err != nil {
		return err
	}
	return f.SetIndex(i, c)
}

// SetIndex writes c at linear index i. Channels absent from c keep their
// current byte; the marker is written regardless.
func (f *Frame) SetIndex(i int, c Color) error {
	p, err := f.offset(i)
	if err != nil {
		return err
	}
	if c.Has(Red) {
		f.data[p+3] = c.R
	}
	if c.Has(Green) {
		f.data[p+2] = c.G
	}
	if c.Has(Blue) {
		f.data[p+1] = c.B
	}
	f.data[p] = Marker
	return nil
}

func (f *Frame) At(x, y int) (Pixel, error) {
	i, err := f.Geometry.Index(x, y)
	if err != nil {
		return Pixel{}, err
	}
	return f.AtIndex(i)
}

func (f *Frame) AtIndex(i int) (Pixel, error) {
	p, err := f.offset(i)
	if err != nil {
		return Pixel{}, err
	}
	return Pixel{
		R: f.data[p+3],
		G: f.data[p+2],
		B: f.data[p+1],
		A: f.data[p],
	}, nil
}

// Equal reports whether both frames hold identical bytes.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	return bytes.Equal(f.data, o.data)
}

// CopyPixel copies the whole 4-byte record at src[si] to f[di], marker
// included.
func (f *Frame) CopyPixel(di int, src *Frame, si int) error {
	dp, err := f.offset(di)
	if err != nil {
		return err
	}
	sp, err := src.offset(si)
	if err != nil {
		return err
	}
	copy(f.data[dp:dp+recordSize], src.data[sp:sp+recordSize])
	return nil
}
