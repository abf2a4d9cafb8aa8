package tensor

import (
	"fmt"
	"io"
	"strings"
)

// Formatter controls how Print renders a matrix. Axis 0 is printed between
// Open and Close; when it has more than max(MaxItems, FrontItems+BackItems)
// entries only the first FrontItems and last BackItems are shown around
// "...".
type Formatter[T any] struct {
	MaxItems   int
	FrontItems int
	BackItems  int
	Delim      string
	Open       string
	Close      string
	// Recursive applies this formatter to nested axes too; otherwise they
	// use the default formatter.
	Recursive bool
	// Stringify renders one element. Nil uses fmt.Sprint.
	Stringify func(T) string
}

// DefaultFormatter returns the formatter used when none is set.
func DefaultFormatter[T any]() *Formatter[T] {
	return &Formatter[T]{
		MaxItems:   6,
		FrontItems: 3,
		BackItems:  3,
		Delim:      ", ",
		Open:       "[",
		Close:      "]",
	}
}

func (f *Formatter[T]) str(v T) string {
	if f.Stringify != nil {
		return f.Stringify(v)
	}
	return fmt.Sprint(v)
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(s string) {
	if ew.err == nil {
		_, ew.err = io.WriteString(ew.w, s)
	}
}

// Print writes m to w using f, or m's own formatter when f is nil.
// An invalid matrix prints "null".
func (m *Matrix[T]) Print(w io.Writer, f *Formatter[T]) error {
	if f == nil {
		f = m.format
	}
	if f == nil {
		f = DefaultFormatter[T]()
	}
	ew := &errWriter{w: w}
	m.print(ew, f)
	return ew.err
}

func (m *Matrix[T]) print(ew *errWriter, f *Formatter[T]) {
	if !m.IsValid() {
		ew.print("null")
		return
	}

	child := f
	if !f.Recursive {
		child = DefaultFormatter[T]()
	}
	item := func(i int) {
		if len(m.sizes) == 1 {
			ew.print(f.str(m.data[m.offset+i*m.strides[0]]))
			return
		}
		sub := Matrix[T]{
			data:    m.data,
			buf:     m.buf,
			offset:  m.offset + i*m.strides[0],
			sizes:   m.sizes[1:],
			strides: m.strides[1:],
		}
		sub.print(ew, child)
	}

	ew.print(f.Open)
	n := m.sizes[0]
	if n > max(f.MaxItems, f.FrontItems+f.BackItems) {
		for i := 0; i < f.FrontItems; i++ {
			item(i)
			ew.print(f.Delim)
		}
		ew.print("...")
		ew.print(f.Delim)
		for i := n - f.BackItems; i < n; i++ {
			item(i)
			if i != n-1 {
				ew.print(f.Delim)
			}
		}
	} else {
		for i := 0; i < n; i++ {
			item(i)
			if i != n-1 {
				ew.print(f.Delim)
			}
		}
	}
	ew.print(f.Close)
}

// String renders m with its formatter.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_ = m.Print(&sb, nil)
	return sb.String()
}
