package tensor

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func BenchmarkCreation(b *testing.B) {
	shapes := [][]int{{10, 10}, {100, 100}, {1000, 1000}}

	for _, shape := range shapes {
		b.Run(fmt.Sprintf("New_%v", shape), func(b *testing.B) {
			for b.Loop() {
				_, _ = New[float32](shape...)
			}
		})
	}
}

func BenchmarkElementWise(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	x := Must(Random(rng, Uniform[float32](-1, 1), 512, 512))
	y := Must(Random(rng, Uniform[float32](-1, 1), 512, 512))
	xv := Must(x.View(All(), Span(0, 255)))
	yv := Must(y.View(All(), Span(256, 511)))

	b.Run("Continuous", func(b *testing.B) {
		for b.Loop() {
			_, _ = Add(x, y)
		}
	})
	b.Run("Strided", func(b *testing.B) {
		for b.Loop() {
			_, _ = Add(xv, yv)
		}
	})
}

func BenchmarkIterator(b *testing.B) {
	m := Must(New[float64](64, 64, 64))
	v := Must(m.View(Span(1, 62), Span(1, 62), Span(1, 62)))

	b.Run("Values", func(b *testing.B) {
		for b.Loop() {
			var sum float64
			for x := range v.Values() {
				sum += x
			}
			_ = sum
		}
	})
	b.Run("Advance", func(b *testing.B) {
		for b.Loop() {
			it := v.Begin()
			for it.Advance(97) == nil {
				if _, err := it.Value(); err != nil {
					break
				}
			}
		}
	})
}

func BenchmarkMatMul(b *testing.B) {
	sizes := []int{32, 128, 256}
	rng := rand.New(rand.NewPCG(2, 2))

	for _, n := range sizes {
		x := Must(Random(rng, Uniform(-1.0, 1.0), n, n))
		y := Must(Random(rng, Uniform(-1.0, 1.0), n, n))
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for b.Loop() {
				_, _ = MatMul(x, y)
			}
		})
	}
}

func BenchmarkReshapeTranspose(b *testing.B) {
	m := Must(New[float32](256, 256))

	b.Run("Reshape", func(b *testing.B) {
		for b.Loop() {
			_ = m.Reshape(128, 512)
			_ = m.Reshape(256, 256)
		}
	})
	b.Run("Transposed", func(b *testing.B) {
		for b.Loop() {
			_, _ = m.Transposed()
		}
	})
}

func BenchmarkAccess(b *testing.B) {
	m := Must(New[float32](100, 100))

	b.Run("At", func(b *testing.B) {
		for b.Loop() {
			_, _ = m.At(50, 50)
		}
	})
	b.Run("Set", func(b *testing.B) {
		for b.Loop() {
			_ = m.Set(1, 50, 50)
		}
	})
}
