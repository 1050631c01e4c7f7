package view

import (
	"testing"

	"github.com/arloliu/colview/buffer"
	"github.com/arloliu/colview/dtype"
)

const benchLen = 1 << 14

func BenchmarkValue_Int64(b *testing.B) {
	values := make([]int64, benchLen)
	for i := range values {
		values[i] = int64(i)
	}
	v, err := New[int64, dtype.Int64](buffer.FromSlice(values), benchLen)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	var sum int64
	for b.Loop() {
		for i := range benchLen {
			x, _ := v.Value(i)
			sum += x
		}
	}
	_ = sum
}

func BenchmarkValueUnchecked_Int64(b *testing.B) {
	values := make([]int64, benchLen)
	for i := range values {
		values[i] = int64(i)
	}
	v, err := New[int64, dtype.Int64](buffer.FromSlice(values), benchLen)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	var sum int64
	for b.Loop() {
		for i := range benchLen {
			sum += v.ValueUnchecked(i)
		}
	}
	_ = sum
}

func BenchmarkValue_Boolean(b *testing.B) {
	values := make([]bool, benchLen)
	for i := range values {
		values[i] = i%3 == 0
	}
	v, err := New[bool, dtype.Boolean](buffer.Wrap(buffer.PackBools(values)), benchLen)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	var count int
	for b.Loop() {
		for i := range benchLen {
			if x, _ := v.Value(i); x {
				count++
			}
		}
	}
	_ = count
}

func BenchmarkAll_Float64(b *testing.B) {
	values := make([]float64, benchLen)
	for i := range values {
		values[i] = float64(i) / 3
	}
	v, err := New[float64, dtype.Float64](buffer.FromSlice(values), benchLen)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	var sum float64
	for b.Loop() {
		for _, x := range v.All() {
			sum += x
		}
	}
	_ = sum
}
