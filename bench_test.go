package koch

import (
	"fmt"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	for _, depth := range []int{4, 6, 8} {
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Generate(depth, 2.0)
			}
		})
	}
}

func BenchmarkExtractHalf(b *testing.B) {
	boundary := Generate(6, 2.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ExtractHalf(boundary, HalfLower)
	}
}

func BenchmarkRender(b *testing.B) {
	r := NewRenderer()
	r.Size = 600
	p := DefaultParams()
	boundary := Generate(p.Depth, p.Scale)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(boundary, p); err != nil {
			b.Fatalf("failed rendering benchmark image: %v", err)
		}
	}
}
