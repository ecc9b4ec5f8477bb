package encoder

import (
	"fmt"
	"testing"
)

func BenchmarkEncode_Verbatim(b *testing.B) {
	s := "http://localhost/foo/bar.html?fizz=buzz#readme"
	for i := 0; i < b.N; i++ {
		_ = Encode(s)
	}
}

func BenchmarkEncode_Full(b *testing.B) {
	s := "http://localhost/some path/café?q=%20x&r=%zz"
	for i := 0; i < b.N; i++ {
		_ = Encode(s)
	}
}

func BenchmarkEncoder_Encode_Hit(b *testing.B) {
	e := newTestEncoder(b, DefaultConfig())
	s := "http://localhost/some path/café"
	e.Encode(s)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Encode(s)
	}
}

func BenchmarkEncoder_Encode_Churn(b *testing.B) {
	e := newTestEncoder(b, DefaultConfig())
	inputs := make([]string, 400)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("/item %d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Encode(inputs[i%len(inputs)])
	}
}

func BenchmarkEncoder_Encode_Parallel(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Shards = 8
	e := newTestEncoder(b, cfg)
	inputs := make([]string, 64)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("/p %d", i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = e.Encode(inputs[i%len(inputs)])
			i++
		}
	})
}
