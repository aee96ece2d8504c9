package xgxopaque

import (
	"errors"
	"io"
	"testing"
)

func BenchmarkConstructors(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Timeout("slow", "idx", i)
	}
}

func BenchmarkWrap(b *testing.B) {
	root := errors.New("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(root, "layer", "idx", i)
	}
}

func BenchmarkClassify_DeepChain(b *testing.B) {
	err := error(Timeout("root"))
	for i := 0; i < 8; i++ {
		err = Wrap(err, "layer")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Classify(err)
	}
}

func BenchmarkFormatChain(b *testing.B) {
	err := error(New("root"))
	for i := 0; i < 8; i++ {
		err = Wrap(err, "layer")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FormatChain(err)
	}
}

func BenchmarkFailWriter_HealthyPath(b *testing.B) {
	fw := NewFailWriter(io.Discard)
	payload := []byte("0123456789abcdef")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fw.Write(payload)
	}
}

func BenchmarkFailWriter_FailedPath(b *testing.B) {
	fw := NewFailWriter(io.Discard)
	fw.err = Wrap(errors.New("boom"), "write failed")
	payload := []byte("0123456789abcdef")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fw.Write(payload)
	}
}
