package strtable_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/graphlib/strtable"
)

func BenchmarkSet(b *testing.B) {
	labels := make([]string, 4096)
	for i := range labels {
		labels[i] = "label-" + strconv.Itoa(i)
	}
	tbl := strtable.New(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tbl.Set(labels[i%len(labels)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = strtable.Hash("org.example.SomeFairlyLongQualifiedName")
	}
}
