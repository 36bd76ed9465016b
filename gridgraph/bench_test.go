package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/RiPs7/AdventOfCode2023/gridgraph"
)

func benchInput(n int) string {
	row := strings.Repeat(".", n)
	return strings.Repeat(row+"\n", n)
}

// BenchmarkParse measures parsing a 200×200 grid.
func BenchmarkParse(b *testing.B) {
	in := benchInput(200)
	b.ReportAllocs()
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.Parse(in)
	}
}

// BenchmarkToCoreGraph measures conversion of a 100×100 open grid.
func BenchmarkToCoreGraph(b *testing.B) {
	g, err := gridgraph.Parse(benchInput(100))
	if err != nil {
		b.Fatal(err)
	}
	open := func(r rune) bool { return r == '.' }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ToCoreGraph(open)
	}
}
