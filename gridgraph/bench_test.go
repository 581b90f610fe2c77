package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// BenchmarkNew measures building a full 100×100 lattice.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.New(100, 100); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConnectedRegions measures region discovery on a full lattice.
func BenchmarkConnectedRegions(b *testing.B) {
	gg, err := gridgraph.New(100, 100)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedRegions()
	}
}
