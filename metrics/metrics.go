package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/dustin/go-humanize"
)

// Proxy receives operation counters, gauges and timings from a tree.
type Proxy interface {
	IncrCounter(val float32, keys ...string)
	SetGauge(val float32, keys ...string)
	MeasureSince(start time.Time, keys ...string)
}

type TreeMetrics struct {
	PoolGet    int64
	PoolReuse  int64
	PoolReturn int64

	TreeInsert int64
	TreeDelete int64
	TreeNoop   int64

	RotateLeft   int64
	RotateRight  int64
	DoubleRotate int64
}

// Rotations returns the number of single rotations performed. A double
// rotation counts as two.
func (m *TreeMetrics) Rotations() int64 {
	return m.RotateLeft + m.RotateRight
}

func (m *TreeMetrics) Report(w io.Writer) {
	fmt.Fprintf(w, "Pool:\n gets: %s, reuses: %s, returns: %s\n",
		humanize.Comma(m.PoolGet),
		humanize.Comma(m.PoolReuse),
		humanize.Comma(m.PoolReturn),
	)

	fmt.Fprintf(w, "\nTree:\n insert: %s, delete: %s, noop: %s\n",
		humanize.Comma(m.TreeInsert),
		humanize.Comma(m.TreeDelete),
		humanize.Comma(m.TreeNoop))

	fmt.Fprintf(w, "\nRotations:\n left: %s, right: %s, double: %s\n",
		humanize.Comma(m.RotateLeft),
		humanize.Comma(m.RotateRight),
		humanize.Comma(m.DoubleRotate))
}

func (m *TreeMetrics) Add(o *TreeMetrics) {
	m.PoolGet += o.PoolGet
	m.PoolReuse += o.PoolReuse
	m.PoolReturn += o.PoolReturn
	m.TreeInsert += o.TreeInsert
	m.TreeDelete += o.TreeDelete
	m.TreeNoop += o.TreeNoop
	m.RotateLeft += o.RotateLeft
	m.RotateRight += o.RotateRight
	m.DoubleRotate += o.DoubleRotate
}

func (m *TreeMetrics) SetZero() {
	*m = TreeMetrics{}
}

// DepthReport writes a histogram of node depths to w.
func DepthReport(w io.Writer, bins int, depths []int) error {
	if len(depths) == 0 || bins <= 0 {
		return nil
	}
	var (
		histData = make([]float64, len(depths))
		deepest  int
	)
	for i, d := range depths {
		histData[i] = float64(d)
		deepest = max(deepest, d)
	}
	fmt.Fprintf(w, "nodes=%s max_depth=%d\n", humanize.Comma(int64(len(depths))), deepest)

	hist := histogram.Hist(bins, histData)
	return histogram.Fprintf(w, hist, histogram.Linear(10), func(v float64) string {
		return fmt.Sprintf("%.0f", v)
	})
}
