package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestTreeMetrics_Report(t *testing.T) {
	m := &TreeMetrics{TreeInsert: 1_234_567, RotateLeft: 3, RotateRight: 4, DoubleRotate: 1}
	var buf bytes.Buffer
	m.Report(&buf)
	require.Contains(t, buf.String(), "insert: 1,234,567")
	require.Contains(t, buf.String(), "left: 3, right: 4, double: 1")
	require.Equal(t, int64(7), m.Rotations())

	o := &TreeMetrics{TreeInsert: 3, TreeNoop: 2}
	m.Add(o)
	require.Equal(t, int64(1_234_570), m.TreeInsert)
	require.Equal(t, int64(2), m.TreeNoop)

	m.SetZero()
	require.Equal(t, TreeMetrics{}, *m)
}

func TestDepthReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DepthReport(&buf, 3, []int{0, 1, 1, 2, 2, 2, 2}))
	require.Contains(t, buf.String(), "nodes=7 max_depth=2")

	buf.Reset()
	require.NoError(t, DepthReport(&buf, 3, nil))
	require.Empty(t, buf.String())
}

func TestPrometheusProxy(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProxy(reg, "ordset")

	p.IncrCounter(1, "ordset", "tree_insert")
	p.IncrCounter(2, "ordset", "tree_insert")
	p.IncrCounter(1, "ordset", "rotate_left")
	p.SetGauge(42, "ordset", "tree_size")
	p.MeasureSince(time.Now(), "ordset", "tree_insert")

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	ops := byName["ordset_operations_total"]
	require.NotNil(t, ops)
	counts := map[string]float64{}
	for _, m := range ops.GetMetric() {
		counts[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	require.Equal(t, map[string]float64{"tree_insert": 3, "rotate_left": 1}, counts)

	state := byName["ordset_state"]
	require.NotNil(t, state)
	require.Len(t, state.GetMetric(), 1)
	require.Equal(t, "tree_size", state.GetMetric()[0].GetLabel()[0].GetValue())
	require.Equal(t, float64(42), state.GetMetric()[0].GetGauge().GetValue())

	durations := byName["ordset_operation_duration_seconds"]
	require.NotNil(t, durations)
	require.Equal(t, uint64(1), durations.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestOpName(t *testing.T) {
	require.Equal(t, "tree_insert", opName([]string{"ordset", "tree_insert"}))
	require.Equal(t, "rotate_left_double", opName([]string{"ordset", "rotate_left", "double"}))
	require.Equal(t, "single", opName([]string{"single"}))
}
