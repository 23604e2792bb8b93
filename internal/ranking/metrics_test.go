package ranking

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	return testutil.ToFloat64(c)
}

// family returns the gathered metric family called name, or nil.
func family(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestMetrics_Register(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()

	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg), "registering twice must fail")
	assert.Len(t, m.Collectors(), 4)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.incCandidates(OutcomeScored)
		m.incBatches(StatusSuccess)
		m.observeBatch(0.1)
		m.incFallback(ScorerSkills)
	})
}

func TestMetrics_BatchDurationObserved(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.observeBatch(0.02)
	m.observeBatch(0.3)

	assert.Equal(t, 1, testutil.CollectAndCount(m.batchDuration))

	f := family(t, reg, MetricBatchDuration)
	require.NotNil(t, f, "metric %s not gathered", MetricBatchDuration)
	assert.Equal(t, dto.MetricType_HISTOGRAM, f.GetType())
	assert.Equal(t, uint64(2), f.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestMetrics_FallbackLabels(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.incFallback(ScorerCulture)
	m.incFallback(ScorerCulture)
	m.incFallback(ScorerSkills)

	f := family(t, reg, MetricScorerFallbackTotal)
	require.NotNil(t, f)
	require.Len(t, f.GetMetric(), 2)

	got := map[string]float64{}
	for _, metric := range f.GetMetric() {
		for _, label := range metric.GetLabel() {
			got[label.GetValue()] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{ScorerCulture: 2, ScorerSkills: 1}, got)
}

func TestMetrics_UnknownFamilyIsNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, NewMetrics().Register(reg))

	assert.Nil(t, family(t, reg, "does_not_exist"))
}
