package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dyyynamic/sort-visualizer/internal/logging"
	"github.com/Dyyynamic/sort-visualizer/types"
)

func TestNewPrometheus_Defaults(t *testing.T) {
	p := NewPrometheus(nil, "")

	require.Equal(t, prometheus.DefaultRegisterer, p.reg)
	require.Equal(t, "sortvis", p.namespace)
}

func TestPrometheusCollector_LazyRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewPrometheus(reg, "test")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families, "nothing is registered before first use")
}

func TestPrometheusCollector_RecordsRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordRunCompleted(types.AlgorithmBubble, 5, 10, 40, 0.02)
	p.RecordRunCompleted(types.AlgorithmBubble, 5, 10, 36, 0.01)
	p.RecordRunCancelled(types.AlgorithmQuick)
	p.RecordIntegrityViolation(types.AlgorithmMerge)
	p.RecordVerifyDuration(0.003)
	p.RecordSubscriberDropped()
	p.RecordPhaseTransition(types.PhaseSorting, types.PhaseSorted, 0.5)

	assert.InDelta(t, 2, testutil.ToFloat64(p.runsCompleted.WithLabelValues("bubble")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.runsCancelled.WithLabelValues("quick")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.integrityFailures.WithLabelValues("merge")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.subscriberDrops), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.phaseTransitions.WithLabelValues("sorting", "sorted")), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(p.runSize), 0)

	count, err := testutil.GatherAndCount(reg, "test_run_comparisons")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestServer_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")
	p.RecordRunCancelled(types.AlgorithmSelection)

	srv := httptest.NewServer(NewServer(":0", reg, logging.NewTest(t)).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "OK\n", string(body))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	require.Contains(t, string(body), `test_run_cancelled_total{algorithm="selection"} 1`)
}

func TestServer_StartStopsOnCancel(t *testing.T) {
	srv := NewServer("127.0.0.1:0", prometheus.NewRegistry(), logging.NewTest(t))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_StartListenError(t *testing.T) {
	srv := NewServer("invalid-address", prometheus.NewRegistry(), logging.NewNop())

	err := srv.Start(context.Background())
	require.Error(t, err)
}
