package telemetry

import (
	"context"
	"runtime/pprof"
	"strings"
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewProfiler_Disabled(t *testing.T) {
	p, err := NewProfiler(ProfilerConfig{Enabled: false}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, p.IsEnabled())
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())
}

func TestNewProfiler_RequiresAddressAndName(t *testing.T) {
	logger := zaptest.NewLogger(t)

	_, err := NewProfiler(ProfilerConfig{Enabled: true, ApplicationName: "voicewaiter"}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server address is required")

	_, err = NewProfiler(ProfilerConfig{Enabled: true, ServerAddress: "http://localhost:4040"}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application name is required")
}

func TestNewProfiler_RejectsUnknownProfileType(t *testing.T) {
	_, err := NewProfiler(ProfilerConfig{
		Enabled:         true,
		ServerAddress:   "http://localhost:4040",
		ApplicationName: "voicewaiter",
		ProfileTypes:    []string{"cpu", "wall_clock"},
	}, zaptest.NewLogger(t))

	assert.ErrorIs(t, err, ErrUnknownProfileType)
}

func TestParseProfileTypes(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []pyroscope.ProfileType
	}{
		{"empty defaults to cpu", nil, []pyroscope.ProfileType{pyroscope.ProfileCPU}},
		{"case insensitive", []string{"CPU", " Goroutines "}, []pyroscope.ProfileType{pyroscope.ProfileCPU, pyroscope.ProfileGoroutines}},
		{"duplicates collapse", []string{"alloc_space", "alloc_space", "inuse_space"}, []pyroscope.ProfileType{pyroscope.ProfileAllocSpace, pyroscope.ProfileInuseSpace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfileTypes(tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfilerTags(t *testing.T) {
	t.Setenv("HOSTNAME", "pod-1")

	tags := profilerTags(ProfilerConfig{Environment: "production"})

	assert.Equal(t, map[string]string{"env": "production", "hostname": "pod-1"}, tags)
}

func TestWithProfilingLabels(t *testing.T) {
	var route, method string
	var routeOK, requestIDOK bool

	WithProfilingLabels(context.Background(), map[string]string{
		ProfilingLabelRoute:  "/vapi-webhook",
		ProfilingLabelMethod: "POST",
		"request_id":         "req-1",
	}, func(ctx context.Context) {
		route, routeOK = pprof.Label(ctx, ProfilingLabelRoute)
		method, _ = pprof.Label(ctx, ProfilingLabelMethod)
		_, requestIDOK = pprof.Label(ctx, "request_id")
	})

	assert.True(t, routeOK)
	assert.Equal(t, "/vapi-webhook", route)
	assert.Equal(t, "POST", method)
	assert.False(t, requestIDOK)
}

func TestWithProfilingLabels_NoUsableLabelsStillRuns(t *testing.T) {
	called := false
	WithProfilingLabels(context.Background(), map[string]string{"order_id": "o-1", "route": ""}, func(context.Context) {
		called = true
	})
	assert.True(t, called)
}

func TestSanitizeLabels(t *testing.T) {
	long := strings.Repeat("r", MaxLabelValueLength+10)

	pairs := sanitizeLabels(map[string]string{
		"route":     long,
		"method":    "GET",
		"call_id":   "call_1",
		"operation": "",
	})

	require.Len(t, pairs, 4)
	assert.Equal(t, []string{"method", "GET", "route", long[:MaxLabelValueLength]}, pairs)
	assert.Nil(t, sanitizeLabels(nil))
}
