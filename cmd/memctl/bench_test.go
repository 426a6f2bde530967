package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memcore/internal/config"
)

func TestBenchCommand(t *testing.T) {
	for _, backend := range []string{config.BackendHeap, config.BackendManual} {
		t.Run(backend, func(t *testing.T) {
			resetFlags(t)
			jsonOut = true
			benchN, benchBackend = 1000, backend

			out, err := captureOutput(t, runBench)
			require.NoError(t, err)

			var res benchResult
			decodeJSON(t, out, &res)
			assert.Equal(t, backend, res.Backend)
			assert.Equal(t, 500, res.Allocated)
			assert.Equal(t, "1024", res.Capacity)
			assert.GreaterOrEqual(t, res.PeakAllocs, 500)
			assert.Zero(t, res.LeakedAllocs)
		})
	}
}

func TestBenchCommand_Text(t *testing.T) {
	resetFlags(t)
	benchN, benchBackend = 10, config.BackendHeap
	out, err := captureOutput(t, runBench)
	require.NoError(t, err)
	assert.Contains(t, out, "Bench (heap backend, n=10)")
	assert.Contains(t, out, "Leaked system allocations: 0")
}

func TestBenchCommand_Invalid(t *testing.T) {
	resetFlags(t)
	benchN, benchBackend = 10, "arena"
	_, err := captureOutput(t, runBench)
	require.ErrorIs(t, err, config.ErrInvalid)

	benchN, benchBackend = 0, config.BackendHeap
	_, err = captureOutput(t, runBench)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestBenchCommand_DefaultsFromConfig(t *testing.T) {
	resetFlags(t)
	rootCmd.SetArgs([]string{"bench", "--json", "--config", writeTestConfig(t, "[bench]\nn = 20\n[alloc]\nbackend = \"manual\"\n")})
	defer rootCmd.SetArgs(nil)

	out, err := captureOutput(t, rootCmd.Execute)
	require.NoError(t, err)
	var res benchResult
	decodeJSON(t, out, &res)
	assert.Equal(t, 20, res.N)
	assert.Equal(t, config.BackendManual, res.Backend)
}
