package main

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignalContextWindowModeIgnoresSignals(t *testing.T) {
	for _, mode := range []string{"window", "none"} {
		ctx, stop := signalContext(mode)
		require.Nil(t, ctx.Done(), mode)
		stop()
	}
}

func TestSignalContextHTTPModeCancels(t *testing.T) {
	ctx, stop := signalContext("http")
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled by SIGINT")
	}
}
