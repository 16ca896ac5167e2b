// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{Enabled: false, AppName: "counter-cli"})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "Driver.Run")
	require.False(span.SpanContext().IsValid())
	span.End()

	require.NoError(tracer.Close())
}

func TestEnabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{
		Enabled:         true,
		TraceSampleRate: 1,
		AppName:         "counter-cli",
		Agent:           "counter-cli",
		Version:         "test",
	})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "Driver.Run")
	require.True(span.SpanContext().IsValid())
	span.End()

	// No collector is listening, so the flush on close may report an export
	// failure.
	_ = tracer.Close()
}
