// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestEnd(t *testing.T) {
	require := require.New(t)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := tp.Tracer("test")

	_, ok := tracer.Start(context.Background(), "ok")
	End(ok, nil)
	_, failed := tracer.Start(context.Background(), "failed")
	End(failed, errors.New("boom"))

	spans := recorder.Ended()
	require.Len(spans, 2)
	require.Equal(codes.Unset, spans[0].Status().Code)
	require.Equal(codes.Error, spans[1].Status().Code)
	require.Equal("boom", spans[1].Status().Description)
	require.Len(spans[1].Events(), 1)
}
