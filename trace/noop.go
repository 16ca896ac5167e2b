// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import oteltrace "go.opentelemetry.io/otel/trace"

var _ Tracer = (*noOpTracer)(nil)

// noOpTracer is an implementation of Tracer that does nothing.
type noOpTracer struct {
	oteltrace.Tracer
}

func (noOpTracer) Close() error {
	return nil
}
