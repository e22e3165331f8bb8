package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithTraceID_AssignsOnce(t *testing.T) {
	ctx := WithTraceID(context.Background())

	id := GetTraceID(ctx)
	require.NotEmpty(t, id)
	require.Equal(t, id, GetTraceID(WithTraceID(ctx)))
}

func TestGetTraceID_EmptyWithoutTrace(t *testing.T) {
	require.Empty(t, GetTraceID(context.Background()))
}
