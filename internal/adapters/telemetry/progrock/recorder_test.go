package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/appinfo/internal/adapters/telemetry/progrock"
)

func TestRecorderRendersVertexLifecycle(t *testing.T) {
	var buf bytes.Buffer
	rec := progrock.NewRecorder(progrock.NewStatusPrinter(&buf))

	_, span := rec.Start(context.Background(), "metadata.fetch")
	_, err := span.Write([]byte("resolving manifest\n"))
	require.NoError(t, err)
	span.SetAttribute("package_name", "com.example.app")
	span.End()
	require.NoError(t, rec.Close())

	out := buf.String()
	assert.Contains(t, out, "=> metadata.fetch")
	assert.Contains(t, out, "=> metadata.fetch done")
	assert.Contains(t, out, "resolving manifest")
	assert.Contains(t, out, "package_name=com.example.app")
}

func TestRecorderReportsSpanError(t *testing.T) {
	var buf bytes.Buffer
	rec := progrock.NewRecorder(progrock.NewStatusPrinter(&buf))

	_, span := rec.Start(context.Background(), "metadata.fetch")
	span.RecordError(errors.New("manifest unreachable"))
	span.End()
	require.NoError(t, rec.Close())

	assert.Contains(t, buf.String(), "=> metadata.fetch error: manifest unreachable")
}
