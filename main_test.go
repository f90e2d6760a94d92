package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimt/go-whitted-raytracer/pkg/renderer"
)

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

func TestRunBenchmark(t *testing.T) {
	tests := []struct {
		name        string
		scene       string
		width       int
		expectError bool
	}{
		{"mirror-room renders", "mirror-room", 32, false},
		{"glass renders", "glass", 32, false},
		{"normals renders", "normals", 32, false},
		{"unknown scene", "nonexistent", 32, true},
		{"invalid dimensions", "mirror-room", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runBenchmark(tt.scene, tt.width, 32, 2, 2, 1.0, 1.0, discardLogger{})
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunBenchmark_InvalidToneMapping(t *testing.T) {
	err := runBenchmark("normals", 32, 32, 1, 1, 0, 1.0, discardLogger{})
	require.Error(t, err)

	// Matches the renderer's own config validation
	_, rendererErr := renderer.NewRenderer(renderer.Config{Exposure: 0, Gamma: 1}, nil)
	assert.Error(t, rendererErr)
}
