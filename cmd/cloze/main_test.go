package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/panjuncai/Sola-sub000/internal/cli"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		want       int
		wantStderr string
	}{
		{name: "success", err: nil, want: 0},
		{name: "incorrect attempt", err: fmt.Errorf("compare: %w", cli.ErrIncorrect), want: 1},
		{name: "other error", err: errors.New("config: bad yaml"), want: 2, wantStderr: "error: config: bad yaml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			assert.Equal(t, tt.want, exitCode(&stderr, tt.err))
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}
