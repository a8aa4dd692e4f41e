package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		check   func(t *testing.T, out string)
	}{
		{
			name: "defaults to text at info",
			cfg:  Config{},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "msg=hello")
				assert.Contains(t, out, "round=3")
				assert.NotContains(t, out, "hidden")
			},
		},
		{
			name: "json",
			cfg:  Config{Level: "debug", Format: "json"},
			check: func(t *testing.T, out string) {
				lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
				require.Len(t, lines, 2)

				var rec map[string]any
				require.NoError(t, json.Unmarshal(lines[1], &rec))
				assert.Equal(t, "hello", rec["msg"])
				assert.EqualValues(t, 3, rec["round"])
			},
		},
		{
			name: "error level drops info",
			cfg:  Config{Level: "ERROR"},
			check: func(t *testing.T, out string) {
				assert.Empty(t, out)
			},
		},
		{
			name:    "bad level",
			cfg:     Config{Level: "loud"},
			wantErr: true,
		},
		{
			name:    "bad format",
			cfg:     Config{Format: "xml"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cfg.Output = &buf

			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger.Debug("hidden")
			logger.Info("hello", "round", 3)
			tt.check(t, buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	l := Nop()
	assert.Same(t, l, OrNop(l))
}
