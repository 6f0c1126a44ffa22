package gizmo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger_Levels(t *testing.T) {
	tests := []struct {
		level Level
		want  []string
	}{
		{level: LevelDebug, want: []string{"DEBUG: d", "INFO: i", "WARN: w", "ERROR: e"}},
		{level: LevelInfo, want: []string{"INFO: i", "WARN: w", "ERROR: e"}},
		{level: LevelWarn, want: []string{"WARN: w", "ERROR: e"}},
		{level: LevelError, want: []string{"ERROR: e"}},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWriterLogger(&buf, "", tt.level)
			l.Debugf("d")
			l.Infof("i")
			l.Warnf("w")
			l.Errorf("e")

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, len(tt.want))
			for i, want := range tt.want {
				assert.True(t, strings.HasSuffix(lines[i], want), "line %q", lines[i])
			}
		})
	}
}

func TestWriterLogger_PrefixAndSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "gizmo", LevelInfo)
	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.Level())
	l.Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "[gizmo] DEBUG: shown 2")
}

func TestEnableCursorWrap_WarnsWithoutWarper(t *testing.T) {
	log := &recordingLogger{}
	g, err := New(newTestRegistry(t), Options{Logger: log})
	require.NoError(t, err)

	g.EnableCursorWrap(true)
	assert.Len(t, log.warnings, 1)

	g.SetCursorWarper(&recordingWarper{})
	g.EnableCursorWrap(true)
	g.EnableCursorWrap(false)
	assert.Len(t, log.warnings, 1)
}
