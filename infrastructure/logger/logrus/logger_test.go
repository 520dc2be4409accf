package logrus

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_LevelParsing(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
	}{
		{"debug", true},
		{"info", false},
		{"nonsense", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(tt.level, "text")
			var buf bytes.Buffer
			logger.log.SetOutput(&buf)

			logger.Debug("probe", nil)

			got := buf.Len() > 0
			if got != tt.wantDebug {
				t.Errorf("debug emitted = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestLogger_JSONFormatWithFields(t *testing.T) {
	logger := New("info", "json")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Info("page clipped", map[string]interface{}{"space_id": "s1"})

	line := buf.String()
	if !strings.Contains(line, `"space_id":"s1"`) {
		t.Errorf("fields not in JSON output: %q", line)
	}
	if !strings.Contains(line, `"msg":"page clipped"`) {
		t.Errorf("message not in JSON output: %q", line)
	}
}

func TestLogger_NilFields(t *testing.T) {
	logger := New("info", "text")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Warn("no fields", nil)

	if !strings.Contains(buf.String(), "no fields") {
		t.Errorf("message missing: %q", buf.String())
	}
}
