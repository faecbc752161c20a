package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		wantErr       bool
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{"info", "console", false, zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", "json", false, zapcore.WarnLevel, zapcore.InfoLevel},
		{"DEBUG", "", false, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"loud", "console", true, 0, 0},
		{"info", "xml", true, 0, 0},
	}
	for _, tt := range tests {
		l, err := New(tt.level, tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q, %q) succeeded", tt.level, tt.format)
			}
			continue
		}
		if err != nil {
			t.Fatalf("New(%q, %q): %v", tt.level, tt.format, err)
		}
		if !l.Core().Enabled(tt.enabled) || l.Core().Enabled(tt.disabled) {
			t.Errorf("New(%q, %q) level gate wrong", tt.level, tt.format)
		}
	}
}
