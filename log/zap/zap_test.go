package zap

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/argb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}

	l.Debug("d", argb.Fields{"b": 2, "a": 1})
	l.Info("i", nil)
	l.Warn("w", argb.Fields{"err": errors.New("boom")})
	l.Error("e", argb.Fields{"name": "Background"})

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("entries=%d", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Fatalf("entry %d level=%v want %v", i, e.Level, wantLevels[i])
		}
	}
	if f := entries[0].Context; len(f) != 2 || f[0].Key != "a" || f[1].Key != "b" {
		t.Fatalf("fields not sorted: %+v", f)
	}
	if m := entries[2].ContextMap(); m["err"] != "boom" {
		t.Fatalf("error field=%v", m["err"])
	}
}
