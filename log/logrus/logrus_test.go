package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/unkn0wn-root/argb"
)

func TestLogrusLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base)}

	l.Debug("deferred", argb.Fields{"to": "packed"})
	l.Error("outage", nil)

	if len(hook.Entries) != 2 {
		t.Fatalf("entries=%d", len(hook.Entries))
	}
	if e := hook.Entries[0]; e.Level != logrus.DebugLevel || e.Data["to"] != "packed" {
		t.Fatalf("first entry=%+v", e)
	}
	if e := hook.LastEntry(); e.Level != logrus.ErrorLevel || e.Message != "outage" {
		t.Fatalf("last entry=%+v", e)
	}
}
