package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/argb"
)

var _ argb.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f argb.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f argb.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f argb.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f argb.Fields) { l.with(f).Error(msg) }

func (l LogrusLogger) with(f argb.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
