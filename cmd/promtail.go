package main

import (
	"github.com/ic2hrmk/promtail"
	"github.com/sirupsen/logrus"
)

// initPromTail ships every log entry to Loki when LOKI_ADDR is set.
func (a *App) initPromTail() error {
	if a.Config.LokiAddr == "" {
		return nil
	}

	identifiers := map[string]string{
		"instanceId": appName,
	}

	promTail, err := promtail.NewJSONv1Client(a.Config.LokiAddr, identifiers)
	if err != nil {
		return err
	}

	a.PromTail = promTail
	a.Logger.AddHook(&lokiHook{client: promTail})

	return nil
}

type lokiHook struct {
	client promtail.Client
}

func (h *lokiHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *lokiHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		h.client.Errorf("%s", line)
	case logrus.WarnLevel:
		h.client.Warnf("%s", line)
	case logrus.InfoLevel:
		h.client.Infof("%s", line)
	default:
		h.client.Debugf("%s", line)
	}

	return nil
}
