package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. В GIN_MODE=release пишет JSON уровня info, иначе текст уровня debug.
// LOG_LEVEL переопределяет уровень в обоих режимах.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// перезаписываем ряд настроек для окружений отличных от продакшн
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			l.WithError(err).Warnf("unknown LOG_LEVEL %q, keeping %s", raw, l.GetLevel())
		} else {
			l.SetLevel(level)
		}
	}

	return l
}
