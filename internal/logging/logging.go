// Package logging настраивает logrus по конфигурации сервиса.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New создаёт логгер с заданным уровнем и форматом ("json" или "text").
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log, nil
}

// Discard возвращает логгер, который ничего не пишет; нужен в тестах.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
