package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions - параметры файлового лога. Пустой Path - вывод в stdout.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

func New(logLevel string, file FileOptions) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})

	log.SetOutput(output(file))

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}

func output(file FileOptions) io.Writer {
	if file.Path == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		Compress:   true,
	}
}
