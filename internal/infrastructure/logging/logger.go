// Package logging はロギング機能を提供します
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// LogrusLogger はlogrusでログを出力するロガーです
type LogrusLogger struct {
	logger *logrus.Logger
}

// NewJSONLogger はJSONフォーマットで出力するロガーを作成します
func NewJSONLogger(writer io.Writer) *LogrusLogger {
	return newLogger(writer, &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
}

// NewTextLogger はテキストフォーマットで出力するロガーを作成します
func NewTextLogger(writer io.Writer) *LogrusLogger {
	return newLogger(writer, &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func newLogger(writer io.Writer, formatter logrus.Formatter) *LogrusLogger {
	if writer == nil {
		writer = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(writer)
	l.SetFormatter(formatter)
	l.SetLevel(logrus.InfoLevel)
	return &LogrusLogger{logger: l}
}

// SetDebug はDEBUGレベルの出力を切り替えます
func (l *LogrusLogger) SetDebug(enabled bool) {
	if enabled {
		l.logger.SetLevel(logrus.DebugLevel)
		return
	}
	l.logger.SetLevel(logrus.InfoLevel)
}

// Log はメッセージを指定レベルで出力します
func (l *LogrusLogger) Log(level, message string, err error) {
	e := logrus.NewEntry(l.logger)
	if err != nil {
		e = e.WithError(err)
	}
	e.Log(parseLevel(level), message)
}

func parseLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn, "WARNING":
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
