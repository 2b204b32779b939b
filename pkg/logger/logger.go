package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger — интерфейс журналирования прогонов синхронизации.
type Logger interface {
	Log(format string, v ...interface{})
	FatalLog(format string, v ...interface{})
	SetPrefix(prefix string)
}

// BaseLogger пишет в заданный writer и дублирует запись в стандартный лог.
// Потокобезопасен, префикс добавляется к каждой записи.
type BaseLogger struct {
	mu     sync.Mutex
	prefix string
	writer io.Writer
}

func NewLogger(writer io.Writer, prefix string) *BaseLogger {
	return &BaseLogger{
		writer: writer,
		prefix: prefix,
	}
}

func (l *BaseLogger) Log(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(format, v...)
}

// FatalLog записывает сообщение и завершает процесс.
func (l *BaseLogger) FatalLog(format string, v ...interface{}) {
	l.mu.Lock()
	l.write(format, v...)
	l.mu.Unlock()
	os.Exit(1)
}

func (l *BaseLogger) write(format string, v ...interface{}) {
	message := fmt.Sprintf(l.prefix+" "+format, v...)
	if l.writer != nil {
		fmt.Fprintln(l.writer, message)
	}
	log.Print(message) // дублируем в консоль
}

// WithPrefix возвращает производный логгер с дополненным префиксом.
func (l *BaseLogger) WithPrefix(extraPrefix string) *BaseLogger {
	return &BaseLogger{
		writer: l.writer,
		prefix: l.prefix + " " + extraPrefix,
	}
}

func (l *BaseLogger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}
