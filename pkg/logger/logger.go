package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
)

// LogLevel определяет уровень важности сообщения
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// Цветовые коды для вывода в консоль
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	purple = "\033[35m"
)

var levelNames = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// Logger кастомный леверованный логгер с указанием места вызова
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	output io.Writer
}

// New создает новый экземпляр логгера
func New(level LogLevel) *Logger {
	return &Logger{
		level:  level,
		output: os.Stdout,
	}
}

// getCallerInfo возвращает файл и строку вызова
func getCallerInfo(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}

	// Оставляем только последние компоненты пути
	parts := strings.Split(file, "/")
	if len(parts) > 3 {
		file = strings.Join(parts[len(parts)-3:], "/")
	}

	return file, line
}

// colorForLevel возвращает цвет для уровня логирования
func colorForLevel(level LogLevel) string {
	switch level {
	case DEBUG:
		return blue
	case INFO:
		return green
	case WARN:
		return yellow
	case ERROR:
		return red
	case FATAL:
		return purple
	default:
		return reset
	}
}

// log пишет отформатированное сообщение
func (l *Logger) log(level LogLevel, msg string) {
	if level < l.level {
		return
	}

	// Пропускаем 3 кадра стека до реального вызывающего
	file, line := getCallerInfo(3)

	color := colorForLevel(level)

	logEntry := fmt.Sprintf("%s[%s]%s %s:%d - %s\n",
		color,
		levelNames[level],
		reset,
		file,
		line,
		msg,
	)

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprint(l.output, logEntry)

	if level == FATAL {
		os.Exit(1)
	}
}

// Debug логирует отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(DEBUG, fmt.Sprintf(format, v...))
}

// Info логирует информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(INFO, fmt.Sprintf(format, v...))
}

// Warn логирует предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(WARN, fmt.Sprintf(format, v...))
}

// Error логирует сообщение об ошибке
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(ERROR, fmt.Sprintf(format, v...))
}

// Fatal логирует фатальную ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(FATAL, fmt.Sprintf(format, v...))
}

// formatKeyvals собирает пары ключ-значение в строку "key=value"
func formatKeyvals(msg string, keyvals ...interface{}) string {
	if len(keyvals) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprintf("%v", keyvals[i])
		var value interface{} = "(MISSING)"
		if i+1 < len(keyvals) {
			value = keyvals[i+1]
		}
		b.WriteString(fmt.Sprintf(" %s=%v", key, value))
	}
	return b.String()
}

// Debugw логирует отладочное сообщение с парами ключ-значение
func (l *Logger) Debugw(msg string, keyvals ...interface{}) {
	l.log(DEBUG, formatKeyvals(msg, keyvals...))
}

// Infow логирует информационное сообщение с парами ключ-значение
func (l *Logger) Infow(msg string, keyvals ...interface{}) {
	l.log(INFO, formatKeyvals(msg, keyvals...))
}

// Warnw логирует предупреждение с парами ключ-значение
func (l *Logger) Warnw(msg string, keyvals ...interface{}) {
	l.log(WARN, formatKeyvals(msg, keyvals...))
}

// Errorw логирует ошибку с парами ключ-значение
func (l *Logger) Errorw(msg string, keyvals ...interface{}) {
	l.log(ERROR, formatKeyvals(msg, keyvals...))
}

// Fatalw логирует фатальную ошибку с парами ключ-значение и завершает процесс
func (l *Logger) Fatalw(msg string, keyvals ...interface{}) {
	l.log(FATAL, formatKeyvals(msg, keyvals...))
}
