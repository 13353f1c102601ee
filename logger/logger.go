package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type Settings struct {
	Path       string `yaml:"Path"`
	Name       string `yaml:"Name"`
	Ext        string `yaml:"Ext"`
	TimeFormat string `yaml:"TimeFormat"`
	Level      string `yaml:"Level"` // DEBUG/INFO/WARN/ERROR/FATAL，为空时为INFO
}

type Level int32

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

const (
	flags              = log.LstdFlags | log.Lmicroseconds
	defaultCallerDepth = 2
	bufferSize         = 1 << 12
)

var levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if l < DEBUG || l > FATAL {
		return fmt.Sprintf("Level(%d)", int32(l))
	}
	return levelFlags[l]
}

// ParseLevel 解析配置中的日志级别，不区分大小写，空字符串为INFO
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return INFO, nil
	}
	s = strings.ToUpper(s)
	if s == "WARNING" {
		return WARNING, nil
	}
	for i, flag := range levelFlags {
		if flag == s {
			return Level(i), nil
		}
	}
	return INFO, fmt.Errorf("unknown log level: %s", s)
}

type logEntry struct {
	msg  string
	done chan struct{} // 非nil时表示刷新请求
}

// Logger 异步日志：Output把消息放入channel，由后台goroutine写出；低于level的消息直接丢弃
type Logger struct {
	level     atomic.Int32
	out       *log.Logger
	logFile   *os.File
	settings  *Settings
	entryChan chan *logEntry
	entryPool *sync.Pool
	closeOnce sync.Once
	closed    chan struct{}
}

// DefaultLogger 默认日志对象
var DefaultLogger = NewStdoutLogger()

func newLogger(w io.Writer, settings *Settings, logFile *os.File) *Logger {
	logger := &Logger{
		out:       log.New(w, "", flags),
		logFile:   logFile,
		settings:  settings,
		entryChan: make(chan *logEntry, bufferSize),
		entryPool: &sync.Pool{
			New: func() any {
				return &logEntry{}
			},
		},
		closed: make(chan struct{}),
	}
	logger.level.Store(int32(INFO))
	go logger.run()
	return logger
}

// NewStdoutLogger 新建一个向标准控制台输出的logger
func NewStdoutLogger() *Logger {
	return newLogger(os.Stdout, nil, nil)
}

// NewWriterLogger 向任意writer输出，主要用于测试
func NewWriterLogger(w io.Writer) *Logger {
	return newLogger(w, nil, nil)
}

func logFileName(settings *Settings) string {
	return fmt.Sprintf("%s-%s.%s", settings.Name, time.Now().Format(settings.TimeFormat), settings.Ext)
}

// NewFileLogger 同时向标准输出和按日期命名的日志文件输出
func NewFileLogger(settings *Settings) (*Logger, error) {
	level, err := ParseLevel(settings.Level)
	if err != nil {
		return nil, err
	}
	logFile, err := mustOpen(logFileName(settings), settings.Path)
	if err != nil {
		return nil, fmt.Errorf("open log file error: %v", err)
	}
	logger := newLogger(io.MultiWriter(os.Stdout, logFile), settings, logFile)
	logger.SetLevel(level)
	return logger, nil
}

func (logger *Logger) run() {
	defer close(logger.closed)
	for e := range logger.entryChan {
		if e.done != nil {
			close(e.done)
			continue
		}
		logger.rotate()
		_ = logger.out.Output(0, e.msg)
		e.msg = ""
		logger.entryPool.Put(e)
	}
	if logger.logFile != nil {
		_ = logger.logFile.Close()
	}
}

// rotate 日期变化后切换到新的日志文件
func (logger *Logger) rotate() {
	if logger.settings == nil || logger.logFile == nil {
		return
	}
	name := logFileName(logger.settings)
	if filepath.Join(logger.settings.Path, name) == logger.logFile.Name() {
		return
	}
	logFile, err := mustOpen(name, logger.settings.Path)
	if err != nil {
		_ = logger.out.Output(0, fmt.Sprintf("[%s] rotate log file %s failed: %v", levelFlags[ERROR], name, err))
		return
	}
	_ = logger.logFile.Close()
	logger.logFile = logFile
	logger.out = log.New(io.MultiWriter(os.Stdout, logFile), "", flags)
}

func (logger *Logger) SetLevel(level Level) {
	logger.level.Store(int32(level))
}

func (logger *Logger) Enabled(level Level) bool {
	return level >= Level(logger.level.Load())
}

// Output 发送一个日志消息到logger
func (logger *Logger) Output(level Level, callerDepth int, msg string) {
	if !logger.Enabled(level) {
		return
	}
	var formattedMsg string
	_, file, line, ok := runtime.Caller(callerDepth)
	if ok {
		formattedMsg = fmt.Sprintf("[%s][%s:%d] %s", level, filepath.Base(file), line, msg)
	} else {
		formattedMsg = fmt.Sprintf("[%s] %s", level, msg)
	}
	entry := logger.entryPool.Get().(*logEntry)
	entry.msg = formattedMsg
	entry.done = nil
	logger.entryChan <- entry
}

// Flush 阻塞直到之前提交的消息全部写出
func (logger *Logger) Flush() {
	done := make(chan struct{})
	logger.entryChan <- &logEntry{done: done}
	<-done
}

// Close 写出剩余消息并关闭日志文件，之后不能再调用Output
func (logger *Logger) Close() {
	logger.closeOnce.Do(func() {
		close(logger.entryChan)
		<-logger.closed
	})
}

func Setup(settings *Settings) {
	logger, err := NewFileLogger(settings)
	if err != nil {
		panic(err)
	}
	DefaultLogger = logger
}

func SetLevel(level Level) {
	DefaultLogger.SetLevel(level)
}

func Flush() {
	DefaultLogger.Flush()
}

func Debug(v ...any) {
	DefaultLogger.Output(DEBUG, defaultCallerDepth, fmt.Sprintln(v...))
}

func Debugf(format string, v ...any) {
	DefaultLogger.Output(DEBUG, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	DefaultLogger.Output(INFO, defaultCallerDepth, fmt.Sprintln(v...))
}

func Infof(format string, v ...any) {
	DefaultLogger.Output(INFO, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	DefaultLogger.Output(WARNING, defaultCallerDepth, fmt.Sprintln(v...))
}

func Warnf(format string, v ...any) {
	DefaultLogger.Output(WARNING, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	DefaultLogger.Output(ERROR, defaultCallerDepth, fmt.Sprintln(v...))
}

func Errorf(format string, v ...any) {
	DefaultLogger.Output(ERROR, defaultCallerDepth, fmt.Sprintf(format, v...))
}

// Fatal 写出日志后退出进程
func Fatal(v ...any) {
	DefaultLogger.Output(FATAL, defaultCallerDepth, fmt.Sprintln(v...))
	DefaultLogger.Close()
	os.Exit(1)
}

func Fatalf(format string, v ...any) {
	DefaultLogger.Output(FATAL, defaultCallerDepth, fmt.Sprintf(format, v...))
	DefaultLogger.Close()
	os.Exit(1)
}
