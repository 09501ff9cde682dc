// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	rlog "github.com/sirupsen/logrus"
)

type contextKey string

// MDSessionIDKey is context key of session id
const MDSessionIDKey contextKey = "LOG_SESSION_ID"

// MDRequestIDKey is context key of request id
const MDRequestIDKey contextKey = "LOG_REQUEST_ID"

var (
	logConfigMu           sync.RWMutex
	logKeys               = []contextKey{MDSessionIDKey, MDRequestIDKey}
	clientLogContextHooks = map[string]ClientLogContextHook{}
)

// ClientLogContextHook is a client-defined hook that can be used to insert log
// fields based on the Context.
type ClientLogContextHook func(context.Context) string

// SetLogKeys sets the context keys to be written to logs when logger.WithContext is used.
// This function is thread-safe and can be called at runtime.
func SetLogKeys(keys ...contextKey) {
	logConfigMu.Lock()
	defer logConfigMu.Unlock()
	logKeys = make([]contextKey, len(keys))
	copy(logKeys, keys)
}

// GetLogKeys returns the currently configured context keys.
func GetLogKeys() []contextKey {
	logConfigMu.RLock()
	defer logConfigMu.RUnlock()
	keys := make([]contextKey, len(logKeys))
	copy(keys, logKeys)
	return keys
}

// RegisterLogContextHook registers a hook that can be used to extract fields
// from the Context and associate them with log messages using the provided key.
// This function is thread-safe and can be called at runtime.
func RegisterLogContextHook(contextKey string, ctxExtractor ClientLogContextHook) {
	logConfigMu.Lock()
	defer logConfigMu.Unlock()
	clientLogContextHooks[contextKey] = ctxExtractor
}

// MDLogger Meridian logger interface which abstracts away the underlying
// logging mechanism. It exposes the logrus field logger plus the level and
// output controls the client configuration layer drives.
type MDLogger interface {
	rlog.Ext1FieldLogger
	SetLogLevel(level string) error
	GetLogLevel() string
	WithContext(ctx context.Context) *rlog.Entry
	SetOutput(output io.Writer)
	CloseFileOnReset(file *os.File) error
}

type defaultLogger struct {
	inner   *rlog.Logger
	enabled bool
	file    *os.File
}

// CreateDefaultLogger creates a new logger based on logrus. The logger starts
// enabled at logrus's default level; callers adjust it with SetLogLevel.
func CreateDefaultLogger() MDLogger {
	rLogger := rlog.New()
	return &defaultLogger{enabled: true, inner: rLogger}
}

// SetLogLevel set logging level for calls from the client. The pseudo level
// OFF disables logging entirely without touching the underlying level.
func (log *defaultLogger) SetLogLevel(level string) error {
	newEnabled := strings.ToUpper(level) != levelOff
	log.enabled = newEnabled
	if newEnabled {
		actualLevel, err := rlog.ParseLevel(level)
		if err != nil {
			return err
		}
		log.inner.SetLevel(actualLevel)
	}
	return nil
}

// GetLogLevel return current log level
func (log *defaultLogger) GetLogLevel() string {
	if !log.enabled {
		return levelOff
	}
	return log.inner.GetLevel().String()
}

// CloseFileOnReset set a file to be closed when the logger output is reset
func (log *defaultLogger) CloseFileOnReset(file *os.File) error {
	if log.file != nil {
		if err := log.file.Close(); err != nil {
			log.file = file
			return fmt.Errorf("failed to close previous log file: %w", err)
		}
	}
	log.file = file
	return nil
}

// WithContext return Entry to include fields in logs
func (log *defaultLogger) WithContext(ctx context.Context) *rlog.Entry {
	fields := context2Fields(ctx)
	return log.inner.WithFields(*fields)
}

func (log *defaultLogger) SetOutput(output io.Writer) {
	log.inner.SetOutput(output)
}

func (log *defaultLogger) WithField(key string, value interface{}) *rlog.Entry {
	return log.inner.WithField(key, value)
}

func (log *defaultLogger) WithFields(fields rlog.Fields) *rlog.Entry {
	return log.inner.WithFields(fields)
}

func (log *defaultLogger) WithError(err error) *rlog.Entry {
	return log.inner.WithError(err)
}

func (log *defaultLogger) Tracef(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Tracef(format, args...)
	}
}

func (log *defaultLogger) Debugf(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Debugf(format, args...)
	}
}

func (log *defaultLogger) Infof(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Infof(format, args...)
	}
}

func (log *defaultLogger) Printf(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Printf(format, args...)
	}
}

func (log *defaultLogger) Warnf(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Warnf(format, args...)
	}
}

func (log *defaultLogger) Warningf(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Warningf(format, args...)
	}
}

func (log *defaultLogger) Errorf(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Errorf(format, args...)
	}
}

func (log *defaultLogger) Fatalf(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Fatalf(format, args...)
	}
}

func (log *defaultLogger) Panicf(format string, args ...interface{}) {
	if log.enabled {
		log.inner.Panicf(format, args...)
	}
}

func (log *defaultLogger) Trace(args ...interface{}) {
	if log.enabled {
		log.inner.Trace(args...)
	}
}

func (log *defaultLogger) Debug(args ...interface{}) {
	if log.enabled {
		log.inner.Debug(args...)
	}
}

func (log *defaultLogger) Info(args ...interface{}) {
	if log.enabled {
		log.inner.Info(args...)
	}
}

func (log *defaultLogger) Print(args ...interface{}) {
	if log.enabled {
		log.inner.Print(args...)
	}
}

func (log *defaultLogger) Warn(args ...interface{}) {
	if log.enabled {
		log.inner.Warn(args...)
	}
}

func (log *defaultLogger) Warning(args ...interface{}) {
	if log.enabled {
		log.inner.Warning(args...)
	}
}

func (log *defaultLogger) Error(args ...interface{}) {
	if log.enabled {
		log.inner.Error(args...)
	}
}

func (log *defaultLogger) Fatal(args ...interface{}) {
	if log.enabled {
		log.inner.Fatal(args...)
	}
}

func (log *defaultLogger) Panic(args ...interface{}) {
	if log.enabled {
		log.inner.Panic(args...)
	}
}

func (log *defaultLogger) Traceln(args ...interface{}) {
	if log.enabled {
		log.inner.Traceln(args...)
	}
}

func (log *defaultLogger) Debugln(args ...interface{}) {
	if log.enabled {
		log.inner.Debugln(args...)
	}
}

func (log *defaultLogger) Infoln(args ...interface{}) {
	if log.enabled {
		log.inner.Infoln(args...)
	}
}

func (log *defaultLogger) Println(args ...interface{}) {
	if log.enabled {
		log.inner.Println(args...)
	}
}

func (log *defaultLogger) Warnln(args ...interface{}) {
	if log.enabled {
		log.inner.Warnln(args...)
	}
}

func (log *defaultLogger) Warningln(args ...interface{}) {
	if log.enabled {
		log.inner.Warningln(args...)
	}
}

func (log *defaultLogger) Errorln(args ...interface{}) {
	if log.enabled {
		log.inner.Errorln(args...)
	}
}

func (log *defaultLogger) Fatalln(args ...interface{}) {
	if log.enabled {
		log.inner.Fatalln(args...)
	}
}

func (log *defaultLogger) Panicln(args ...interface{}) {
	if log.enabled {
		log.inner.Panicln(args...)
	}
}

// logger is the package logger. Library code logs through it so that a host
// application can swap in its own implementation with SetLogger.
var logger = CreateDefaultLogger()

func init() {
	_ = logger.SetLogLevel("error")
}

// SetLogger set a new logger of MDLogger interface for gomeridian
func SetLogger(inLogger *MDLogger) {
	logger = *inLogger
}

// GetLogger return logger that is not public
func GetLogger() MDLogger {
	return logger
}

func context2Fields(ctx context.Context) *rlog.Fields {
	fields := rlog.Fields{}
	if ctx == nil {
		return &fields
	}
	logConfigMu.RLock()
	defer logConfigMu.RUnlock()
	for i := 0; i < len(logKeys); i++ {
		if ctx.Value(logKeys[i]) != nil {
			fields[string(logKeys[i])] = ctx.Value(logKeys[i])
		}
	}
	for key, hook := range clientLogContextHooks {
		if value := hook(ctx); value != "" {
			fields[key] = value
		}
	}
	return &fields
}
