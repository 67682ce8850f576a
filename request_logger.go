package client

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger].
//
// A *zap.SugaredLogger satisfies RequestLogger as is.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

var (
	_ RequestLogger = (*zap.SugaredLogger)(nil)
	_ resty.Logger  = (RequestLogger)(nil)
)

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
