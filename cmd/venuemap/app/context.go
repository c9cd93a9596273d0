package app

import (
	"context"
	"os/signal"
	"syscall"
)

// ContextWithSignals creates a context cancelled when the application
// receives an interrupt or termination signal, enabling graceful shutdown.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
