package cryptosvc

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// observe installs a handler writing to an in-memory core for the duration of
// the test.
func observe(t *testing.T, mode Mode) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := current.Load()
	Configure(WithLogger(zap.New(core)), WithMode(mode), WithComponent("test"))
	t.Cleanup(func() { current.Store(prev) })
	return logs
}

// resetHandler forgets any installed handler so the next call initializes
// lazily again.
func resetHandler(t *testing.T) {
	t.Helper()
	prev := current.Load()
	current.Store(nil)
	lazyOnce = sync.Once{}
	t.Cleanup(func() {
		current.Store(prev)
		lazyOnce = sync.Once{}
	})
}

func disabledServices() []services.Name {
	var out []services.Name
	for _, name := range services.Names() {
		if !enablement.IsEnabled(name) {
			out = append(out, name)
		}
	}
	return out
}

func allOn(services.Name) bool  { return true }
func allOff(services.Name) bool { return false }
