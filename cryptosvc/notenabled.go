package cryptosvc

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/quantumauth-io/quantum-go-cryptosvc/config"
	"github.com/quantumauth-io/quantum-go-cryptosvc/log"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// Mode selects what happens after a compiled out service has been reported.
type Mode string

const (
	// ModeRelease reports the call and lets the forwarder return its sentinel.
	ModeRelease Mode = "release"
	// ModeAssert reports the call and then panics with an *AssertionError.
	ModeAssert Mode = "assert"
)

const (
	DefaultComponent = "cryptosvc"
	envPrefix        = "CRYPTOSVC"
	configName       = "cryptosvc"

	/* (S)tructured (L)ogging */
	SLcomponent = "component"
	SLservice   = "service"
	SLeventID   = "event_id"
)

type DiagnosticsConfig struct {
	Component string `mapstructure:"component" structs:"component"`
	Mode      Mode   `mapstructure:"mode" structs:"mode"`
}

// Config is the startup configuration of the facade, read from a
// cryptosvc.{yaml,json,toml} file and CRYPTOSVC_* environment variables.
type Config struct {
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics" structs:"diagnostics"`
	Log         log.Config        `mapstructure:"log" structs:"log"`
}

type Option func(h *handler)

// WithLogger sends diagnostics to l instead of the global logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *handler) { h.logger = l }
}

func WithComponent(component string) Option {
	return func(h *handler) {
		if component != "" {
			h.component = component
		}
	}
}

func WithMode(mode Mode) Option {
	return func(h *handler) { h.mode = mode }
}

type handler struct {
	logger    *zap.Logger
	component string
	mode      Mode
}

var (
	current  atomic.Pointer[handler]
	lazyOnce sync.Once
)

// Configure installs the not-enabled handler. Call it once at startup; the
// handler is replaced atomically so in-flight calls finish with the previous
// one.
func Configure(opts ...Option) {
	current.Store(newHandler(opts...))
}

// ConfigureFromFile reads Config from the first cryptosvc.* file found in
// paths, overlaid with the environment, and installs the handler. A missing
// file is not an error. When the log section is set the global logger is
// rebuilt from it.
func ConfigureFromFile(paths []string) error {
	cfg, err := config.ParseConfig[Config](paths,
		config.WithEnvPrefix(envPrefix), config.WithConfigName(configName))
	if err != nil {
		return err
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	if cfg.Log != (log.Config{}) {
		if err := log.Init(cfg.Log); err != nil {
			return errors.Wrap(err, "failed to init logger")
		}
	}
	Configure(opts...)
	return nil
}

func (c *Config) options() ([]Option, error) {
	mode, err := ParseMode(string(c.Diagnostics.Mode))
	if err != nil {
		return nil, err
	}
	return []Option{WithComponent(c.Diagnostics.Component), WithMode(mode)}, nil
}

// ParseMode accepts "release", "assert" or empty (release), in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeRelease:
		return ModeRelease, nil
	case ModeAssert:
		return ModeAssert, nil
	default:
		return "", errors.Errorf("unknown diagnostics mode %q", s)
	}
}

func newHandler(opts ...Option) *handler {
	h := &handler{component: DefaultComponent, mode: ModeRelease}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// loadHandler returns the installed handler. Without a prior Configure the
// handler is built once from the environment.
func loadHandler() *handler {
	if h := current.Load(); h != nil {
		return h
	}
	lazyOnce.Do(func() {
		h := newHandler()
		cfg, err := config.ParseConfig[Config](nil, config.WithEnvPrefix(envPrefix))
		if err == nil {
			var opts []Option
			if opts, err = cfg.options(); err == nil {
				h = newHandler(opts...)
			}
		}
		if err != nil {
			log.Warn("Falling back to release diagnostics", zap.Error(err))
		}
		current.CompareAndSwap(nil, h)
	})
	return current.Load()
}

func notEnabled(name services.Name) {
	loadHandler().report(name)
}

func (h *handler) log() *zap.Logger {
	if h.logger != nil {
		return h.logger
	}
	return log.L()
}

func (h *handler) report(name services.Name) {
	l := h.log()
	eventID := uuid.NewString()
	fields := []zap.Field{
		zap.String(SLcomponent, h.component),
		zap.String(SLservice, string(name)),
		zap.String(SLeventID, eventID),
	}
	l.Error(fmt.Sprintf("Function %s() is not enabled", name), fields...)

	if h.mode != ModeAssert {
		return
	}
	aerr := &AssertionError{Service: name, Component: h.component, EventID: eventID}
	func() {
		// development loggers panic on DPanic themselves
		defer func() { _ = recover() }()
		l.DPanic(aerr.Error(), fields...)
	}()
	panic(aerr)
}
