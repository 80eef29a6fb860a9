package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/fatih/structs"
	"github.com/jeremywohl/flatten"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Option tunes the viper instance used for a single parse.
type Option func(v *viper.Viper)

// WithEnvPrefix namespaces environment overrides, e.g. prefix "CRYPTOSVC"
// maps key diagnostics.mode to CRYPTOSVC_DIAGNOSTICS_MODE.
func WithEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) {
		v.SetEnvPrefix(prefix)
	}
}

// WithConfigName overrides the base name searched for in the config paths
// (default "config").
func WithConfigName(name string) Option {
	return func(v *viper.Viper) {
		v.SetConfigName(name)
	}
}

// ParseConfig behaves like before (no embedded defaults).
// It just forwards to ParseConfigWithEmbedded with nil.
func ParseConfig[T interface{}](configFilePaths []string, opts ...Option) (*T, error) {
	return ParseConfigWithEmbedded[T](configFilePaths, nil, opts...)
}

// ParseConfigWithEmbedded tries to load config from disk,
// and if the file is NOT found, falls back to embeddedYAML (if provided).
func ParseConfigWithEmbedded[T interface{}](configFilePaths []string, embeddedYAML []byte, opts ...Option) (*T, error) {
	v, err := newViper[T](opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range configFilePaths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var nfErr viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &nfErr) && len(embeddedYAML) > 0:
			if err2 := v.ReadConfig(bytes.NewReader(embeddedYAML)); err2 != nil {
				return nil, errors.Wrap(err2, "failed to load embedded default config")
			}
		case errors.As(err, &nfErr):
			// environment only
		default:
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	return decode[T](v)
}

// ParseFile loads exactly one file. The format follows the file extension
// (yaml, yml, json, toml).
func ParseFile[T interface{}](path string, opts ...Option) (*T, error) {
	v, err := newViper[T](opts...)
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		v.SetConfigType(ext)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return decode[T](v)
}

func newViper[T interface{}](opts ...Option) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, opt := range opts {
		opt(v)
	}

	if err := bindAllConfigKeys[T](v); err != nil {
		return nil, err
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

func decode[T interface{}](v *viper.Viper) (*T, error) {
	var c T
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "Unable to decode into struct")
	}
	return &c, nil
}

// Workaround for major viper issue with env variables, documented here
// https://github.com/spf13/viper/issues/761
func bindAllConfigKeys[T interface{}](v *viper.Viper) error {
	var cd T
	// Transform config struct to map
	confMap := structs.Map(cd)

	// Flatten nested conf map
	flat, err := flatten.Flatten(confMap, "", flatten.DotStyle)
	if err != nil {
		return errors.Wrap(err, "Unable to flatten config")
	}

	// Bind each conf field to environment vars
	for key := range flat {
		if err := v.BindEnv(key); err != nil {
			return errors.Wrapf(err, "Unable to bind env var: %s", key)
		}
	}
	return nil
}
