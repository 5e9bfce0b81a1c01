package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/algocarelab/superset-config/internal/logger"
)

type configBuilder struct {
	layers   []*Settings
	override *overrideDocument
	fixed    bool

	env  Environment
	opts options
	log  *logger.Logger
	err  error
}

func newConfigBuilder(log *logger.Logger, opts options) *configBuilder {
	if log == nil {
		log = logger.Nop()
	}

	return &configBuilder{
		layers: make([]*Settings, 0, 2),
		opts:   opts,
		log:    log,
	}
}

func (b *configBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	settings := new(Settings)
	for i, layer := range b.layers {
		// the first layer is taken as is so that its empty lists survive
		if i == 0 {
			*settings = *layer
			continue
		}
		if err := mergo.Merge(settings, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.override != nil {
		overridden, err := b.override.apply(settings)
		if err != nil {
			return nil, err
		}
		settings = overridden
	}

	if b.fixed {
		applyFixed(settings)
	}

	return settings, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.layers = append(b.layers, defaultSettings())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if err := parseEnv(&b.env, b.opts.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envSettings(b.env))
	return b
}

// withOverride looks for the override file once. Not finding one is the
// expected outcome on most deployments and only logged.
func (b *configBuilder) withOverride() *configBuilder {
	path, ok := findOverride(b.opts.resolveSearchPath(b.env.SearchPath))
	if !ok {
		b.log.Info().Msg("Using default Docker config...")
		return b
	}

	doc, err := readOverride(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.override = doc
	b.log.Info().Str("path", doc.path).Msgf("Loaded your Docker configuration at [%s]", doc.path)
	return b
}

func (b *configBuilder) withFixed() *configBuilder {
	b.fixed = true
	return b
}
