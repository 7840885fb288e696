package marimo

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"

	"github.com/manzt/marimo/notebook"
	"github.com/manzt/marimo/registry"
	"github.com/manzt/marimo/service/event"
	"github.com/manzt/marimo/service/meta"
)

// Service is the high-level façade wiring the identifier registry, the
// notebook document and the lifecycle event publisher together.
type Service struct {
	config        *Config
	registry      *registry.Registry
	notebook      *notebook.Notebook
	events        *event.Publisher[notebook.Cell]
	metaService   *meta.Service
	metaBaseURL   string
	metaFsOptions []storage.Option
}

// New creates a Service; missing collaborators get default instances.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

// NewFromConfig creates a Service from a validated configuration.
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(append([]Option{WithConfig(config)}, options...)...), nil
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
}

func (s *Service) ensureBaseSetup() {
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.registry == nil {
		s.registry = registry.New(registry.WithMinter(s.config.minter()))
	}
	if s.events == nil {
		s.events = event.NewPublisher[notebook.Cell]()
	}
	if s.notebook == nil {
		s.notebook = notebook.New(
			notebook.WithRegistry(s.registry),
			notebook.WithPublisher(s.events),
		)
	}
}

// Notebook returns the notebook document.
func (s *Service) Notebook() *notebook.Notebook { return s.notebook }

// Registry returns the identifier registry.
func (s *Service) Registry() *registry.Registry { return s.registry }

// Events returns the lifecycle event publisher.
func (s *Service) Events() *event.Publisher[notebook.Cell] { return s.events }

// Config returns the effective configuration.
func (s *Service) Config() *Config { return s.config }

// LoadConfig loads and validates a configuration document from the given
// URL, resolved against the configured meta base URL.
func (s *Service) LoadConfig(ctx context.Context, URL string) (*Config, error) {
	config := &Config{}
	if err := s.metaService.Load(ctx, URL, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
