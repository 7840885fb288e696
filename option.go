package marimo

import (
	"github.com/viant/afs/storage"

	"github.com/manzt/marimo/notebook"
	"github.com/manzt/marimo/registry"
	"github.com/manzt/marimo/service/event"
	"github.com/manzt/marimo/service/meta"
)

// Option customises the Service façade.
type Option func(s *Service)

// WithConfig sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithRegistry sets the identifier registry.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Service) { s.registry = r }
}

// WithNotebook sets the notebook document.
func WithNotebook(nb *notebook.Notebook) Option {
	return func(s *Service) { s.notebook = nb }
}

// WithEventPublisher sets the lifecycle event publisher.
func WithEventPublisher(p *event.Publisher[notebook.Cell]) Option {
	return func(s *Service) { s.events = p }
}

// WithMetaService sets the meta service.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) { s.metaService = service }
}

// WithMetaBaseURL sets the base URL configuration documents are resolved
// against.
func WithMetaBaseURL(baseURL string) Option {
	return func(s *Service) { s.metaBaseURL = baseURL }
}

// WithMetaFsOptions sets the afs storage options (for example an embed.FS
// handle) used when loading configuration.
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.metaFsOptions = options }
}
