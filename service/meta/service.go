// Package meta loads configuration documents from afs URLs (file, embed,
// memory, ...), expanding ${env.KEY} expressions before decoding YAML.
package meta

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service resolves and decodes configuration resources.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a meta service. Relative URLs passed to Load are resolved
// against baseURL; options are forwarded to the underlying afs calls (for
// example an embed.FS handle).
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}

// Load downloads the YAML document at URL, expands environment expressions
// and decodes it into target.
func (s *Service) Load(ctx context.Context, URL string, target interface{}) error {
	location := URL
	if s.baseURL != "" && !strings.Contains(URL, "://") {
		location = url.Join(s.baseURL, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, location, s.options...)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", location, err)
	}
	data = []byte(expandEnvExpr(string(data)))
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", location, err)
	}
	return nil
}
