package marimo_test

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/embed"

	"github.com/manzt/marimo"
	"github.com/manzt/marimo/cell"
	"github.com/manzt/marimo/notebook"
	"github.com/manzt/marimo/service/event"
)

//go:embed testdata/*
var embedFS embed.FS

func TestService(t *testing.T) {
	srv := marimo.New(
		marimo.WithMetaFsOptions(&embedFS),
		marimo.WithMetaBaseURL("embed:///testdata"),
	)
	ctx := context.Background()

	config, err := srv.LoadConfig(ctx, "config.yaml")
	assert.Nil(t, err)
	assert.NotNil(t, config)
	assert.Equal(t, marimo.PolicySequential, config.Registry.Policy)

	nb := srv.Notebook()
	one := nb.Register(ctx, "one", "x = 1")
	two := nb.Register(ctx, "two", "y = x + 1")
	assert.Equal(t, cell.ID("0"), one.ID)
	assert.Equal(t, cell.ID("1"), two.ID)
	assert.Equal(t, cell.DomAnchorID("cell-0"), cell.Anchor(one.ID))
}

func TestServiceEvents(t *testing.T) {
	srv := marimo.New()
	var registered []string
	srv.Events().Subscribe(func(e *event.Event[notebook.Cell]) {
		if e.Context.EventType == event.TypeCellRegistered {
			registered = append(registered, e.Context.CellID)
		}
	})

	ctx := context.Background()
	srv.Notebook().Register(ctx, "one", "x = 1")
	srv.Notebook().Register(ctx, "two", "y = 2")
	assert.Equal(t, []string{"0", "1"}, registered)
}

func TestNewFromConfig(t *testing.T) {
	srv, err := marimo.NewFromConfig(&marimo.Config{
		Registry: marimo.RegistryConfig{Policy: marimo.PolicyRandom},
	})
	assert.Nil(t, err)
	first := srv.Registry().Create()
	second := srv.Registry().Create()
	assert.NotEqual(t, first, second)

	_, err = marimo.NewFromConfig(&marimo.Config{
		Registry: marimo.RegistryConfig{Policy: "fibonacci"},
	})
	assert.NotNil(t, err)
}
