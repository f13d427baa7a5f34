package loader_test

import (
	"testing"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	loader "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/config_loader"

	"github.com/stretchr/testify/assert"
)

func TestProviders_NilSafety(t *testing.T) {
	assert.Equal(t, loader.ServiceMetadata{}, loader.ProvideServiceMetadata(nil))
	assert.Nil(t, loader.ProvideBootstrap(nil))
	assert.Nil(t, loader.ProvideServerConfig(nil))
}

func TestProviders_Passthrough(t *testing.T) {
	bc := &conf.Bootstrap{
		Server: conf.Server{HTTP: conf.HTTP{Addr: "0.0.0.0:8080"}},
	}
	l := &loader.Loader{
		Bootstrap: bc,
		Service:   loader.ServiceMetadata{Name: "greeting", Version: "1.0.0"},
	}

	assert.Equal(t, l.Service, loader.ProvideServiceMetadata(l))
	assert.Same(t, bc, loader.ProvideBootstrap(l))
	assert.Equal(t, "0.0.0.0:8080", loader.ProvideServerConfig(bc).HTTP.Addr)
}
