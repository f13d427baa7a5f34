package loader

import (
	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	"github.com/google/wire"
)

// ProviderSet exposes configuration-derived dependencies for Wire graphs.
var ProviderSet = wire.NewSet(
	ProvideServiceMetadata,
	ProvideBootstrap,
	ProvideServerConfig,
)

// ProvideServiceMetadata returns the resolved ServiceMetadata from the loader.
func ProvideServiceMetadata(l *Loader) ServiceMetadata {
	if l == nil {
		return ServiceMetadata{}
	}
	return l.Service
}

// ProvideBootstrap exposes the strongly typed bootstrap configuration.
func ProvideBootstrap(l *Loader) *conf.Bootstrap {
	if l == nil {
		return nil
	}
	return l.Bootstrap
}

// ProvideServerConfig returns the server section of the bootstrap configuration.
func ProvideServerConfig(bc *conf.Bootstrap) *conf.Server {
	if bc == nil {
		return nil
	}
	return &bc.Server
}
