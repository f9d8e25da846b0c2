package app

import (
	"go.trai.ch/appinfo/internal/adapters/config"
	"go.trai.ch/appinfo/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	Accessor *Accessor
	Logger   ports.Logger
	Config   *config.Config
	Tracer   ports.Tracer
}
