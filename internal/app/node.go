package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/appinfo/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/appinfo/internal/adapters/hostinfo"  //nolint:depguard // Wired in app layer
	"go.trai.ch/appinfo/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/appinfo/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/appinfo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/appinfo/internal/core/domain"
	"go.trai.ch/appinfo/internal/core/ports"
)

const (
	// AccessorNodeID is the unique identifier for the Accessor Graft node.
	AccessorNodeID graft.ID = "app.accessor"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// Accessor Node. Backend selection happens here, from the loaded
	// config: exactly one backend is injected per process.
	graft.Register(graft.Node[*Accessor]{
		ID:        AccessorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			hostinfo.NodeID,
			manifest.NodeID,
		},
		Run: func(ctx context.Context) (*Accessor, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			backend, err := selectBackend(ctx, cfg)
			if err != nil {
				return nil, err
			}

			return New(backend, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AccessorNodeID,
			logger.NodeID,
			config.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func selectBackend(ctx context.Context, cfg *config.Config) (ports.Backend, error) {
	switch cfg.Backend {
	case config.BackendManifest:
		return graft.Dep[*manifest.Backend](ctx)
	case config.BackendHost:
		return graft.Dep[*hostinfo.Backend](ctx)
	default:
		return nil, domain.ErrUnknownBackend
	}
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	accessor, err := graft.Dep[*Accessor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		Accessor: accessor,
		Logger:   log,
		Config:   cfg,
		Tracer:   tracer,
	}, nil
}
