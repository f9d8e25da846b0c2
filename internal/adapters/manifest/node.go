package manifest

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/appinfo/internal/adapters/config"
	"go.trai.ch/appinfo/internal/adapters/logger"
	"go.trai.ch/appinfo/internal/core/ports"
)

const NodeID graft.ID = "backend.manifest"

func init() {
	graft.Register(graft.Node[*Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Backend, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			var opts []Option
			if cfg.Manifest.URL != "" {
				opts = append(opts, WithURL(cfg.Manifest.URL))
			}
			if cfg.Manifest.Path != "" {
				opts = append(opts, WithPath(cfg.Manifest.Path))
			}
			return New(log, opts...), nil
		},
	})
}
