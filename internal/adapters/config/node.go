package config

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/appinfo/internal/adapters/logger"
	"go.trai.ch/appinfo/internal/core/ports"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Config, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log).Load(Path())
		},
	})
}
