package hostinfo

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/appinfo/internal/adapters/logger"
	"go.trai.ch/appinfo/internal/core/ports"
)

const NodeID graft.ID = "backend.host"

func init() {
	graft.Register(graft.Node[*Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Backend, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
