package telemetry

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/appinfo/internal/adapters/config"
	"go.trai.ch/appinfo/internal/adapters/telemetry/progrock"
	"go.trai.ch/appinfo/internal/core/ports"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			if cfg.Progress {
				// Renders vertex updates to stderr as they arrive; main
				// closes the recorder on exit.
				return progrock.New(), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
