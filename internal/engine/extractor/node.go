package extractor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcinfo/internal/adapters/plist"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/xcinfo/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/xcinfo/internal/adapters/zip"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/xcinfo/internal/core/ports"
)

// NodeID is the unique identifier for the report builder Graft node.
const NodeID graft.ID = "engine.extractor"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			zip.NodeID,
			plist.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			opener, err := graft.Dep[ports.ArchiveOpener](ctx)
			if err != nil {
				return nil, err
			}

			decoder, err := graft.Dep[ports.PropertyListDecoder](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(opener, decoder, tracer), nil
		},
	})
}
