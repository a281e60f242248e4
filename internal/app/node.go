package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcinfo/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/xcinfo/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xcinfo/internal/adapters/encoder"   //nolint:depguard // Wired in app layer
	"go.trai.ch/xcinfo/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/xcinfo/internal/adapters/history"   //nolint:depguard // Wired in app layer
	"go.trai.ch/xcinfo/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xcinfo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/xcinfo/internal/engine/extractor"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			extractor.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			history.NodeID,
			encoder.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			history.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*extractor.Builder](ctx)
	if err != nil {
		return nil, err
	}

	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.ReportCache](ctx)
	if err != nil {
		return nil, err
	}

	hist, err := graft.Dep[ports.History](ctx)
	if err != nil {
		return nil, err
	}

	encoders, err := graft.Dep[ports.EncoderFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, builder, digester, cache, hist, encoders, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
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

	hist, err := graft.Dep[ports.History](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, tracer, hist), nil
}
