package encoder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcinfo/internal/core/ports"
)

// NodeID is the unique identifier for the encoder factory Graft node.
const NodeID graft.ID = "adapter.encoder_factory"

func init() {
	graft.Register(graft.Node[ports.EncoderFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EncoderFactory, error) {
			return NewFactory(), nil
		},
	})
}
