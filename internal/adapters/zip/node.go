package zip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcinfo/internal/core/ports"
)

// NodeID is the unique identifier for the archive opener Graft node.
const NodeID graft.ID = "adapter.archive_opener"

func init() {
	graft.Register(graft.Node[ports.ArchiveOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveOpener, error) {
			return NewOpener(), nil
		},
	})
}
