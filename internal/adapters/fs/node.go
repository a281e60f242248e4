package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcinfo/internal/core/ports"
)

// HasherNodeID is the unique identifier for the digester Graft node.
const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.Digester]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Digester, error) {
			return NewHasher(), nil
		},
	})
}
