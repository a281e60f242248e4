package plist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcinfo/internal/core/ports"
)

// NodeID is the unique identifier for the property list decoder Graft node.
const NodeID graft.ID = "adapter.plist_decoder"

func init() {
	graft.Register(graft.Node[ports.PropertyListDecoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PropertyListDecoder, error) {
			return NewDecoder(), nil
		},
	})
}
