package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcinfo/internal/build"
	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
)

// NodeID is the unique identifier for the report cache Graft node.
const NodeID graft.ID = "adapter.report_cache"

func init() {
	graft.Register(graft.Node[ports.ReportCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportCache, error) {
			return NewStore(domain.DefaultCachePath(), build.Revision()), nil
		},
	})
}
