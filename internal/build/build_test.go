package build

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, version string, info *debug.BuildInfo) {
	t.Helper()

	origVersion, origRead := Version, readBuildInfo
	t.Cleanup(func() {
		Version, readBuildInfo = origVersion, origRead
	})

	Version = version
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return info, info != nil
	}
}

func TestRevision(t *testing.T) {
	vcs := func(revision, modified string) []debug.BuildSetting {
		return []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: revision},
			{Key: "vcs.modified", Value: modified},
		}
	}

	tests := []struct {
		name    string
		version string
		info    *debug.BuildInfo
		want    string
	}{
		{
			name:    "linker flags win",
			version: "v1.4.0",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "v1.3.0"}},
			want:    "v1.4.0",
		},
		{
			name:    "module version from go install",
			version: "dev",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "v1.3.0"}},
			want:    "v1.3.0",
		},
		{
			name:    "vcs revision for local builds",
			version: "dev",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}, Settings: vcs("abc123", "false")},
			want:    "abc123",
		},
		{
			name:    "modified tree",
			version: "dev",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}, Settings: vcs("abc123", "true")},
			want:    "abc123-dirty",
		},
		{
			name:    "no vcs information",
			version: "dev",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want:    "dev",
		},
		{
			name:    "no build info",
			version: "dev",
			want:    "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.info)
			assert.Equal(t, tt.want, Revision())
		})
	}
}
