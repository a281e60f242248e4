// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xcinfo/internal/adapters/cas"
	_ "go.trai.ch/xcinfo/internal/adapters/config"
	_ "go.trai.ch/xcinfo/internal/adapters/encoder"
	_ "go.trai.ch/xcinfo/internal/adapters/fs"
	_ "go.trai.ch/xcinfo/internal/adapters/history"
	_ "go.trai.ch/xcinfo/internal/adapters/logger"
	_ "go.trai.ch/xcinfo/internal/adapters/plist"
	_ "go.trai.ch/xcinfo/internal/adapters/telemetry"
	_ "go.trai.ch/xcinfo/internal/adapters/zip"
	// Register app and engine nodes.
	_ "go.trai.ch/xcinfo/internal/app"
	_ "go.trai.ch/xcinfo/internal/engine/extractor"
)
