// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/appinfo/internal/adapters/config"
	_ "go.trai.ch/appinfo/internal/adapters/hostinfo"
	_ "go.trai.ch/appinfo/internal/adapters/logger"
	_ "go.trai.ch/appinfo/internal/adapters/manifest"
	_ "go.trai.ch/appinfo/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/appinfo/internal/app"
)
