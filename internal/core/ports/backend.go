// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/appinfo/internal/core/domain"
)

// Backend defines the capability to read application metadata from the host
// platform. Exactly one implementation is selected and injected at
// application start.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// Retrieve reads the platform metadata.
	//
	// The baseURL hint is only meaningful to backends that resolve a
	// remotely served manifest; backends that read local platform data
	// ignore it.
	//
	// Returns an error when the platform data is unreadable.
	Retrieve(ctx context.Context, baseURL string) (*domain.PlatformData, error)
}
