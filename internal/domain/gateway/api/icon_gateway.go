package api

import "context"

// IconGateway defines the interface for downloading condition icons
type IconGateway interface {
	// GetIcon downloads the PNG payload for a provider icon code
	GetIcon(ctx context.Context, iconID string) ([]byte, error)
}
