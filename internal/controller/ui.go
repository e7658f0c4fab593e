// Package controller provides output adapters for displaying audit results.
package controller

import (
	"context"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	showCosmetic bool
}

// WithShowCosmetic makes audit output list cosmetic files too.
func WithShowCosmetic(show bool) StartOption {
	return func(c *StartConfig) {
		c.showCosmetic = show
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for displaying audit results.
// Implementations can use different output methods (text tables, yaml, json).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context) error
	DisplayPairing(ctx context.Context, result m.PairingResult) error
	DisplayAudit(ctx context.Context, report m.AuditReport) error
	DisplayComparison(ctx context.Context, audit m.FileAudit, diff string) error
	DisplayDivergence(ctx context.Context, report m.DivergenceReport) error
}
