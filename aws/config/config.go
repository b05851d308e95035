// Package config holds the resolved configuration for one module
// invocation: credentials, region, and the execution flags the engine
// passes alongside the resource parameters.
package config

import (
	"context"

	"github.com/Pearson-Advance/configuration/common"
)

type Config struct {
	common.AuthInfo

	// CheckMode reports what would change without mutating the provider.
	CheckMode bool
}

// EC2Client builds the service client for this invocation.
func (c *Config) EC2Client(ctx context.Context) (*common.Client, error) {
	return common.NewClient(ctx, &c.AuthInfo)
}
