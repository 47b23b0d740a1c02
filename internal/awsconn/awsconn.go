// Package awsconn resolves the AWS connection configuration, applying the
// optional profile and region overrides on top of the environment defaults.
package awsconn

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// Load resolves the default AWS configuration chain. A non-empty profile or
// region takes precedence over whatever the environment and shared config
// files would select; empty values leave the inferred defaults untouched.
func Load(ctx context.Context, profile, region string) (aws.Config, error) {
	opts := make([]func(*awsconfig.LoadOptions) error, 0, 2)
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
