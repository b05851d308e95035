package common

import (
	"context"
	"errors"
	"fmt"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Pearson-Advance/configuration/aws/util"
)

const (
	userAgentProduct = "pearson-advance-configuration"

	// Version is stamped into the User-Agent of every provider request.
	Version = "1.0.0"
)

// AuthInfo carries the credential and region parameters handed to the
// module by the orchestration engine. Every field is optional; anything
// left empty falls back to the environment and the shared AWS config files.
type AuthInfo struct {
	Region       string
	Profile      string
	AccessKey    string
	SecretKey    string
	SessionToken string
}

// Client is the authenticated handle shared by the resource reconcilers.
type Client struct {
	ec2Client *ec2.Client
	region    string
}

func (c *Client) EC2() *ec2.Client {
	return c.ec2Client
}

func (c *Client) Region() string {
	return c.region
}

// NewClient resolves credentials and region and builds the EC2 service
// client. The region cascade is parameter, then AWS_REGION /
// AWS_DEFAULT_REGION, then whatever the shared AWS config resolves to.
// When none of those yield a region the module fails here, before any
// provider call is attempted.
func NewClient(ctx context.Context, authInfo *AuthInfo) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithAPIOptions([]func(*middleware.Stack) error{
			awsmiddleware.AddUserAgentKeyValue(userAgentProduct, Version),
		}),
	}

	if authInfo.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(authInfo.Profile))
	}

	if authInfo.AccessKey != "" || authInfo.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				authInfo.AccessKey, authInfo.SecretKey, authInfo.SessionToken)))
	}

	region := authInfo.Region

	if region == "" {
		region = util.GetenvAny("AWS_REGION", "AWS_DEFAULT_REGION")
	}

	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %v", err)
	}

	if cfg.Region == "" {
		return nil, errors.New("region must be specified via module parameters, AWS_REGION, or the AWS config file")
	}

	logrus.WithFields(logrus.Fields{
		"region": cfg.Region,
	}).Debug("Created EC2 client")

	return &Client{
		ec2Client: ec2.NewFromConfig(cfg),
		region:    cfg.Region,
	}, nil
}
