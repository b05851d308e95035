package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateAwsEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
}

func TestNewClientFailsWithoutRegion(t *testing.T) {
	isolateAwsEnv(t)

	_, err := NewClient(context.Background(), &AuthInfo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region must be specified")
}

func TestNewClientRegionFromParameter(t *testing.T) {
	isolateAwsEnv(t)

	client, err := NewClient(context.Background(), &AuthInfo{Region: "us-east-1"})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", client.Region())
	assert.NotNil(t, client.EC2())
}

func TestNewClientRegionFromEnvironment(t *testing.T) {
	isolateAwsEnv(t)
	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")

	client, err := NewClient(context.Background(), &AuthInfo{
		AccessKey: "AKIAEXAMPLE",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", client.Region())
}
