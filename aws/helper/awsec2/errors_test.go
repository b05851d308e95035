package awsec2

import (
	"testing"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAPIErrorKeepsCodeVisible(t *testing.T) {
	apiErr := &smithy.GenericAPIError{
		Code:    "RouteAlreadyExists",
		Message: "The route identified by 0.0.0.0/0 already exists.",
	}

	wrapped := WrapAPIError(apiErr, "creating route 0.0.0.0/0")

	assert.Contains(t, wrapped.Error(), "creating route 0.0.0.0/0 (RouteAlreadyExists)")

	var unwrapped smithy.APIError
	require.True(t, errors.As(wrapped, &unwrapped))
	assert.Equal(t, "RouteAlreadyExists", unwrapped.ErrorCode())
}

func TestWrapAPIErrorPlainError(t *testing.T) {
	wrapped := WrapAPIError(errors.New("connection reset"), "describing route tables")
	assert.Equal(t, "describing route tables: connection reset", wrapped.Error())
}

func TestDomainErrorMessages(t *testing.T) {
	dup := ErrDuplicateRouteTable{VpcId: "vpc-1", Name: "public", Count: 2}
	assert.Equal(t, `found 2 route tables named "public" in VPC vpc-1, expected at most one`, dup.Error())

	inconsistent := ErrInconsistentRoute{Cidr: "10.0.0.0/16"}
	assert.Contains(t, inconsistent.Error(), "exactly one of gateway or instance")
}
