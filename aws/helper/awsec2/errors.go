package awsec2

import (
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// ErrDuplicateRouteTable reports more than one route table matching the
// VPC id + Name tag filter. The lookup key is ambiguous and no mutation is
// safe, so the reconciliation aborts before touching anything.
type ErrDuplicateRouteTable struct {
	VpcId string
	Name  string
	Count int
}

func (e ErrDuplicateRouteTable) Error() string {
	return fmt.Sprintf("found %d route tables named %q in VPC %s, expected at most one",
		e.Count, e.Name, e.VpcId)
}

// ErrInconsistentRoute reports a desired route with zero or two next-hop
// designations. Exactly one of gateway/instance must be set.
type ErrInconsistentRoute struct {
	Cidr string
}

func (e ErrInconsistentRoute) Error() string {
	return fmt.Sprintf("route %s must carry exactly one of gateway or instance", e.Cidr)
}

// WrapAPIError attaches call-site context to a provider failure. When the
// SDK surfaced a coded API error, the code is kept visible in the message
// so the caller's report names the actual AWS condition.
func WrapAPIError(err error, msg string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return errors.Wrapf(err, "%s (%s)", msg, apiErr.ErrorCode())
	}

	return errors.Wrap(err, msg)
}
