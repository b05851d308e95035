package routetable

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/Pearson-Advance/configuration/aws/helper/awsec2"
)

// validateRoute enforces the exactly-one-next-hop invariant on a desired
// route before any mutation is built from it.
func validateRoute(desired DesiredRoute) error {
	if (desired.Gateway == "") == (desired.Instance == "") {
		return awsec2.ErrInconsistentRoute{Cidr: desired.Cidr}
	}

	return nil
}

// findRoute returns the remote route whose destination CIDR matches, or
// nil. The CIDR is the natural key; the provider guarantees it is unique
// within a table.
func findRoute(routes []ec2types.Route, cidr string) *ec2types.Route {
	for i := range routes {
		if aws.ToString(routes[i].DestinationCidrBlock) == cidr {
			return &routes[i]
		}
	}

	return nil
}

// routeMatches reports whether the remote route already satisfies the
// desired one. The comparison is exact equality on whichever next-hop
// field the desired route populates; matching on the unpopulated side
// would call two routes equal just because both left a field empty.
func routeMatches(remote ec2types.Route, desired DesiredRoute) bool {
	if desired.Gateway != "" {
		return aws.ToString(remote.GatewayId) == desired.Gateway
	}

	return aws.ToString(remote.InstanceId) == desired.Instance
}

// flattenRoutes converts the provider's route entries into the result
// representation, preserving provider order.
func flattenRoutes(routes []ec2types.Route) []RouteInfo {
	flattened := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		flattened = append(flattened, RouteInfo{
			Cidr:     aws.ToString(route.DestinationCidrBlock),
			Gateway:  aws.ToString(route.GatewayId),
			Instance: aws.ToString(route.InstanceId),
			State:    string(route.State),
		})
	}

	return flattened
}

// desiredProjection renders the desired route set as result routes. Used
// in check mode, where no authoritative remote state exists to report.
func desiredProjection(routes []DesiredRoute) []RouteInfo {
	projected := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		projected = append(projected, RouteInfo{
			Cidr:     route.Cidr,
			Gateway:  route.Gateway,
			Instance: route.Instance,
		})
	}

	return projected
}

// expandTagSpecs converts the engine's tag list into a map.
func expandTagSpecs(tags []TagSpec) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[t.Key] = t.Value
	}
	return m
}
