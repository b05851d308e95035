// Package routetable reconciles one EC2 route table, identified by VPC id
// and Name tag, against a desired description of routes and tags.
package routetable

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/sirupsen/logrus"

	"github.com/Pearson-Advance/configuration/aws/helper/awsec2"
	"github.com/Pearson-Advance/configuration/aws/util"
)

// Opts describe the desired state for one reconciliation pass.
type Opts struct {
	VpcId     string
	Name      string
	Routes    []DesiredRoute
	Tags      []TagSpec
	CheckMode bool
}

// Reconciler drives one route table towards the desired state. It holds no
// provider state across passes; the remote table is re-queried on every
// run.
type Reconciler struct {
	api  awsec2.API
	opts Opts

	// table is bound by Locate and nil until then.
	table *ec2types.RouteTable
}

func NewReconciler(api awsec2.API, opts Opts) *Reconciler {
	return &Reconciler{api: api, opts: opts}
}

// Locate queries the provider for route tables in the target VPC whose
// Name tag equals the configured name. A missing table is a normal
// outcome, reported as nil without an error; more than one match makes the
// lookup key ambiguous and fails with ErrDuplicateRouteTable before any
// mutation.
func (r *Reconciler) Locate(ctx context.Context) (*ec2types.RouteTable, error) {
	resp, err := r.api.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{r.opts.VpcId}},
			{Name: aws.String("tag:" + util.NameTagKey), Values: []string{r.opts.Name}},
		},
	})

	if err != nil {
		return nil, awsec2.WrapAPIError(err, "describing route tables")
	}

	switch len(resp.RouteTables) {
	case 0:
		return nil, nil
	case 1:
		r.table = &resp.RouteTables[0]
		return r.table, nil
	default:
		return nil, awsec2.ErrDuplicateRouteTable{
			VpcId: r.opts.VpcId,
			Name:  r.opts.Name,
			Count: len(resp.RouteTables),
		}
	}
}

// EnsurePresent creates the table if it is missing, tags it, and adjusts
// its route entries to match the desired list. Tags are applied only on
// creation; an existing table's tags are left as they are. Remote routes
// absent from the desired list are never removed: the reconciler is
// additive and corrective only.
func (r *Reconciler) EnsurePresent(ctx context.Context) (*Result, error) {
	changed := false

	table, err := r.Locate(ctx)

	if err != nil {
		return nil, err
	}

	if table == nil {
		table, err = r.create(ctx)

		if err != nil {
			return nil, err
		}

		changed = true
	}

	routesChanged, err := r.applyRoutes(ctx, table)
	changed = changed || routesChanged

	if err != nil {
		return nil, err
	}

	result := &Result{
		Changed: changed,
		Id:      aws.ToString(table.RouteTableId),
		Name:    r.opts.Name,
	}

	if r.opts.CheckMode && changed {
		result.Routes = desiredProjection(r.opts.Routes)
		return result, nil
	}

	if changed {
		table, err = r.refresh(ctx, aws.ToString(table.RouteTableId))

		if err != nil {
			return nil, err
		}
	}

	result.Routes = flattenRoutes(table.Routes)

	return result, nil
}

// EnsureAbsent deletes the table when it exists and is a no-op otherwise.
// On the not-found path the result carries no id, since no table was ever
// bound.
func (r *Reconciler) EnsureAbsent(ctx context.Context) (*Result, error) {
	table, err := r.Locate(ctx)

	if err != nil {
		return nil, err
	}

	if table == nil {
		return &Result{Changed: false, Name: r.opts.Name}, nil
	}

	if !r.opts.CheckMode {
		_, err = r.api.DeleteRouteTable(ctx, &ec2.DeleteRouteTableInput{
			RouteTableId: table.RouteTableId,
		})

		if err != nil {
			return nil, awsec2.WrapAPIError(err, "deleting route table")
		}
	}

	logrus.WithFields(logrus.Fields{
		"route_table_id": aws.ToString(table.RouteTableId),
		"check_mode":     r.opts.CheckMode,
	}).Debug("Deleted route table")

	return &Result{
		Changed: true,
		Id:      aws.ToString(table.RouteTableId),
		Name:    r.opts.Name,
	}, nil
}

func (r *Reconciler) create(ctx context.Context) (*ec2types.RouteTable, error) {
	if r.opts.CheckMode {
		return &ec2types.RouteTable{VpcId: aws.String(r.opts.VpcId)}, nil
	}

	resp, err := r.api.CreateRouteTable(ctx, &ec2.CreateRouteTableInput{
		VpcId: aws.String(r.opts.VpcId),
	})

	if err != nil {
		return nil, awsec2.WrapAPIError(err, "creating route table")
	}

	table := resp.RouteTable

	logrus.WithFields(logrus.Fields{
		"route_table_id": aws.ToString(table.RouteTableId),
		"vpc_id":         r.opts.VpcId,
	}).Debug("Created route table")

	_, err = r.api.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: []string{aws.ToString(table.RouteTableId)},
		Tags: util.ExpandToEc2Tags(
			util.MergeNameTag(r.opts.Name, expandTagSpecs(r.opts.Tags))),
	})

	if err != nil {
		return nil, awsec2.WrapAPIError(err, "tagging route table")
	}

	r.table = table

	return table, nil
}

// applyRoutes walks the desired route set and issues the minimal create or
// replace call per entry. A malformed entry aborts the batch; entries
// already applied stay applied, there is no rollback.
func (r *Reconciler) applyRoutes(ctx context.Context, table *ec2types.RouteTable) (bool, error) {
	changed := false

	for _, desired := range r.opts.Routes {
		if err := validateRoute(desired); err != nil {
			return changed, err
		}

		remote := findRoute(table.Routes, desired.Cidr)

		if remote != nil && routeMatches(*remote, desired) {
			continue
		}

		changed = true

		if r.opts.CheckMode {
			continue
		}

		if remote == nil {
			input := &ec2.CreateRouteInput{
				RouteTableId:         table.RouteTableId,
				DestinationCidrBlock: aws.String(desired.Cidr),
			}
			setNextHopCreate(input, desired)

			if _, err := r.api.CreateRoute(ctx, input); err != nil {
				return changed, awsec2.WrapAPIError(err, fmt.Sprintf("creating route %s", desired.Cidr))
			}

			logrus.WithFields(routeFields(desired)).Debug("Created route")
			continue
		}

		input := &ec2.ReplaceRouteInput{
			RouteTableId:         table.RouteTableId,
			DestinationCidrBlock: aws.String(desired.Cidr),
		}
		setNextHopReplace(input, desired)

		if _, err := r.api.ReplaceRoute(ctx, input); err != nil {
			return changed, awsec2.WrapAPIError(err, fmt.Sprintf("replacing route %s", desired.Cidr))
		}

		logrus.WithFields(routeFields(desired)).Debug("Replaced route")
	}

	return changed, nil
}

// refresh re-reads the table by id so a mutated pass reports the
// provider's view of the route set rather than a local guess.
func (r *Reconciler) refresh(ctx context.Context, id string) (*ec2types.RouteTable, error) {
	resp, err := r.api.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
		RouteTableIds: []string{id},
	})

	if err != nil {
		return nil, awsec2.WrapAPIError(err, "refreshing route table")
	}

	if len(resp.RouteTables) != 1 {
		return nil, fmt.Errorf("route table %s vanished during reconciliation", id)
	}

	r.table = &resp.RouteTables[0]

	return r.table, nil
}

func setNextHopCreate(input *ec2.CreateRouteInput, desired DesiredRoute) {
	if desired.Gateway != "" {
		input.GatewayId = aws.String(desired.Gateway)
		return
	}
	input.InstanceId = aws.String(desired.Instance)
}

func setNextHopReplace(input *ec2.ReplaceRouteInput, desired DesiredRoute) {
	if desired.Gateway != "" {
		input.GatewayId = aws.String(desired.Gateway)
		return
	}
	input.InstanceId = aws.String(desired.Instance)
}

func routeFields(desired DesiredRoute) logrus.Fields {
	return logrus.Fields{
		"cidr":     desired.Cidr,
		"gateway":  desired.Gateway,
		"instance": desired.Instance,
	}
}
