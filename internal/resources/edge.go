package resources

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/globalaccelerator"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"

	"awshell/internal/session"
	"awshell/pkg/tabular"
)

// lastSegment returns everything after the final slash: the bare zone
// ID of a "/hostedzone/..." path, the task ID of an ECS task ARN.
func lastSegment(s string) string {
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// HostedZones lists Route 53 hosted zones.
func HostedZones(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.Route53(ctx)
	if err != nil {
		return nil, err
	}

	var zones []any
	pager := route53.NewListHostedZonesPaginator(client, &route53.ListHostedZonesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, zone := range page.HostedZones {
			zoneType := "Public"
			if zone.Config != nil && zone.Config.PrivateZone {
				zoneType = "Private"
			}
			zones = append(zones, tabular.Record{
				"ZoneId":      lastSegment(aws.ToString(zone.Id)),
				"Name":        aws.ToString(zone.Name),
				"Type":        zoneType,
				"RecordCount": aws.ToInt64(zone.ResourceRecordSetCount),
			})
		}
	}

	return tabular.New(zones).WithTitle("Route 53 Hosted Zones").WithColumns(
		tabular.Column{Path: "ZoneId", Header: "Zone ID"},
		tabular.Column{Path: "Name", Header: "Name"},
		tabular.Column{Path: "Type", Header: "Type"},
		tabular.Column{Path: "RecordCount", Header: "Record Count"},
	), nil
}

// recordValues joins a record set's values, appending the alias target
// when one is present.
func recordValues(record r53types.ResourceRecordSet) string {
	var values []string
	for _, rr := range record.ResourceRecords {
		values = append(values, aws.ToString(rr.Value))
	}
	if record.AliasTarget != nil {
		values = append(values, "ALIAS -> "+aws.ToString(record.AliasTarget.DNSName))
	}
	return strings.Join(values, ", ")
}

// DNSRecords lists the record sets of one hosted zone.
func DNSRecords(ctx context.Context, sess *session.Manager, zone string) (*tabular.Table, error) {
	client, err := sess.Route53(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(zone),
	})
	if err != nil {
		return nil, err
	}

	records := make([]any, 0, len(out.ResourceRecordSets))
	for _, record := range out.ResourceRecordSets {
		records = append(records, tabular.Record{
			"Name":   aws.ToString(record.Name),
			"Type":   string(record.Type),
			"TTL":    aws.ToInt64(record.TTL),
			"Values": recordValues(record),
		})
	}

	return tabular.New(records).WithTitle("DNS Records (Zone: "+zone+")").WithColumns(
		tabular.Column{Path: "Name", Header: "Name"},
		tabular.Column{Path: "Type", Header: "Type"},
		tabular.Column{Path: "TTL", Header: "TTL"},
		tabular.Column{Path: "Values", Header: "Values"},
	), nil
}

// HostedZone fetches one hosted zone's full configuration.
func HostedZone(ctx context.Context, sess *session.Manager, id string) (*tabular.Table, error) {
	client, err := sess.Route53(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: aws.String(id)})
	if err != nil {
		return nil, err
	}
	return tableOf(out.HostedZone, "Hosted Zone "+id)
}

// Distributions lists CloudFront distributions.
func Distributions(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.CloudFront(ctx)
	if err != nil {
		return nil, err
	}

	var items []any
	pager := cloudfront.NewListDistributionsPaginator(client, &cloudfront.ListDistributionsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if page.DistributionList == nil {
			continue
		}
		records, err := tabular.FromAny(page.DistributionList.Items)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			items = append(items, r)
		}
	}

	return tabular.New(items).WithTitle("CloudFront Distributions").WithColumns(
		tabular.Column{Path: "Id", Header: "ID"},
		tabular.Column{Path: "DomainName", Header: "Domain Name"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "Enabled", Header: "Enabled"},
		tabular.Column{Path: "Aliases.Items", Header: "Aliases"},
	), nil
}

// Distribution fetches one distribution's configuration.
func Distribution(ctx context.Context, sess *session.Manager, id string) (*tabular.Table, error) {
	client, err := sess.CloudFront(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetDistribution(ctx, &cloudfront.GetDistributionInput{Id: aws.String(id)})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Distribution, "Distribution "+id)
}

// Accelerators lists Global Accelerator accelerators.
func Accelerators(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.GlobalAccelerator(ctx)
	if err != nil {
		return nil, err
	}

	var accels []any
	pager := globalaccelerator.NewListAcceleratorsPaginator(client, &globalaccelerator.ListAcceleratorsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.Accelerators)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			accels = append(accels, r)
		}
	}

	return tabular.New(accels).WithTitle("Global Accelerators").WithColumns(
		tabular.Column{Path: "Name", Header: "Name"},
		tabular.Column{Path: "AcceleratorArn", Header: "ARN"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "Enabled", Header: "Enabled"},
		tabular.Column{Path: "DnsName", Header: "DNS Name"},
	), nil
}

// Accelerator fetches one accelerator by ARN.
func Accelerator(ctx context.Context, sess *session.Manager, arn string) (*tabular.Table, error) {
	client, err := sess.GlobalAccelerator(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeAccelerator(ctx, &globalaccelerator.DescribeAcceleratorInput{
		AcceleratorArn: aws.String(arn),
	})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Accelerator, "Accelerator "+arn)
}
