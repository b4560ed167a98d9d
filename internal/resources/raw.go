package resources

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"awshell/internal/session"
	"awshell/pkg/tabular"
)

// RawFunc executes one enumerated provider operation with string
// parameters and returns the converted table.
type RawFunc func(ctx context.Context, sess *session.Manager, params map[string]string) (*tabular.Table, error)

// rawOps is the closed operation set exposed through Raw. Every entry
// wraps a typed fetcher; there is no reflective passthrough to the SDK.
var rawOps = map[string]map[string]RawFunc{
	"ec2": {
		"describe-instances": func(ctx context.Context, sess *session.Manager, params map[string]string) (*tabular.Table, error) {
			if id := params["instance-id"]; id != "" {
				return Instance(ctx, sess, id)
			}
			return Instances(ctx, sess)
		},
		"describe-vpcs": noParams(VPCs),
		"describe-subnets": func(ctx context.Context, sess *session.Manager, params map[string]string) (*tabular.Table, error) {
			return Subnets(ctx, sess, params["vpc-id"])
		},
		"describe-security-groups": func(ctx context.Context, sess *session.Manager, params map[string]string) (*tabular.Table, error) {
			return SecurityGroups(ctx, sess, params["vpc-id"])
		},
	},
	"s3": {
		"list-buckets": noParams(Buckets),
		"list-objects": func(ctx context.Context, sess *session.Manager, params map[string]string) (*tabular.Table, error) {
			bucket := params["bucket"]
			if bucket == "" {
				return nil, fmt.Errorf("list-objects requires bucket=<name>")
			}
			return Objects(ctx, sess, bucket, params["prefix"])
		},
	},
	"iam": {
		"list-users":    noParams(Users),
		"list-roles":    noParams(Roles),
		"list-policies": noParams(Policies),
	},
	"lambda": {
		"list-functions": noParams(Functions),
		"get-function":   requiring("name", Function),
	},
	"cloudformation": {
		"list-stacks":     noParams(Stacks),
		"describe-stacks": requiring("stack-name", Stack),
	},
	"rds": {
		"describe-db-instances": noParams(DBInstances),
		"describe-db-clusters":  noParams(DBClusters),
	},
	"sqs": {
		"list-queues":          noParams(Queues),
		"get-queue-attributes": requiring("queue-url", QueueAttributes),
	},
	"secretsmanager": {
		"list-secrets": noParams(Secrets),
	},
	"dynamodb": {
		"list-tables":    noParams(Tables),
		"describe-table": requiring("table-name", TableInfo),
	},
	"cloudwatch": {
		"describe-alarms":     noParams(Alarms),
		"describe-log-groups": noParams(LogGroups),
	},
	"route53": {
		"list-hosted-zones":         noParams(HostedZones),
		"list-resource-record-sets": requiring("hosted-zone-id", DNSRecords),
		"get-hosted-zone":           requiring("id", HostedZone),
	},
	"cloudfront": {
		"list-distributions": noParams(Distributions),
		"get-distribution":   requiring("id", Distribution),
	},
	"globalaccelerator": {
		"list-accelerators":    noParams(Accelerators),
		"describe-accelerator": requiring("accelerator-arn", Accelerator),
	},
	"sesv2": {
		"list-email-identities":   noParams(EmailIdentities),
		"get-account":             noParams(SendQuota),
		"list-configuration-sets": noParams(ConfigurationSets),
		"get-email-identity":      requiring("email-identity", EmailIdentity),
	},
	"ssm": {
		"describe-parameters":           noParams(Parameters),
		"get-parameter":                 requiring("name", Parameter),
		"describe-instance-information": noParams(ManagedInstances),
	},
	"ecs": {
		"list-clusters":     noParams(ECSClusters),
		"describe-clusters": requiring("cluster", ECSCluster),
		"list-services":     requiring("cluster", ECSServices),
		"list-tasks":        requiring("cluster", ECSTasks),
	},
	"elasticache": {
		"describe-cache-clusters":     noParams(CacheClusters),
		"describe-replication-groups": noParams(ReplicationGroups),
	},
	"opensearch": {
		"list-domain-names": noParams(Domains),
		"describe-domain":   requiring("domain-name", Domain),
	},
	"cognito-idp": {
		"list-user-pools":    noParams(UserPools),
		"describe-user-pool": requiring("user-pool-id", UserPool),
		"list-users":         requiring("user-pool-id", PoolUsers),
	},
	"kms": {
		"list-keys":    noParams(Keys),
		"describe-key": requiring("key-id", KeyInfo),
		"list-aliases": func(ctx context.Context, sess *session.Manager, params map[string]string) (*tabular.Table, error) {
			return KeyAliases(ctx, sess, params["key-id"])
		},
	},
	"sso-admin": {
		"list-instances":       noParams(SSOInstances),
		"list-permission-sets": requiring("instance-arn", PermissionSets),
	},
}

func noParams(fetch func(context.Context, *session.Manager) (*tabular.Table, error)) RawFunc {
	return func(ctx context.Context, sess *session.Manager, _ map[string]string) (*tabular.Table, error) {
		return fetch(ctx, sess)
	}
}

func requiring(key string, fetch func(context.Context, *session.Manager, string) (*tabular.Table, error)) RawFunc {
	return func(ctx context.Context, sess *session.Manager, params map[string]string) (*tabular.Table, error) {
		value := params[key]
		if value == "" {
			return nil, fmt.Errorf("requires %s=<value>", key)
		}
		return fetch(ctx, sess, value)
	}
}

// Raw runs one operation from the closed set.
func Raw(ctx context.Context, sess *session.Manager, service, operation string, params map[string]string) (*tabular.Table, error) {
	ops, ok := rawOps[strings.ToLower(service)]
	if !ok {
		return nil, fmt.Errorf("unknown service %q (services: %s)", service, strings.Join(RawServices(), ", "))
	}
	fn, ok := ops[strings.ToLower(operation)]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q for %s (operations: %s)",
			operation, service, strings.Join(RawOperations(service), ", "))
	}
	return fn(ctx, sess, params)
}

// RawServices lists the services Raw knows, sorted.
func RawServices() []string {
	names := make([]string, 0, len(rawOps))
	for name := range rawOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RawOperations lists the operations of one service, sorted.
func RawOperations(service string) []string {
	ops := rawOps[strings.ToLower(service)]
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
