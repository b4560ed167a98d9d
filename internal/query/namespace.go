package query

import (
	"context"
	"fmt"

	"awshell/internal/resources"
	"awshell/internal/session"
	"awshell/pkg/tabular"
)

// Namespace builds the query-mode function table over a live session.
func Namespace(sess *session.Manager) map[string]Func {
	simple := func(help string, fetch func(context.Context, *session.Manager) (*tabular.Table, error)) Func {
		return Func{
			Help: help,
			Call: func(args []any) (any, error) {
				if len(args) != 0 {
					return nil, fmt.Errorf("takes no arguments")
				}
				return fetch(context.Background(), sess)
			},
		}
	}

	optionalString := func(help string, fetch func(context.Context, *session.Manager, string) (*tabular.Table, error)) Func {
		return Func{
			Help: help,
			Call: func(args []any) (any, error) {
				arg := ""
				switch len(args) {
				case 0:
				case 1:
					s, ok := args[0].(string)
					if !ok {
						return nil, fmt.Errorf("expects a string argument, got %T", args[0])
					}
					arg = s
				default:
					return nil, fmt.Errorf("expects at most one argument")
				}
				return fetch(context.Background(), sess, arg)
			},
		}
	}

	return map[string]Func{
		"instances":       simple("EC2 instances", resources.Instances),
		"vpcs":            simple("VPCs", resources.VPCs),
		"subnets":         optionalString("subnets, optionally by VPC ID", resources.Subnets),
		"security_groups": optionalString("security groups, optionally by VPC ID", resources.SecurityGroups),
		"buckets":         simple("S3 buckets", resources.Buckets),
		"functions":       simple("Lambda functions", resources.Functions),
		"users":           simple("IAM users", resources.Users),
		"roles":           simple("IAM roles", resources.Roles),
		"policies":        simple("customer-managed IAM policies", resources.Policies),
		"stacks":          simple("active CloudFormation stacks", resources.Stacks),
		"queues":          simple("SQS queue URLs", resources.Queues),
		"db_instances":    simple("RDS instances", resources.DBInstances),
		"db_clusters":     simple("RDS clusters", resources.DBClusters),
		"secrets":         simple("Secrets Manager metadata", resources.Secrets),
		"tables":          simple("DynamoDB table names", resources.Tables),
		"alarms":          simple("CloudWatch alarms", resources.Alarms),
		"log_groups":      simple("CloudWatch log groups", resources.LogGroups),
		"hosted_zones":    simple("Route 53 hosted zones", resources.HostedZones),
		"distributions":   simple("CloudFront distributions", resources.Distributions),
		"accelerators":    simple("Global Accelerator accelerators", resources.Accelerators),
		"parameters":      simple("SSM parameters", resources.Parameters),
		"ecs_clusters":    simple("ECS clusters", resources.ECSClusters),
		"cache_clusters":  simple("ElastiCache clusters", resources.CacheClusters),
		"domains":         simple("OpenSearch domains", resources.Domains),
		"identities":      simple("SES email identities", resources.EmailIdentities),
		"user_pools":      simple("Cognito user pools", resources.UserPools),
		"keys":            simple("KMS keys", resources.Keys),
		"identity": Func{
			Help: "caller identity",
			Call: func(args []any) (any, error) {
				if len(args) != 0 {
					return nil, fmt.Errorf("takes no arguments")
				}
				id, err := sess.CallerIdentity(context.Background())
				if err != nil {
					return nil, err
				}
				return tabular.NewRecords([]tabular.Record{{
					"Account": id.Account,
					"UserId":  id.UserID,
					"Arn":     id.ARN,
				}}).WithTitle("Caller Identity"), nil
			},
		},
	}
}
