// Package resources fetches AWS resource listings and wraps them as result
// tables. These fetchers back both the shell verbs and the query-mode
// namespace, so every listing carries the same columns either way.
//
// Every fetch is a single synchronous attempt; pagination is drained
// in-process because the table operates on fully materialized data.
package resources

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"awshell/internal/session"
	"awshell/pkg/tabular"
)

// tableOf converts any SDK value into a table with the given columns.
func tableOf(v any, title string, cols ...tabular.Column) (*tabular.Table, error) {
	records, err := tabular.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("converting response: %w", err)
	}
	t := tabular.NewRecords(records).WithTitle(title)
	if len(cols) > 0 {
		t = t.WithColumns(cols...)
	}
	return t, nil
}

// Instances lists every EC2 instance in the region.
func Instances(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.EC2(ctx)
	if err != nil {
		return nil, err
	}

	var instances []ec2types.Instance
	pager := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, reservation := range page.Reservations {
			instances = append(instances, reservation.Instances...)
		}
	}

	title := fmt.Sprintf("EC2 Instances (%s)", sess.Config().Region)
	return tableOf(instances, title,
		tabular.Column{Path: "InstanceId", Header: "Instance ID"},
		tabular.Column{Path: "Tags.Name", Header: "Name"},
		tabular.Column{Path: "State.Name", Header: "State"},
		tabular.Column{Path: "InstanceType", Header: "Type"},
		tabular.Column{Path: "PrivateIpAddress", Header: "Private IP"},
		tabular.Column{Path: "PublicIpAddress", Header: "Public IP"},
		tabular.Column{Path: "LaunchTime", Header: "Launch Time"},
	)
}

// Instance describes one instance by ID, returning the raw reservations.
func Instance(ctx context.Context, sess *session.Manager, id string) (*tabular.Table, error) {
	client, err := sess.EC2(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Reservations, "Instance "+id)
}

// StartInstance starts an instance by ID.
func StartInstance(ctx context.Context, sess *session.Manager, id string) error {
	client, err := sess.EC2(ctx)
	if err != nil {
		return err
	}
	_, err = client.StartInstances(ctx, &ec2.StartInstancesInput{InstanceIds: []string{id}})
	return err
}

// StopInstance stops an instance by ID.
func StopInstance(ctx context.Context, sess *session.Manager, id string) error {
	client, err := sess.EC2(ctx)
	if err != nil {
		return err
	}
	_, err = client.StopInstances(ctx, &ec2.StopInstancesInput{InstanceIds: []string{id}})
	return err
}

// VPCs lists the region's VPCs.
func VPCs(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.EC2(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Vpcs, "VPCs",
		tabular.Column{Path: "VpcId", Header: "VPC ID"},
		tabular.Column{Path: "Tags.Name", Header: "Name"},
		tabular.Column{Path: "CidrBlock", Header: "CIDR"},
		tabular.Column{Path: "State", Header: "State"},
		tabular.Column{Path: "IsDefault", Header: "Default"},
	)
}

func vpcFilter(vpcID string) []ec2types.Filter {
	if vpcID == "" {
		return nil
	}
	return []ec2types.Filter{{Name: aws.String("vpc-id"), Values: []string{vpcID}}}
}

// Subnets lists subnets, optionally scoped to one VPC.
func Subnets(ctx context.Context, sess *session.Manager, vpcID string) (*tabular.Table, error) {
	client, err := sess.EC2(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{Filters: vpcFilter(vpcID)})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Subnets, "Subnets",
		tabular.Column{Path: "SubnetId", Header: "Subnet ID"},
		tabular.Column{Path: "VpcId", Header: "VPC"},
		tabular.Column{Path: "CidrBlock", Header: "CIDR"},
		tabular.Column{Path: "AvailabilityZone", Header: "AZ"},
		tabular.Column{Path: "State", Header: "State"},
	)
}

// SecurityGroups lists security groups, optionally scoped to one VPC.
func SecurityGroups(ctx context.Context, sess *session.Manager, vpcID string) (*tabular.Table, error) {
	client, err := sess.EC2(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{Filters: vpcFilter(vpcID)})
	if err != nil {
		return nil, err
	}
	return tableOf(out.SecurityGroups, "Security Groups",
		tabular.Column{Path: "GroupId", Header: "Group ID"},
		tabular.Column{Path: "GroupName", Header: "Name"},
		tabular.Column{Path: "VpcId", Header: "VPC"},
		tabular.Column{Path: "Description", Header: "Description"},
	)
}

// Buckets lists S3 buckets.
func Buckets(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.S3(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Buckets, "S3 Buckets",
		tabular.Column{Path: "Name", Header: "Name"},
		tabular.Column{Path: "CreationDate", Header: "Created"},
	)
}

// Objects lists up to one page run of objects in a bucket under a prefix.
func Objects(ctx context.Context, sess *session.Manager, bucket, prefix string) (*tabular.Table, error) {
	client, err := sess.S3(ctx)
	if err != nil {
		return nil, err
	}

	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []any
	pager := s3.NewListObjectsV2Paginator(client, input)
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.Contents)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			objects = append(objects, r)
		}
	}

	return tabular.New(objects).WithTitle("s3://"+bucket+"/"+prefix).WithColumns(
		tabular.Column{Path: "Key", Header: "Key"},
		tabular.Column{Path: "Size", Header: "Size"},
		tabular.Column{Path: "LastModified", Header: "Modified"},
		tabular.Column{Path: "StorageClass", Header: "Class"},
	), nil
}

// Functions lists Lambda functions.
func Functions(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.Lambda(ctx)
	if err != nil {
		return nil, err
	}

	var functions []any
	pager := lambda.NewListFunctionsPaginator(client, &lambda.ListFunctionsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.Functions)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			functions = append(functions, r)
		}
	}

	return tabular.New(functions).WithTitle("Lambda Functions").WithColumns(
		tabular.Column{Path: "FunctionName", Header: "Name"},
		tabular.Column{Path: "Runtime", Header: "Runtime"},
		tabular.Column{Path: "MemorySize", Header: "Memory"},
		tabular.Column{Path: "Timeout", Header: "Timeout"},
		tabular.Column{Path: "LastModified", Header: "Modified"},
	), nil
}

// Function fetches one Lambda function's configuration.
func Function(ctx context.Context, sess *session.Manager, name string) (*tabular.Table, error) {
	client, err := sess.Lambda(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetFunction(ctx, &lambda.GetFunctionInput{FunctionName: aws.String(name)})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Configuration, "Function "+name)
}

// Users lists IAM users.
func Users(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.IAM(ctx)
	if err != nil {
		return nil, err
	}

	var users []iamtypes.User
	pager := iam.NewListUsersPaginator(client, &iam.ListUsersInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		users = append(users, page.Users...)
	}

	return tableOf(users, "IAM Users",
		tabular.Column{Path: "UserName", Header: "Name"},
		tabular.Column{Path: "UserId", Header: "User ID"},
		tabular.Column{Path: "Arn", Header: "ARN"},
		tabular.Column{Path: "CreateDate", Header: "Created"},
	)
}

// Roles lists IAM roles.
func Roles(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.IAM(ctx)
	if err != nil {
		return nil, err
	}

	var roles []iamtypes.Role
	pager := iam.NewListRolesPaginator(client, &iam.ListRolesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		roles = append(roles, page.Roles...)
	}

	return tableOf(roles, "IAM Roles",
		tabular.Column{Path: "RoleName", Header: "Name"},
		tabular.Column{Path: "Arn", Header: "ARN"},
		tabular.Column{Path: "CreateDate", Header: "Created"},
	)
}

// Policies lists customer-managed IAM policies.
func Policies(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.IAM(ctx)
	if err != nil {
		return nil, err
	}

	var policies []iamtypes.Policy
	pager := iam.NewListPoliciesPaginator(client, &iam.ListPoliciesInput{
		Scope: iamtypes.PolicyScopeTypeLocal,
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		policies = append(policies, page.Policies...)
	}

	return tableOf(policies, "IAM Policies (customer managed)",
		tabular.Column{Path: "PolicyName", Header: "Name"},
		tabular.Column{Path: "Arn", Header: "ARN"},
		tabular.Column{Path: "AttachmentCount", Header: "Attached"},
		tabular.Column{Path: "UpdateDate", Header: "Updated"},
	)
}

// Stacks lists active CloudFormation stacks.
func Stacks(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.CloudFormation(ctx)
	if err != nil {
		return nil, err
	}

	var stacks []cfntypes.StackSummary
	pager := cloudformation.NewListStacksPaginator(client, &cloudformation.ListStacksInput{
		StackStatusFilter: []cfntypes.StackStatus{
			cfntypes.StackStatusCreateComplete,
			cfntypes.StackStatusUpdateComplete,
			cfntypes.StackStatusRollbackComplete,
		},
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		stacks = append(stacks, page.StackSummaries...)
	}

	return tableOf(stacks, "CloudFormation Stacks",
		tabular.Column{Path: "StackName", Header: "Name"},
		tabular.Column{Path: "StackStatus", Header: "Status"},
		tabular.Column{Path: "CreationTime", Header: "Created"},
		tabular.Column{Path: "LastUpdatedTime", Header: "Updated"},
	)
}

// Stack describes one CloudFormation stack.
func Stack(ctx context.Context, sess *session.Manager, name string) (*tabular.Table, error) {
	client, err := sess.CloudFormation(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Stacks, "Stack "+name)
}

// Queues lists SQS queue URLs.
func Queues(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.SQS(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.ListQueues(ctx, &sqs.ListQueuesInput{})
	if err != nil {
		return nil, err
	}
	return tabular.New(tabular.FromValues(out.QueueUrls)).WithTitle("SQS Queues"), nil
}

// QueueAttributes fetches all attributes of one queue.
func QueueAttributes(ctx context.Context, sess *session.Manager, queueURL string) (*tabular.Table, error) {
	client, err := sess.SQS(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(queueURL),
		AttributeNames: []sqstypes.QueueAttributeName{sqstypes.QueueAttributeNameAll},
	})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Attributes, "Queue Attributes")
}

// DBInstances lists RDS instances.
func DBInstances(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.RDS(ctx)
	if err != nil {
		return nil, err
	}

	var dbs []any
	pager := rds.NewDescribeDBInstancesPaginator(client, &rds.DescribeDBInstancesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.DBInstances)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			dbs = append(dbs, r)
		}
	}

	return tabular.New(dbs).WithTitle("RDS Instances").WithColumns(
		tabular.Column{Path: "DBInstanceIdentifier", Header: "Identifier"},
		tabular.Column{Path: "Engine", Header: "Engine"},
		tabular.Column{Path: "DBInstanceClass", Header: "Class"},
		tabular.Column{Path: "DBInstanceStatus", Header: "Status"},
		tabular.Column{Path: "Endpoint.Address", Header: "Endpoint"},
	), nil
}

// DBClusters lists RDS/Aurora clusters.
func DBClusters(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.RDS(ctx)
	if err != nil {
		return nil, err
	}

	var clusters []any
	pager := rds.NewDescribeDBClustersPaginator(client, &rds.DescribeDBClustersInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.DBClusters)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			clusters = append(clusters, r)
		}
	}

	return tabular.New(clusters).WithTitle("RDS Clusters").WithColumns(
		tabular.Column{Path: "DBClusterIdentifier", Header: "Identifier"},
		tabular.Column{Path: "Engine", Header: "Engine"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "Endpoint", Header: "Endpoint"},
	), nil
}

// Secrets lists Secrets Manager secret metadata. Values are never fetched.
func Secrets(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.SecretsManager(ctx)
	if err != nil {
		return nil, err
	}

	var secrets []any
	pager := secretsmanager.NewListSecretsPaginator(client, &secretsmanager.ListSecretsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.SecretList)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			secrets = append(secrets, r)
		}
	}

	return tabular.New(secrets).WithTitle("Secrets (metadata only)").WithColumns(
		tabular.Column{Path: "Name", Header: "Name"},
		tabular.Column{Path: "Description", Header: "Description"},
		tabular.Column{Path: "LastChangedDate", Header: "Changed"},
	), nil
}

// Tables lists DynamoDB table names.
func Tables(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.DynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.ListTables(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		return nil, err
	}
	return tabular.New(tabular.FromValues(out.TableNames)).WithTitle("DynamoDB Tables"), nil
}

// TableInfo describes one DynamoDB table.
func TableInfo(ctx context.Context, sess *session.Manager, name string) (*tabular.Table, error) {
	client, err := sess.DynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Table, "Table "+name)
}

// Alarms lists CloudWatch metric alarms.
func Alarms(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.CloudWatch(ctx)
	if err != nil {
		return nil, err
	}

	var alarms []any
	pager := cloudwatch.NewDescribeAlarmsPaginator(client, &cloudwatch.DescribeAlarmsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.MetricAlarms)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			alarms = append(alarms, r)
		}
	}

	return tabular.New(alarms).WithTitle("CloudWatch Alarms").WithColumns(
		tabular.Column{Path: "AlarmName", Header: "Name"},
		tabular.Column{Path: "StateValue", Header: "State"},
		tabular.Column{Path: "MetricName", Header: "Metric"},
		tabular.Column{Path: "Namespace", Header: "Namespace"},
	), nil
}

// LogGroups lists CloudWatch log groups.
func LogGroups(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.CloudWatchLogs(ctx)
	if err != nil {
		return nil, err
	}

	var groups []any
	pager := cloudwatchlogs.NewDescribeLogGroupsPaginator(client, &cloudwatchlogs.DescribeLogGroupsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.LogGroups)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			groups = append(groups, r)
		}
	}

	return tabular.New(groups).WithTitle("Log Groups").WithColumns(
		tabular.Column{Path: "LogGroupName", Header: "Name"},
		tabular.Column{Path: "RetentionInDays", Header: "Retention"},
		tabular.Column{Path: "StoredBytes", Header: "Stored Bytes"},
	), nil
}
