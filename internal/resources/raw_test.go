package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRejectsUnknownServiceAndOperation(t *testing.T) {
	_, err := Raw(context.Background(), nil, "lightsail", "get-instances", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lightsail")
	assert.Contains(t, err.Error(), "ec2")

	_, err = Raw(context.Background(), nil, "ec2", "terminate-instances", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminate-instances")
	assert.Contains(t, err.Error(), "describe-instances")
}

func TestRawRequiredParameters(t *testing.T) {
	_, err := Raw(context.Background(), nil, "s3", "list-objects", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket=")

	_, err = Raw(context.Background(), nil, "dynamodb", "describe-table", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table-name=")
}

func TestRawServicesAndOperationsAreSorted(t *testing.T) {
	services := RawServices()
	assert.Contains(t, services, "ec2")
	assert.Contains(t, services, "secretsmanager")
	assert.IsIncreasing(t, services)

	assert.IsIncreasing(t, RawOperations("ec2"))
	assert.Empty(t, RawOperations("nope"))
}

func TestRawCoversEveryServiceFamily(t *testing.T) {
	services := RawServices()
	for _, svc := range []string{
		"cloudformation", "cloudfront", "cloudwatch", "cognito-idp",
		"dynamodb", "ec2", "ecs", "elasticache", "globalaccelerator",
		"iam", "kms", "lambda", "opensearch", "rds", "route53", "s3",
		"secretsmanager", "sesv2", "sqs", "ssm", "sso-admin",
	} {
		assert.Contains(t, services, svc)
	}

	_, err := Raw(context.Background(), nil, "route53", "list-resource-record-sets", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hosted-zone-id=")
}
