// Package session manages AWS client construction for the shell. Clients
// are cached per service/profile/region and dropped wholesale when the user
// switches profile or region, so a stale client never answers for the wrong
// account.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/globalaccelerator"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/opensearch"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"

	"awshell/internal/config"
	"awshell/internal/logger"
)

// Identity is the caller identity the shell displays.
type Identity struct {
	Account string
	UserID  string
	ARN     string
}

// Manager builds and caches AWS service clients for the current
// profile/region pair.
type Manager struct {
	cfg *config.Config

	mu        sync.Mutex
	awsCfg    *aws.Config
	clients   map[string]any
	accountID string
}

// New creates a manager bound to the shell config. Clients are built
// lazily on first use.
func New(cfg *config.Config) *Manager {
	return &Manager{cfg: cfg, clients: make(map[string]any)}
}

// Config returns the shell config this manager reads profile/region from.
func (m *Manager) Config() *config.Config { return m.cfg }

// SwitchProfile updates the active profile and drops every cached client.
func (m *Manager) SwitchProfile(profile string) {
	m.cfg.Profile = profile
	m.reset()
}

// SwitchRegion updates the active region and drops every cached client.
func (m *Manager) SwitchRegion(region string) {
	m.cfg.Region = region
	m.reset()
}

func (m *Manager) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.awsCfg = nil
	m.clients = make(map[string]any)
	m.accountID = ""
	logger.Debug("AWS session reset", "profile", m.cfg.Profile, "region", m.cfg.Region)
}

// awsConfig loads (once per profile/region) the shared AWS configuration.
func (m *Manager) awsConfig(ctx context.Context) (aws.Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.awsCfg != nil {
		return *m.awsCfg, nil
	}

	loaded, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithSharedConfigProfile(m.cfg.Profile),
		awsconfig.WithRegion(m.cfg.Region),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	m.awsCfg = &loaded
	return loaded, nil
}

// clientFor returns the cached client for a service, building it on first
// use. The cache key includes profile and region so a switch always misses.
func clientFor[T any](ctx context.Context, m *Manager, service string, build func(aws.Config) T) (T, error) {
	var zero T
	awsCfg, err := m.awsConfig(ctx)
	if err != nil {
		return zero, err
	}

	key := fmt.Sprintf("%s:%s:%s", service, m.cfg.Region, m.cfg.Profile)
	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.clients[key]; ok {
		return cached.(T), nil
	}
	client := build(awsCfg)
	m.clients[key] = client
	return client, nil
}

// EC2 returns the EC2 client for the active profile/region.
func (m *Manager) EC2(ctx context.Context) (*ec2.Client, error) {
	return clientFor(ctx, m, "ec2", func(c aws.Config) *ec2.Client { return ec2.NewFromConfig(c) })
}

// S3 returns the S3 client for the active profile/region.
func (m *Manager) S3(ctx context.Context) (*s3.Client, error) {
	return clientFor(ctx, m, "s3", func(c aws.Config) *s3.Client { return s3.NewFromConfig(c) })
}

// IAM returns the IAM client for the active profile/region.
func (m *Manager) IAM(ctx context.Context) (*iam.Client, error) {
	return clientFor(ctx, m, "iam", func(c aws.Config) *iam.Client { return iam.NewFromConfig(c) })
}

// STS returns the STS client for the active profile/region.
func (m *Manager) STS(ctx context.Context) (*sts.Client, error) {
	return clientFor(ctx, m, "sts", func(c aws.Config) *sts.Client { return sts.NewFromConfig(c) })
}

// Lambda returns the Lambda client for the active profile/region.
func (m *Manager) Lambda(ctx context.Context) (*lambda.Client, error) {
	return clientFor(ctx, m, "lambda", func(c aws.Config) *lambda.Client { return lambda.NewFromConfig(c) })
}

// CloudFormation returns the CloudFormation client for the active profile/region.
func (m *Manager) CloudFormation(ctx context.Context) (*cloudformation.Client, error) {
	return clientFor(ctx, m, "cloudformation", func(c aws.Config) *cloudformation.Client { return cloudformation.NewFromConfig(c) })
}

// RDS returns the RDS client for the active profile/region.
func (m *Manager) RDS(ctx context.Context) (*rds.Client, error) {
	return clientFor(ctx, m, "rds", func(c aws.Config) *rds.Client { return rds.NewFromConfig(c) })
}

// SQS returns the SQS client for the active profile/region.
func (m *Manager) SQS(ctx context.Context) (*sqs.Client, error) {
	return clientFor(ctx, m, "sqs", func(c aws.Config) *sqs.Client { return sqs.NewFromConfig(c) })
}

// SecretsManager returns the Secrets Manager client for the active profile/region.
func (m *Manager) SecretsManager(ctx context.Context) (*secretsmanager.Client, error) {
	return clientFor(ctx, m, "secretsmanager", func(c aws.Config) *secretsmanager.Client { return secretsmanager.NewFromConfig(c) })
}

// DynamoDB returns the DynamoDB client for the active profile/region.
func (m *Manager) DynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	return clientFor(ctx, m, "dynamodb", func(c aws.Config) *dynamodb.Client { return dynamodb.NewFromConfig(c) })
}

// CloudWatch returns the CloudWatch client for the active profile/region.
func (m *Manager) CloudWatch(ctx context.Context) (*cloudwatch.Client, error) {
	return clientFor(ctx, m, "cloudwatch", func(c aws.Config) *cloudwatch.Client { return cloudwatch.NewFromConfig(c) })
}

// CloudWatchLogs returns the CloudWatch Logs client for the active profile/region.
func (m *Manager) CloudWatchLogs(ctx context.Context) (*cloudwatchlogs.Client, error) {
	return clientFor(ctx, m, "logs", func(c aws.Config) *cloudwatchlogs.Client { return cloudwatchlogs.NewFromConfig(c) })
}

// Route53 returns the Route 53 client for the active profile/region.
func (m *Manager) Route53(ctx context.Context) (*route53.Client, error) {
	return clientFor(ctx, m, "route53", func(c aws.Config) *route53.Client { return route53.NewFromConfig(c) })
}

// CloudFront returns the CloudFront client for the active profile/region.
func (m *Manager) CloudFront(ctx context.Context) (*cloudfront.Client, error) {
	return clientFor(ctx, m, "cloudfront", func(c aws.Config) *cloudfront.Client { return cloudfront.NewFromConfig(c) })
}

// GlobalAccelerator returns the Global Accelerator client for the active profile/region.
func (m *Manager) GlobalAccelerator(ctx context.Context) (*globalaccelerator.Client, error) {
	return clientFor(ctx, m, "globalaccelerator", func(c aws.Config) *globalaccelerator.Client { return globalaccelerator.NewFromConfig(c) })
}

// SESV2 returns the SES v2 client for the active profile/region.
func (m *Manager) SESV2(ctx context.Context) (*sesv2.Client, error) {
	return clientFor(ctx, m, "sesv2", func(c aws.Config) *sesv2.Client { return sesv2.NewFromConfig(c) })
}

// SSM returns the Systems Manager client for the active profile/region.
func (m *Manager) SSM(ctx context.Context) (*ssm.Client, error) {
	return clientFor(ctx, m, "ssm", func(c aws.Config) *ssm.Client { return ssm.NewFromConfig(c) })
}

// ECS returns the ECS client for the active profile/region.
func (m *Manager) ECS(ctx context.Context) (*ecs.Client, error) {
	return clientFor(ctx, m, "ecs", func(c aws.Config) *ecs.Client { return ecs.NewFromConfig(c) })
}

// ElastiCache returns the ElastiCache client for the active profile/region.
func (m *Manager) ElastiCache(ctx context.Context) (*elasticache.Client, error) {
	return clientFor(ctx, m, "elasticache", func(c aws.Config) *elasticache.Client { return elasticache.NewFromConfig(c) })
}

// OpenSearch returns the OpenSearch client for the active profile/region.
func (m *Manager) OpenSearch(ctx context.Context) (*opensearch.Client, error) {
	return clientFor(ctx, m, "opensearch", func(c aws.Config) *opensearch.Client { return opensearch.NewFromConfig(c) })
}

// Cognito returns the Cognito user pools client for the active profile/region.
func (m *Manager) Cognito(ctx context.Context) (*cognitoidentityprovider.Client, error) {
	return clientFor(ctx, m, "cognito-idp", func(c aws.Config) *cognitoidentityprovider.Client { return cognitoidentityprovider.NewFromConfig(c) })
}

// KMS returns the KMS client for the active profile/region.
func (m *Manager) KMS(ctx context.Context) (*kms.Client, error) {
	return clientFor(ctx, m, "kms", func(c aws.Config) *kms.Client { return kms.NewFromConfig(c) })
}

// SSOAdmin returns the SSO Admin client for the active profile/region.
func (m *Manager) SSOAdmin(ctx context.Context) (*ssoadmin.Client, error) {
	return clientFor(ctx, m, "sso-admin", func(c aws.Config) *ssoadmin.Client { return ssoadmin.NewFromConfig(c) })
}

// CallerIdentity fetches the STS caller identity. Single attempt, no retry
// beyond what the SDK does itself.
func (m *Manager) CallerIdentity(ctx context.Context) (Identity, error) {
	client, err := m.STS(ctx)
	if err != nil {
		return Identity{}, err
	}
	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, err
	}
	id := Identity{
		Account: aws.ToString(out.Account),
		UserID:  aws.ToString(out.UserId),
		ARN:     aws.ToString(out.Arn),
	}
	m.mu.Lock()
	m.accountID = id.Account
	m.mu.Unlock()
	return id, nil
}

// AccountID returns the cached account ID, fetching it once. Failures
// degrade to "N/A" so banner and prompt rendering never block the shell.
func (m *Manager) AccountID(ctx context.Context) string {
	m.mu.Lock()
	cached := m.accountID
	m.mu.Unlock()
	if cached != "" {
		return cached
	}
	id, err := m.CallerIdentity(ctx)
	if err != nil {
		return "N/A"
	}
	return id.Account
}

// FormatError renders an AWS error as a short "Code: message" line instead
// of the SDK's operation-wrapped chain.
func FormatError(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}
