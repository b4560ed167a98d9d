package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin"

	"awshell/internal/session"
	"awshell/pkg/tabular"
)

// EmailIdentities lists SES email identities.
func EmailIdentities(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.SESV2(ctx)
	if err != nil {
		return nil, err
	}

	var identities []any
	pager := sesv2.NewListEmailIdentitiesPaginator(client, &sesv2.ListEmailIdentitiesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.EmailIdentities)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			identities = append(identities, r)
		}
	}

	title := fmt.Sprintf("SES Email Identities (%s)", sess.Config().Region)
	return tabular.New(identities).WithTitle(title).WithColumns(
		tabular.Column{Path: "IdentityName", Header: "Identity"},
		tabular.Column{Path: "IdentityType", Header: "Type"},
		tabular.Column{Path: "SendingEnabled", Header: "Sending Enabled"},
	), nil
}

// SendQuota fetches the account's SES sending quota.
func SendQuota(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.SESV2(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetAccount(ctx, &sesv2.GetAccountInput{})
	if err != nil {
		return nil, err
	}
	return tableOf(out.SendQuota, "SES Send Quota")
}

// ConfigurationSets lists SES configuration set names.
func ConfigurationSets(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.SESV2(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.ListConfigurationSets(ctx, &sesv2.ListConfigurationSetsInput{})
	if err != nil {
		return nil, err
	}

	names := make([]any, 0, len(out.ConfigurationSets))
	for _, name := range out.ConfigurationSets {
		names = append(names, name)
	}
	title := fmt.Sprintf("SES Configuration Sets (%s)", sess.Config().Region)
	return tabular.New(names).WithTitle(title), nil
}

// EmailIdentity fetches one email identity's configuration.
func EmailIdentity(ctx context.Context, sess *session.Manager, name string) (*tabular.Table, error) {
	client, err := sess.SESV2(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetEmailIdentity(ctx, &sesv2.GetEmailIdentityInput{EmailIdentity: aws.String(name)})
	if err != nil {
		return nil, err
	}
	return tableOf(out, "Email Identity "+name)
}

// UserPools lists Cognito user pools.
func UserPools(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.Cognito(ctx)
	if err != nil {
		return nil, err
	}

	var pools []any
	pager := cognitoidentityprovider.NewListUserPoolsPaginator(client, &cognitoidentityprovider.ListUserPoolsInput{
		MaxResults: aws.Int32(60),
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.UserPools)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			pools = append(pools, r)
		}
	}

	title := fmt.Sprintf("Cognito User Pools (%s)", sess.Config().Region)
	return tabular.New(pools).WithTitle(title).WithColumns(
		tabular.Column{Path: "Id", Header: "Pool ID"},
		tabular.Column{Path: "Name", Header: "Name"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "CreationDate", Header: "Created"},
		tabular.Column{Path: "LastModifiedDate", Header: "Last Modified"},
	), nil
}

// UserPool describes one user pool.
func UserPool(ctx context.Context, sess *session.Manager, id string) (*tabular.Table, error) {
	client, err := sess.Cognito(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeUserPool(ctx, &cognitoidentityprovider.DescribeUserPoolInput{
		UserPoolId: aws.String(id),
	})
	if err != nil {
		return nil, err
	}
	return tableOf(out.UserPool, "User Pool "+id)
}

// userEmail pulls the email attribute out of a Cognito user record.
func userEmail(attrs []cognitotypes.AttributeType) string {
	for _, attr := range attrs {
		if aws.ToString(attr.Name) == "email" {
			return aws.ToString(attr.Value)
		}
	}
	return ""
}

// PoolUsers lists the users of one Cognito pool.
func PoolUsers(ctx context.Context, sess *session.Manager, poolID string) (*tabular.Table, error) {
	client, err := sess.Cognito(ctx)
	if err != nil {
		return nil, err
	}

	var users []any
	pager := cognitoidentityprovider.NewListUsersPaginator(client, &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(poolID),
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, user := range page.Users {
			users = append(users, tabular.Record{
				"Username": aws.ToString(user.Username),
				"Status":   string(user.UserStatus),
				"Enabled":  user.Enabled,
				"Created":  user.UserCreateDate,
				"Email":    userEmail(user.Attributes),
			})
		}
	}

	return tabular.New(users).WithTitle("Cognito Users (Pool: "+poolID+")").WithColumns(
		tabular.Column{Path: "Username", Header: "Username"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "Enabled", Header: "Enabled"},
		tabular.Column{Path: "Created", Header: "Created"},
		tabular.Column{Path: "Email", Header: "Email"},
	), nil
}

// Keys lists KMS keys, enriched with their aliases and metadata. Each key
// costs one DescribeKey call on top of the listing.
func Keys(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.KMS(ctx)
	if err != nil {
		return nil, err
	}

	aliases, err := keyAliasMap(ctx, client)
	if err != nil {
		return nil, err
	}

	var keys []any
	pager := kms.NewListKeysPaginator(client, &kms.ListKeysInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, key := range page.Keys {
			id := aws.ToString(key.KeyId)
			record := tabular.Record{"KeyId": id, "Aliases": aliasDisplay(aliases[id])}
			if detail, err := client.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: key.KeyId}); err == nil && detail.KeyMetadata != nil {
				meta := detail.KeyMetadata
				record["Description"] = aws.ToString(meta.Description)
				record["State"] = string(meta.KeyState)
				record["KeyUsage"] = string(meta.KeyUsage)
				record["Origin"] = string(meta.Origin)
			}
			keys = append(keys, record)
		}
	}

	title := fmt.Sprintf("KMS Keys (%s)", sess.Config().Region)
	return tabular.New(keys).WithTitle(title).WithColumns(
		tabular.Column{Path: "KeyId", Header: "Key ID"},
		tabular.Column{Path: "Aliases", Header: "Aliases"},
		tabular.Column{Path: "Description", Header: "Description"},
		tabular.Column{Path: "State", Header: "State"},
		tabular.Column{Path: "KeyUsage", Header: "Key Usage"},
		tabular.Column{Path: "Origin", Header: "Origin"},
	), nil
}

// keyAliasMap drains the alias listing into target-key-ID -> alias names.
func keyAliasMap(ctx context.Context, client *kms.Client) (map[string][]string, error) {
	aliases := make(map[string][]string)
	pager := kms.NewListAliasesPaginator(client, &kms.ListAliasesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, alias := range page.Aliases {
			if id := aws.ToString(alias.TargetKeyId); id != "" {
				aliases[id] = append(aliases[id], aws.ToString(alias.AliasName))
			}
		}
	}
	return aliases, nil
}

func aliasDisplay(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// KeyInfo describes one key by ID, ARN, or alias.
func KeyInfo(ctx context.Context, sess *session.Manager, id string) (*tabular.Table, error) {
	client, err := sess.KMS(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(id)})
	if err != nil {
		return nil, err
	}
	return tableOf(out.KeyMetadata, "Key "+id)
}

// KeyAliases lists KMS aliases, optionally filtered by target key ID.
func KeyAliases(ctx context.Context, sess *session.Manager, keyFilter string) (*tabular.Table, error) {
	client, err := sess.KMS(ctx)
	if err != nil {
		return nil, err
	}

	var aliases []any
	pager := kms.NewListAliasesPaginator(client, &kms.ListAliasesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, alias := range page.Aliases {
			if keyFilter != "" && aws.ToString(alias.TargetKeyId) != keyFilter {
				continue
			}
			aliases = append(aliases, tabular.Record{
				"AliasName":   aws.ToString(alias.AliasName),
				"TargetKeyId": aws.ToString(alias.TargetKeyId),
				"AliasArn":    aws.ToString(alias.AliasArn),
			})
		}
	}

	title := fmt.Sprintf("KMS Aliases (%s)", sess.Config().Region)
	return tabular.New(aliases).WithTitle(title).WithColumns(
		tabular.Column{Path: "AliasName", Header: "Alias"},
		tabular.Column{Path: "TargetKeyId", Header: "Target Key ID"},
		tabular.Column{Path: "AliasArn", Header: "ARN"},
	), nil
}

// KeyPolicy fetches a key's default policy document.
func KeyPolicy(ctx context.Context, sess *session.Manager, id string) (string, error) {
	client, err := sess.KMS(ctx)
	if err != nil {
		return "", err
	}
	out, err := client.GetKeyPolicy(ctx, &kms.GetKeyPolicyInput{
		KeyId:      aws.String(id),
		PolicyName: aws.String("default"),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.Policy), nil
}

// SSOInstances lists IAM Identity Center instances.
func SSOInstances(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.SSOAdmin(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.ListInstances(ctx, &ssoadmin.ListInstancesInput{})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Instances, "SSO Instances",
		tabular.Column{Path: "InstanceArn", Header: "Instance ARN"},
		tabular.Column{Path: "IdentityStoreId", Header: "Identity Store ID"},
	)
}

// PermissionSets lists an SSO instance's permission sets with details.
func PermissionSets(ctx context.Context, sess *session.Manager, instanceARN string) (*tabular.Table, error) {
	client, err := sess.SSOAdmin(ctx)
	if err != nil {
		return nil, err
	}

	var sets []any
	pager := ssoadmin.NewListPermissionSetsPaginator(client, &ssoadmin.ListPermissionSetsInput{
		InstanceArn: aws.String(instanceARN),
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, arn := range page.PermissionSets {
			record := tabular.Record{"PermissionSetArn": arn}
			detail, err := client.DescribePermissionSet(ctx, &ssoadmin.DescribePermissionSetInput{
				InstanceArn:      aws.String(instanceARN),
				PermissionSetArn: aws.String(arn),
			})
			if err == nil && detail.PermissionSet != nil {
				ps := detail.PermissionSet
				record["Name"] = aws.ToString(ps.Name)
				record["Description"] = aws.ToString(ps.Description)
				record["SessionDuration"] = aws.ToString(ps.SessionDuration)
			}
			sets = append(sets, record)
		}
	}

	return tabular.New(sets).WithTitle("SSO Permission Sets").WithColumns(
		tabular.Column{Path: "PermissionSetArn", Header: "Permission Set ARN"},
		tabular.Column{Path: "Name", Header: "Name"},
		tabular.Column{Path: "Description", Header: "Description"},
		tabular.Column{Path: "SessionDuration", Header: "Session Duration"},
	), nil
}
