package resources

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/opensearch"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"awshell/internal/session"
	"awshell/pkg/tabular"
)

// Parameters lists SSM parameters. Values are not fetched here.
func Parameters(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.SSM(ctx)
	if err != nil {
		return nil, err
	}

	var params []any
	pager := ssm.NewDescribeParametersPaginator(client, &ssm.DescribeParametersInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.Parameters)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			params = append(params, r)
		}
	}

	title := fmt.Sprintf("SSM Parameters (%s)", sess.Config().Region)
	return tabular.New(params).WithTitle(title).WithColumns(
		tabular.Column{Path: "Name", Header: "Name"},
		tabular.Column{Path: "Type", Header: "Type"},
		tabular.Column{Path: "Tier", Header: "Tier"},
		tabular.Column{Path: "LastModifiedDate", Header: "Last Modified"},
		tabular.Column{Path: "Version", Header: "Version"},
	), nil
}

// Parameter fetches one SSM parameter with its decrypted value.
func Parameter(ctx context.Context, sess *session.Manager, name string) (*tabular.Table, error) {
	client, err := sess.SSM(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Parameter, "Parameter "+name)
}

// ManagedInstances lists SSM-managed instances.
func ManagedInstances(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.SSM(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeInstanceInformation(ctx, &ssm.DescribeInstanceInformationInput{})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("SSM Managed Instances (%s)", sess.Config().Region)
	return tableOf(out.InstanceInformationList, title,
		tabular.Column{Path: "InstanceId", Header: "Instance ID"},
		tabular.Column{Path: "PingStatus", Header: "Ping Status"},
		tabular.Column{Path: "PlatformType", Header: "Platform"},
		tabular.Column{Path: "PlatformVersion", Header: "Platform Version"},
		tabular.Column{Path: "AgentVersion", Header: "Agent Version"},
	)
}

// ECSClusters lists ECS clusters with their task and service counts.
func ECSClusters(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.ECS(ctx)
	if err != nil {
		return nil, err
	}

	var arns []string
	pager := ecs.NewListClustersPaginator(client, &ecs.ListClustersInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		arns = append(arns, page.ClusterArns...)
	}

	title := fmt.Sprintf("ECS Clusters (%s)", sess.Config().Region)
	if len(arns) == 0 {
		return tabular.New(nil).WithTitle(title), nil
	}

	out, err := client.DescribeClusters(ctx, &ecs.DescribeClustersInput{Clusters: arns})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Clusters, title,
		tabular.Column{Path: "ClusterName", Header: "Cluster Name"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "RunningTasksCount", Header: "Running Tasks"},
		tabular.Column{Path: "PendingTasksCount", Header: "Pending Tasks"},
		tabular.Column{Path: "ActiveServicesCount", Header: "Services"},
		tabular.Column{Path: "RegisteredContainerInstancesCount", Header: "Instances"},
	)
}

// ECSCluster describes one cluster by name or ARN.
func ECSCluster(ctx context.Context, sess *session.Manager, name string) (*tabular.Table, error) {
	client, err := sess.ECS(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeClusters(ctx, &ecs.DescribeClustersInput{Clusters: []string{name}})
	if err != nil {
		return nil, err
	}
	return tableOf(out.Clusters, "Cluster "+name)
}

// ECSServices lists the services of one cluster.
func ECSServices(ctx context.Context, sess *session.Manager, cluster string) (*tabular.Table, error) {
	client, err := sess.ECS(ctx)
	if err != nil {
		return nil, err
	}

	var arns []string
	pager := ecs.NewListServicesPaginator(client, &ecs.ListServicesInput{Cluster: aws.String(cluster)})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		arns = append(arns, page.ServiceArns...)
	}

	title := fmt.Sprintf("ECS Services (%s)", cluster)
	if len(arns) == 0 {
		return tabular.New(nil).WithTitle(title), nil
	}

	out, err := client.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(cluster),
		Services: arns,
	})
	if err != nil {
		return nil, err
	}

	services := make([]any, 0, len(out.Services))
	for _, svc := range out.Services {
		services = append(services, tabular.Record{
			"ServiceName":    aws.ToString(svc.ServiceName),
			"Status":         aws.ToString(svc.Status),
			"Desired":        svc.DesiredCount,
			"Running":        svc.RunningCount,
			"LaunchType":     string(svc.LaunchType),
			"TaskDefinition": lastSegment(aws.ToString(svc.TaskDefinition)),
		})
	}
	return tabular.New(services).WithTitle(title).WithColumns(
		tabular.Column{Path: "ServiceName", Header: "Service Name"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "Desired", Header: "Desired"},
		tabular.Column{Path: "Running", Header: "Running"},
		tabular.Column{Path: "LaunchType", Header: "Launch Type"},
		tabular.Column{Path: "TaskDefinition", Header: "Task Definition"},
	), nil
}

// ECSTasks lists the tasks of one cluster.
func ECSTasks(ctx context.Context, sess *session.Manager, cluster string) (*tabular.Table, error) {
	client, err := sess.ECS(ctx)
	if err != nil {
		return nil, err
	}

	var arns []string
	pager := ecs.NewListTasksPaginator(client, &ecs.ListTasksInput{Cluster: aws.String(cluster)})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		arns = append(arns, page.TaskArns...)
	}

	title := fmt.Sprintf("ECS Tasks (%s)", cluster)
	if len(arns) == 0 {
		return tabular.New(nil).WithTitle(title), nil
	}

	out, err := client.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(cluster),
		Tasks:   arns,
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]any, 0, len(out.Tasks))
	for _, task := range out.Tasks {
		tasks = append(tasks, tabular.Record{
			"TaskId":         lastSegment(aws.ToString(task.TaskArn)),
			"Status":         aws.ToString(task.LastStatus),
			"TaskDefinition": lastSegment(aws.ToString(task.TaskDefinitionArn)),
			"LaunchType":     string(task.LaunchType),
			"Cpu":            aws.ToString(task.Cpu),
			"Memory":         aws.ToString(task.Memory),
		})
	}
	return tabular.New(tasks).WithTitle(title).WithColumns(
		tabular.Column{Path: "TaskId", Header: "Task ID"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "TaskDefinition", Header: "Task Definition"},
		tabular.Column{Path: "LaunchType", Header: "Launch Type"},
		tabular.Column{Path: "Cpu", Header: "CPU"},
		tabular.Column{Path: "Memory", Header: "Memory"},
	), nil
}

// CacheClusters lists ElastiCache clusters.
func CacheClusters(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.ElastiCache(ctx)
	if err != nil {
		return nil, err
	}

	var clusters []any
	pager := elasticache.NewDescribeCacheClustersPaginator(client, &elasticache.DescribeCacheClustersInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.CacheClusters)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			clusters = append(clusters, r)
		}
	}

	title := fmt.Sprintf("ElastiCache Clusters (%s)", sess.Config().Region)
	return tabular.New(clusters).WithTitle(title).WithColumns(
		tabular.Column{Path: "CacheClusterId", Header: "Cluster ID"},
		tabular.Column{Path: "Engine", Header: "Engine"},
		tabular.Column{Path: "EngineVersion", Header: "Engine Version"},
		tabular.Column{Path: "CacheNodeType", Header: "Node Type"},
		tabular.Column{Path: "CacheClusterStatus", Header: "Status"},
		tabular.Column{Path: "NumCacheNodes", Header: "Nodes"},
	), nil
}

// CacheCluster describes one cache cluster with node details.
func CacheCluster(ctx context.Context, sess *session.Manager, id string) (*tabular.Table, error) {
	client, err := sess.ElastiCache(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeCacheClusters(ctx, &elasticache.DescribeCacheClustersInput{
		CacheClusterId:    aws.String(id),
		ShowCacheNodeInfo: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return tableOf(out.CacheClusters, "Cache Cluster "+id)
}

// ReplicationGroups lists ElastiCache replication groups.
func ReplicationGroups(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.ElastiCache(ctx)
	if err != nil {
		return nil, err
	}

	var groups []any
	pager := elasticache.NewDescribeReplicationGroupsPaginator(client, &elasticache.DescribeReplicationGroupsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		records, err := tabular.FromAny(page.ReplicationGroups)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			groups = append(groups, r)
		}
	}

	title := fmt.Sprintf("ElastiCache Replication Groups (%s)", sess.Config().Region)
	return tabular.New(groups).WithTitle(title).WithColumns(
		tabular.Column{Path: "ReplicationGroupId", Header: "Replication Group ID"},
		tabular.Column{Path: "Description", Header: "Description"},
		tabular.Column{Path: "Status", Header: "Status"},
		tabular.Column{Path: "ClusterEnabled", Header: "Cluster Enabled"},
		tabular.Column{Path: "MemberClusters", Header: "Members"},
	), nil
}

// Domains lists OpenSearch domain names.
func Domains(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
	client, err := sess.OpenSearch(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.ListDomainNames(ctx, &opensearch.ListDomainNamesInput{})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("OpenSearch Domains (%s)", sess.Config().Region)
	return tableOf(out.DomainNames, title,
		tabular.Column{Path: "DomainName", Header: "Domain Name"},
		tabular.Column{Path: "EngineType", Header: "Engine Type"},
	)
}

// Domain describes one OpenSearch domain.
func Domain(ctx context.Context, sess *session.Manager, name string) (*tabular.Table, error) {
	client, err := sess.OpenSearch(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.DescribeDomain(ctx, &opensearch.DescribeDomainInput{DomainName: aws.String(name)})
	if err != nil {
		return nil, err
	}
	return tableOf(out.DomainStatus, "Domain "+name)
}
