package resources

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awshell/pkg/tabular"
)

func TestVPCFilter(t *testing.T) {
	assert.Nil(t, vpcFilter(""))

	filters := vpcFilter("vpc-0abc")
	require.Len(t, filters, 1)
	assert.Equal(t, "vpc-id", *filters[0].Name)
	assert.Equal(t, []string{"vpc-0abc"}, filters[0].Values)
}

func TestTableOfConvertsSDKStructs(t *testing.T) {
	launched := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	instances := []ec2types.Instance{
		{
			InstanceId:   aws.String("i-0011aabb"),
			InstanceType: ec2types.InstanceTypeT3Micro,
			LaunchTime:   &launched,
			State:        &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning},
			Tags: []ec2types.Tag{
				{Key: aws.String("Name"), Value: aws.String("web-1")},
			},
		},
	}

	table, err := tableOf(instances, "EC2 Instances",
		tabular.Column{Path: "InstanceId", Header: "Instance ID"},
		tabular.Column{Path: "Tags.Name", Header: "Name"},
		tabular.Column{Path: "State.Name", Header: "State"},
	)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "EC2 Instances", table.Title())

	item, err := table.At(0)
	require.NoError(t, err)
	rec := item.(tabular.Record)
	assert.Equal(t, "i-0011aabb", rec["InstanceId"])
	assert.Equal(t, "t3.micro", rec["InstanceType"])
	assert.Equal(t, "web-1", tabular.Resolve(item, "Tags.Name"))
	assert.Equal(t, "running", tabular.Resolve(item, "State.Name"))
}

func TestTableOfChainsWithFilters(t *testing.T) {
	instances := []ec2types.Instance{
		{InstanceId: aws.String("i-run"), State: &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning}},
		{InstanceId: aws.String("i-stop"), State: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped}},
	}

	table, err := tableOf(instances, "EC2 Instances")
	require.NoError(t, err)

	running := table.Where("State.Name", "running")
	assert.Equal(t, 1, running.Len())
	assert.Equal(t, 2, table.Len())
}
