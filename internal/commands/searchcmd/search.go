// Package searchcmd implements cross-field keyword search over a
// resource listing: fetch, then match the keyword against every nested
// path and value.
package searchcmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
	"awshell/pkg/tabular"
)

func init() {
	commands.Register("search", search, "Search a resource listing: search <resource> <keyword>")
}

type fetcher func(context.Context, *session.Manager) (*tabular.Table, error)

var fetchers = map[string]fetcher{
	"instances": resources.Instances,
	"vpcs":      resources.VPCs,
	"subnets": func(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
		return resources.Subnets(ctx, sess, "")
	},
	"security-groups": func(ctx context.Context, sess *session.Manager) (*tabular.Table, error) {
		return resources.SecurityGroups(ctx, sess, "")
	},
	"buckets":        resources.Buckets,
	"functions":      resources.Functions,
	"users":          resources.Users,
	"roles":          resources.Roles,
	"policies":       resources.Policies,
	"stacks":         resources.Stacks,
	"queues":         resources.Queues,
	"db-instances":   resources.DBInstances,
	"db-clusters":    resources.DBClusters,
	"secrets":        resources.Secrets,
	"tables":         resources.Tables,
	"alarms":         resources.Alarms,
	"log-groups":     resources.LogGroups,
	"hosted-zones":   resources.HostedZones,
	"distributions":  resources.Distributions,
	"accelerators":   resources.Accelerators,
	"parameters":     resources.Parameters,
	"ecs-clusters":   resources.ECSClusters,
	"cache-clusters": resources.CacheClusters,
	"domains":        resources.Domains,
	"identities":     resources.EmailIdentities,
	"user-pools":     resources.UserPools,
	"keys":           resources.Keys,
}

func search(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: search <resource> <keyword>  (resources: %s)", resourceNames())
	}

	fetch, ok := fetchers[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("unknown resource %q (resources: %s)", args[0], resourceNames())
	}

	t, err := fetch(context.Background(), sess)
	if err != nil {
		return err
	}
	commands.Emit(t.Find(strings.Join(args[1:], " ")), cfg)
	return nil
}

// Resources returns the searchable resource names, sorted.
func Resources() []string {
	names := make([]string, 0, len(fetchers))
	for name := range fetchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resourceNames() string {
	return strings.Join(Resources(), ", ")
}
