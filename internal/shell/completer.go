package shell

import (
	"github.com/chzyer/readline"

	"awshell/internal/commands"
	"awshell/internal/commands/searchcmd"
	"awshell/internal/config"
	"awshell/internal/resources"
)

// regions is the completion vocabulary for set-region. Not exhaustive,
// and nothing validates against it; an unlisted region still works.
var regions = []string{
	"us-east-1", "us-east-2", "us-west-1", "us-west-2",
	"af-south-1",
	"ap-east-1", "ap-south-1", "ap-south-2",
	"ap-southeast-1", "ap-southeast-2", "ap-southeast-3",
	"ap-northeast-1", "ap-northeast-2", "ap-northeast-3",
	"ca-central-1",
	"eu-central-1", "eu-central-2",
	"eu-west-1", "eu-west-2", "eu-west-3",
	"eu-south-1", "eu-south-2",
	"eu-north-1",
	"me-south-1", "me-central-1",
	"sa-east-1",
}

func pcItems(names []string) []readline.PrefixCompleterInterface {
	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		items = append(items, readline.PcItem(name))
	}
	return items
}

// completer builds tab completion from the command registry: every verb,
// each verb's registered subcommands, and argument vocabularies for the
// verbs whose arguments are enumerable.
func completer(registry *commands.Registry) readline.AutoCompleter {
	var items []readline.PrefixCompleterInterface
	for _, entry := range registry.Entries() {
		var children []readline.PrefixCompleterInterface
		switch entry.Name {
		case "set-region":
			children = pcItems(regions)
		case "set-output":
			children = pcItems(config.OutputFormats())
		case "search":
			children = pcItems(searchcmd.Resources())
		case "raw":
			for _, svc := range resources.RawServices() {
				children = append(children, readline.PcItem(svc, pcItems(resources.RawOperations(svc))...))
			}
		default:
			children = pcItems(registry.SubNames(entry.Name))
		}
		items = append(items, readline.PcItem(entry.Name, children...))
	}
	return readline.NewPrefixCompleter(items...)
}
