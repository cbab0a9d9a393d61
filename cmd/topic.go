package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/timevalue/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `tvc topic [<topic>...]

  Shows documentation for the given topics, or lists all topics when called
  without arguments. Use 'tvc topic "*"' to print the whole manual.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		return c.list()
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

func (c *topicCmd) list() subcommands.ExitStatus {
	all, err := docs.AllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("# Topics\n\n")
	for _, topic := range all {
		title, err := docs.Title(topic)
		if err != nil {
			title = topic
		}
		fmt.Fprintf(&b, "* `%s`: %s\n", topic, title)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
