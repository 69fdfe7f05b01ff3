package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"

	"github.com/segmentio/linked/script"
)

func init() {
	const (
		short = "List container kinds"
		long  = `
The kinds command lists the container kinds scripts can drive. When a kind is
given, it lists the commands supported by that kind instead.
`
	)

	addCommand("kinds", short, long, func() flags.Commander { return &cmdKinds{} })
}

type cmdKinds struct {
	Positional struct {
		Kind string `positional-arg-name:"<kind>"`
	} `positional-args:"yes"`
}

func (x *cmdKinds) Execute(args []string) error {
	w := tabwriter.NewWriter(Stdout, 5, 3, 2, ' ', 0)
	defer w.Flush()

	if x.Positional.Kind == "" {
		fmt.Fprintf(w, "Kind\tDescription\n")
		for _, kind := range script.Kinds() {
			fmt.Fprintf(w, "%s\t%s\n", kind, kind.Description())
		}
		return nil
	}

	kind, err := script.ParseKind(x.Positional.Kind)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Command\tDescription\n")
	for _, cmd := range script.Commands(kind) {
		fmt.Fprintf(w, "%s\t%s\n", cmd.Usage(), cmd.Help)
	}
	return nil
}
