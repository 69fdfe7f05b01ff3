package main

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/segmentio/linked/script"
)

//go:embed demos/*.txt
var demos embed.FS

func init() {
	const (
		short = "Run the demonstration scripts"
		long  = `
The demo command runs the built-in demonstration script of each container kind
given as argument, or of all kinds when none is given.
`
	)

	addCommand("demo", short, long, func() flags.Commander { return &cmdDemo{} })
}

type cmdDemo struct {
	Positional struct {
		Kinds []string `positional-arg-name:"<kind>"`
	} `positional-args:"yes"`
}

func (x *cmdDemo) Execute(args []string) error {
	kinds := script.Kinds()

	if len(x.Positional.Kinds) != 0 {
		kinds = kinds[:0]
		for _, name := range x.Positional.Kinds {
			kind, err := script.ParseKind(name)
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
	}

	for i, kind := range kinds {
		if i != 0 {
			fmt.Fprintln(Stdout)
		}
		fmt.Fprintf(Stdout, "== %s\n", kind)

		name := "demos/" + string(kind) + ".txt"
		data, err := demos.ReadFile(name)
		if err != nil {
			return err
		}
		s, err := script.ParseText(name, bytes.NewReader(data))
		if err != nil {
			return err
		}
		if err := script.New(script.Output(Stdout), script.Container(kind)).Run(s); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
