package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"

	"github.com/segmentio/linked/script"
)

func init() {
	const (
		short = "Run scripts"
		long  = `
The run command executes each script file in order. Files ending in .yaml or
.yml are read as YAML scripts, any other file as a text script with one
command per line. A file named - is read from the standard input.
`
	)

	addCommand("run", short, long, func() flags.Commander { return &cmdRun{} })
}

type cmdRun struct {
	Container  string `short:"c" long:"container" description:"Container scripts start with" default:"singly" choice:"singly" choice:"doubly" choice:"circular" choice:"stack" choice:"queue"`
	Separator  string `short:"s" long:"separator" description:"String printed between values (default: a space)"`
	Strict     bool   `long:"strict" description:"Fail when a target is missing or a container is empty"`
	Stats      bool   `long:"stats" description:"Print counters after running the scripts"`
	Positional struct {
		Files []string `positional-arg-name:"<file>" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdRun) Execute(args []string) error {
	kind, err := script.ParseKind(x.Container)
	if err != nil {
		return err
	}

	options := []script.Option{
		script.Output(Stdout),
		script.Container(kind),
		script.Strict(x.Strict),
	}
	if x.Separator != "" {
		options = append(options, script.Separator(x.Separator))
	}
	runner := script.New(options...)

	for _, name := range x.Positional.Files {
		s, err := loadScript(name)
		if err != nil {
			return err
		}
		if err := runner.Run(s); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if x.Stats {
		return writeStats(Stdout, runner.Stats())
	}
	return nil
}

func loadScript(name string) (*script.Script, error) {
	if name == "-" {
		return script.ParseText("<stdin>", Stdin)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return script.ParseYAML(name, data)
	default:
		return script.ParseText(name, bytes.NewReader(data))
	}
}

func writeStats(w io.Writer, stats script.Stats) error {
	tw := tabwriter.NewWriter(w, 5, 3, 2, ' ', 0)
	fmt.Fprintf(tw, "Steps\tInserts\tRemoves\tMisses\tEmpties\tPrints\n")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\n", stats.Steps, stats.Inserts, stats.Removes, stats.Misses, stats.Empties, stats.Prints)
	return tw.Flush()
}
