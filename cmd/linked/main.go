package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/segmentio/linked/logger"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

type options struct {
	Debug func() `long:"debug" description:"Log debug messages to stderr"`
}

type cmdInfo struct {
	name, shortHelp, longHelp string
	builder                   func() flags.Commander
}

// commands holds information about all commands.
var commands []*cmdInfo

// addCommand registers a command so that every parser returned by Parser
// gets a pristine instance of it.
func addCommand(name, shortHelp, longHelp string, builder func() flags.Commander) *cmdInfo {
	info := &cmdInfo{
		name:      name,
		shortHelp: shortHelp,
		longHelp:  longHelp,
		builder:   builder,
	}
	commands = append(commands, info)
	return info
}

// Parser creates and populates a fresh parser.
func Parser() *flags.Parser {
	opts := &options{
		Debug: func() { os.Setenv(logger.DebugEnv, "1") },
	}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "linked"
	parser.ShortDescription = "Drive linked containers with scripts"
	parser.LongDescription = `
linked runs scripts of commands against singly, doubly and circular linked
lists, stacks and queues, and prints the values they produce.
`

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.shortHelp, strings.TrimSpace(c.longHelp), c.builder()); err != nil {
			panic(fmt.Sprintf("cannot add command %q: %v", c.name, err))
		}
	}
	return parser
}

func init() {
	logger.SimpleSetup()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	parser := Parser()
	_, err := parser.ParseArgs(args)
	if e, ok := err.(*flags.Error); ok {
		if e.Type == flags.ErrHelp || e.Type == flags.ErrCommandRequired {
			parser.WriteHelp(Stdout)
			return nil
		}
		if e.Type == flags.ErrUnknownCommand {
			return fmt.Errorf(`unknown command %q, see "linked --help"`, commandName(args))
		}
	}
	return err
}

// commandName returns the first argument that is not an option.
func commandName(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return ""
}
