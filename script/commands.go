package script

import (
	"slices"
	"strings"
)

// Command describes a script command.
type Command struct {
	// Canonical name of the command.
	Name string
	// Names of the command arguments, in order.
	Args []string
	// Container kinds supporting the command, empty if all kinds do.
	Kinds []Kind
	// Short description of the command.
	Help string

	aliases []string
}

// Usage returns the command name followed by its arguments.
func (c *Command) Usage() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

func (c *Command) supports(kind Kind) bool {
	return len(c.Kinds) == 0 || slices.Contains(c.Kinds, kind)
}

var lists = []Kind{Singly, Doubly, Circular}

// The aliases accept the snake_case names of the demonstration programs.
var commands = []*Command{
	{Name: "use", Args: []string{"<kind>"}, Help: "switch to a new empty container"},
	{Name: "insertFront", Args: []string{"<value>"}, Kinds: lists, Help: "insert a value at the front", aliases: []string{"insert_start"}},
	{Name: "insertBack", Args: []string{"<value>"}, Kinds: lists, Help: "insert a value at the back", aliases: []string{"insert_end"}},
	{Name: "insertAfter", Args: []string{"<target>", "<value>"}, Kinds: lists, Help: "insert a value after the first target"},
	{Name: "removeFront", Kinds: lists, Help: "remove the value at the front", aliases: []string{"delete_start"}},
	{Name: "removeBack", Kinds: lists, Help: "remove the value at the back", aliases: []string{"delete_end"}},
	{Name: "removeAfter", Args: []string{"<target>"}, Kinds: lists, Help: "remove the value after the first target", aliases: []string{"delete_after"}},
	{Name: "push", Args: []string{"<value>"}, Kinds: []Kind{Stack}, Help: "push a value on top of the stack"},
	{Name: "pop", Kinds: []Kind{Stack}, Help: "remove and print the value on top of the stack"},
	{Name: "enqueue", Args: []string{"<value>"}, Kinds: []Kind{Queue}, Help: "append a value at the back of the queue"},
	{Name: "dequeue", Kinds: []Kind{Queue}, Help: "remove and print the value at the front of the queue"},
	{Name: "peek", Kinds: []Kind{Stack, Queue}, Help: "print the next value without removing it", aliases: []string{"front"}},
	{Name: "print", Help: "print the values of the container", aliases: []string{"printList", "printStack"}},
	{Name: "len", Help: "print the number of values in the container"},
	{Name: "clear", Help: "remove all values from the container"},
}

var commandsByName = map[string]*Command{}

func init() {
	for _, cmd := range commands {
		commandsByName[normalize(cmd.Name)] = cmd
		for _, alias := range cmd.aliases {
			commandsByName[normalize(alias)] = cmd
		}
	}
}

// Commands returns the commands supported by containers of the given kind.
func Commands(kind Kind) []Command {
	cmds := make([]Command, 0, len(commands))
	for _, cmd := range commands {
		if cmd.supports(kind) {
			cmds = append(cmds, *cmd)
		}
	}
	return cmds
}

func lookupCommand(name string) (*Command, bool) {
	cmd, ok := commandsByName[normalize(name)]
	return cmd, ok
}

// normalize makes command names case insensitive, and accepts both camelCase
// and snake_case spellings.
func normalize(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
}
