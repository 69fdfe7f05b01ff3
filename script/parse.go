package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxLineSize is the maximum length in bytes of a line in a text script.
const MaxLineSize = 1 << 20

// ParseText parses a script written as plain text.
//
// Each line holds one command followed by its arguments, separated by spaces.
// Blank lines are ignored, and a '#' starts a comment running to the end of
// the line. Lines longer than MaxLineSize fail with an error wrapping
// bufio.ErrTooLong.
func ParseText(name string, r io.Reader) (*Script, error) {
	s := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		step, err := parseStep(line, fields)
		if err != nil {
			return nil, err
		}
		s.Steps = append(s.Steps, step)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read script %s at line %d: %w", name, line+1, err)
	}
	return s, nil
}

// ParseYAML parses a script written as a YAML document:
//
//	container: circular
//	options:
//	  separator: ", "
//	  strict: true
//	steps:
//	  - insertFront 1
//	  - {op: insertAfter, args: [1, 2]}
//	  - print
//
// Steps are either strings holding a command line, or mappings with an op and
// an optional list of args.
func ParseYAML(name string, data []byte) (*Script, error) {
	var doc struct {
		Container string `yaml:"container"`
		Options   struct {
			Separator *string `yaml:"separator"`
			Strict    *bool   `yaml:"strict"`
		} `yaml:"options"`
		Steps []Step `yaml:"steps"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse script %s: %w", name, err)
	}

	s := &Script{Name: name, Steps: doc.Steps}

	if doc.Container != "" {
		kind, err := ParseKind(doc.Container)
		if err != nil {
			return nil, fmt.Errorf("cannot parse script %s: %w", name, err)
		}
		s.Container = kind
	}
	if doc.Options.Separator != nil {
		s.Options = append(s.Options, Separator(*doc.Options.Separator))
	}
	if doc.Options.Strict != nil {
		s.Options = append(s.Options, Strict(*doc.Options.Strict))
	}
	return s, nil
}

// UnmarshalYAML satisfies the yaml.Unmarshaler interface.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	var fields []string

	switch value.Kind {
	case yaml.ScalarNode:
		fields = strings.Fields(value.Value)

	case yaml.MappingNode:
		var op string
		var args []string

		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]

			switch key.Value {
			case "op":
				if val.Kind != yaml.ScalarNode {
					return &Error{Line: val.Line, Err: fmt.Errorf("%w: op must be a string", ErrArgs)}
				}
				op = val.Value
			case "args":
				switch val.Kind {
				case yaml.ScalarNode:
					args = append(args, val.Value)
				case yaml.SequenceNode:
					for _, arg := range val.Content {
						if arg.Kind != yaml.ScalarNode {
							return &Error{Line: arg.Line, Command: op, Err: fmt.Errorf("%w: args must be scalars", ErrArgs)}
						}
						args = append(args, arg.Value)
					}
				default:
					return &Error{Line: val.Line, Command: op, Err: fmt.Errorf("%w: args must be a list", ErrArgs)}
				}
			default:
				return &Error{Line: key.Line, Err: fmt.Errorf("unknown step field %q", key.Value)}
			}
		}

		if op != "" {
			fields = append([]string{op}, args...)
		}

	default:
		return &Error{Line: value.Line, Err: fmt.Errorf("steps must be strings or mappings")}
	}

	if len(fields) == 0 {
		return &Error{Line: value.Line, Err: fmt.Errorf("%w: empty step", ErrUnknownCommand)}
	}

	step, err := parseStep(value.Line, fields)
	if err != nil {
		return err
	}
	*s = step
	return nil
}

func parseStep(line int, fields []string) (Step, error) {
	cmd, ok := lookupCommand(fields[0])
	if !ok {
		return Step{}, &Error{Line: line, Command: fields[0], Err: ErrUnknownCommand}
	}

	args := fields[1:]
	if len(args) != len(cmd.Args) {
		return Step{}, &Error{
			Line:    line,
			Command: cmd.Name,
			Err:     fmt.Errorf("%w: expected %d but found %d (usage: %s)", ErrArgs, len(cmd.Args), len(args), cmd.Usage()),
		}
	}

	step := Step{Line: line, Command: cmd.Name}

	if cmd.Name == "use" {
		kind, err := ParseKind(args[0])
		if err != nil {
			return Step{}, &Error{Line: line, Command: cmd.Name, Err: err}
		}
		step.Kind = kind
		return step, nil
	}

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return Step{}, &Error{Line: line, Command: cmd.Name, Err: fmt.Errorf("%w: %q is not an integer", ErrArgs, arg)}
		}
		step.Args = append(step.Args, v)
	}
	return step, nil
}
