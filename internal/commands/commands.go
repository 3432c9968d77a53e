package commands

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

const prefix = "/"

// Command is a console subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds console commands by name. Add commands with Register; run
// with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a command. name is the first token after the "/" (e.g. "grid").
// fs is that command's FlagSet; run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Parse interprets a console line. If it starts with "/", the rest is
// tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the command in args[0] with args[1:] as flag arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command; try /help")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run()
}
