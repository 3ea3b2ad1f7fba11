package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/edp1096/sparsecalc"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

type command struct {
	usage   string
	minArgs int
	maxArgs int
	run     func(a *App, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"create":      {"create A rows cols", 3, 3, (*App).create},
		"set":         {"set A row col value", 4, 4, (*App).set},
		"delete":      {"delete A row col", 3, 3, (*App).remove},
		"search":      {"search A row col", 3, 3, (*App).search},
		"clear":       {"clear A", 1, 1, (*App).clear},
		"resize":      {"resize A rows cols", 3, 3, (*App).resize},
		"print":       {"print A [full|sparse]", 1, 2, (*App).print},
		"summary":     {"summary A", 1, 1, (*App).summary},
		"dims":        {"dims A", 1, 1, (*App).dims},
		"list":        {"list", 0, 0, (*App).list},
		"copy":        {"copy A C", 2, 2, (*App).copy},
		"add":         {"add A B [C]", 2, 3, binary(sparsecalc.Add, "addition")},
		"subtract":    {"subtract A B [C]", 2, 3, binary(sparsecalc.Subtract, "subtraction")},
		"multiply":    {"multiply A B [C]", 2, 3, binary(sparsecalc.Multiply, "multiplication")},
		"transpose":   {"transpose A", 1, 1, (*App).transpose},
		"determinant": {"determinant A", 1, 1, (*App).determinant},
		"inverse":     {"inverse A [C]", 1, 2, (*App).inverse},
		"scalar":      {"scalar A value", 2, 2, (*App).scalar},
		"help":        {"help", 0, 0, (*App).help},
	}
}

// App owns the registry and executes one command line at a time.
type App struct {
	registry *Registry
	config   sparsecalc.Configuration
	out      io.Writer
}

func NewApp(out io.Writer, config sparsecalc.Configuration) *App {
	return &App{
		registry: NewRegistry(),
		config:   config,
		out:      out,
	}
}

// Execute runs one line. quit is true for "exit" and "quit".
func (a *App) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}

	op := strings.ToLower(fields[0])
	if op == "exit" || op == "quit" {
		return true, nil
	}

	cmd, ok := commands[op]
	if !ok {
		return false, fmt.Errorf("%w: %s", errUnknownCommand, fields[0])
	}

	args := fields[1:]
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return false, fmt.Errorf("%w: %s", errUsage, cmd.usage)
	}

	log.Debugf("executing %q", line)

	return false, cmd.run(a, args)
}

func (a *App) lookup(s string) (byte, *sparsecalc.Matrix, error) {
	name, err := parseName(s)
	if err != nil {
		return 0, nil, err
	}
	m, err := a.registry.Get(name)
	if err != nil {
		return 0, nil, err
	}
	return name, m, nil
}

func parseInts(args ...string) ([]int, error) {
	values := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		values[i] = v
	}
	return values, nil
}

func (a *App) create(args []string) error {
	name, err := parseName(args[0])
	if err != nil {
		return err
	}
	size, err := parseInts(args[1:]...)
	if err != nil {
		return err
	}

	m, err := sparsecalc.Create(size[0], size[1], &a.config)
	if err != nil {
		return err
	}

	if a.registry.Put(name, m) {
		fmt.Fprintf(a.out, "Matrix %c already exists. Overwriting...\n", name)
	}
	fmt.Fprintf(a.out, "Matrix %c created [%d x %d].\n", name, size[0], size[1])
	return nil
}

func (a *App) set(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	pos, err := parseInts(args[1:3]...)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q", args[3])
	}

	if err := m.Set(pos[0], pos[1], value); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Inserted value %.*f at (%d, %d) in matrix %c.\n", a.config.Precision, value, pos[0], pos[1], name)
	return nil
}

func (a *App) remove(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	pos, err := parseInts(args[1:]...)
	if err != nil {
		return err
	}

	value, err := m.Delete(pos[0], pos[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted value %.*f from (%d, %d) in matrix %c.\n", a.config.Precision, value, pos[0], pos[1], name)
	return nil
}

func (a *App) search(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	pos, err := parseInts(args[1:]...)
	if err != nil {
		return err
	}

	if m.Search(pos[0], pos[1]) {
		fmt.Fprintf(a.out, "(%d, %d) is stored in matrix %c.\n", pos[0], pos[1], name)
	} else {
		fmt.Fprintf(a.out, "(%d, %d) is not stored in matrix %c.\n", pos[0], pos[1], name)
	}
	return nil
}

func (a *App) clear(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	m.Clear()
	fmt.Fprintf(a.out, "Matrix %c cleared.\n", name)
	return nil
}

func (a *App) resize(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	size, err := parseInts(args[1:]...)
	if err != nil {
		return err
	}

	if err := m.Resize(size[0], size[1]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Matrix %c resized to [%d x %d].\n", name, size[0], size[1])
	return nil
}

func (a *App) print(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}

	mode := sparsecalc.FullView
	if len(args) == 2 {
		switch strings.ToLower(args[1]) {
		case "full":
		case "sparse":
			mode = sparsecalc.SparseView
		default:
			return fmt.Errorf("%w: %s", errUsage, commands["print"].usage)
		}
	}

	m.Print(a.out, string(name), mode)
	return nil
}

func (a *App) summary(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Matrix %c\n", name)
	m.PrintSummary(a.out)
	return nil
}

func (a *App) dims(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Matrix %c: %d rows x %d columns\n", name, m.Rows(), m.Cols())
	return nil
}

func (a *App) list(_ []string) error {
	fmt.Fprintf(a.out, "=== Matrix Registry ===\n")
	for name := firstName; name <= lastName; name++ {
		if m, err := a.registry.Get(name); err == nil {
			fmt.Fprintf(a.out, "%c : [%d x %d]\n", name, m.Rows(), m.Cols())
		} else {
			fmt.Fprintf(a.out, "%c : (empty)\n", name)
		}
	}
	return nil
}

func (a *App) copy(args []string) error {
	_, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	return a.store(args[1], m.Clone())
}

// store saves result under dest, or destroys it when dest is empty.
func (a *App) store(dest string, result *sparsecalc.Matrix) error {
	if dest == "" {
		result.Destroy()
		return nil
	}

	name, err := parseName(dest)
	if err != nil {
		result.Destroy()
		return err
	}
	if a.registry.Put(name, result) {
		fmt.Fprintf(a.out, "Matrix %c already exists. Overwriting...\n", name)
	}
	fmt.Fprintf(a.out, "Matrix copied to '%c'\n", name)
	return nil
}

func binary(op func(x, y *sparsecalc.Matrix) (*sparsecalc.Matrix, error), label string) func(a *App, args []string) error {
	return func(a *App, args []string) error {
		_, x, err := a.lookup(args[0])
		if err != nil {
			return err
		}
		_, y, err := a.lookup(args[1])
		if err != nil {
			return err
		}

		result, err := op(x, y)
		if err != nil {
			return fmt.Errorf("%s failed: %w", label, err)
		}
		result.Print(a.out, "R", sparsecalc.FullView)

		dest := ""
		if len(args) == 3 {
			dest = args[2]
		}
		return a.store(dest, result)
	}
}

func (a *App) transpose(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	if err := m.Transpose(); err != nil {
		return fmt.Errorf("transpose failed: %w", err)
	}
	m.Print(a.out, string(name), sparsecalc.FullView)
	return nil
}

func (a *App) determinant(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	det, err := m.Determinant()
	if err != nil {
		return fmt.Errorf("failed to compute determinant: %w", err)
	}
	fmt.Fprintf(a.out, "Determinant of %c = %.*f\n", name, a.config.Precision, det)
	return nil
}

func (a *App) inverse(args []string) error {
	_, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	result, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("matrix not invertible: %w", err)
	}
	result.Print(a.out, "R", sparsecalc.FullView)

	dest := ""
	if len(args) == 2 {
		dest = args[1]
	}
	return a.store(dest, result)
}

func (a *App) scalar(args []string) error {
	name, m, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid scalar %q", args[1])
	}
	m.Scale(value)
	m.Print(a.out, string(name), sparsecalc.FullView)
	return nil
}

func (a *App) help(_ []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintf(a.out, "Commands:\n")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", commands[name].usage)
	}
	fmt.Fprintf(a.out, "  exit\n")
	return nil
}
