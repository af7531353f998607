package multiplier

import (
	"fmt"
	"io"
	"os"
)

// RunFunc defines the arity and return signatures of a function that a Cmd
// will run.
type RunFunc func(cmd *Cmd, args []string) error

// Cmd defines the structure of a command that can be run.
type Cmd struct {
	// The name of the command.
	Name string

	// A brief, single line description of the command.
	Description string

	// Where the command writes its results. Defaults to os.Stdout when
	// created with New.
	Stdout io.Writer

	// Where usage and error messages are written. Defaults to os.Stderr
	// when created with New.
	Stderr io.Writer

	// The function to run.
	Run RunFunc
}

// New is a convenience function for creating and returning a new *Cmd that
// writes to the process's standard output and standard error.
func New(name string, run RunFunc) *Cmd {
	return &Cmd{
		Name:   name,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Run:    run,
	}
}

// Usage prints a single line describing c to c.Stderr.
func (c *Cmd) Usage() {
	fmt.Fprintf(c.stderr(), "%s - %s\n", c.Name, c.Description)
}

// exit terminates the process; tests replace it.
var exit = os.Exit

// Exec runs the command with the arguments provided on the command line, and
// exits the process if the command did not succeed. This is the method that
// should be called from main.
//
// It is essentially a short-hand invocation of
//
//	c.ExecArgs(os.Args[1:])
func (c *Cmd) Exec() {
	if code := c.ExecArgs(os.Args[1:]); code != 0 {
		exit(code)
	}
}

// ExecArgs executes c.Run with the given arguments and returns the exit code
// the process should terminate with.
//
// The arguments are passed through untouched; there is no flag parsing, so
// positional values such as "-5" reach c.Run as-is. If c.Run == nil, a usage
// message is printed and 1 is returned. If c.Run returns an error, it is
// printed to c.Stderr and 1 is returned.
func (c *Cmd) ExecArgs(args []string) int {
	if c.Run == nil {
		c.Usage()
		return 1
	}

	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}

	if err := c.Run(c, args); err != nil {
		fmt.Fprintln(c.stderr(), "error:", err)
		return 1
	}
	return 0
}

func (c *Cmd) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}
