// Command multiplier prints the product of its first two integer arguments.
package main

import (
	"io"
	"os"

	"github.com/nesv/multiplier"
	"github.com/nesv/multiplier/internal/config"
	"github.com/nesv/multiplier/internal/obs"
)

func main() {
	newCommand(os.Stdout, os.Stderr).Exec()
}

// run executes the command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return newCommand(stdout, stderr).ExecArgs(args)
}

// newCommand wires configuration, logging and the multiplier together.
func newCommand(stdout, stderr io.Writer) *multiplier.Cmd {
	cfg, err := config.Load()
	logger := obs.NewLogger(stderr, cfg)
	if err != nil {
		logger.Warn("config_fallback", "error", err)
	}

	cmd := multiplier.New("multiplier", multiplier.Multiply(logger))
	cmd.Description = "Print the product of two integers"
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd
}
