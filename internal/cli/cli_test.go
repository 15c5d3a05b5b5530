package cli

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/blockscope/blockscope/pkg/block"
)

func TestRootCommand_Subcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	for _, name := range []string{"view", "check", "describe"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("RootCommand() missing %q subcommand", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("log level = %v, want debug", got)
	}
}

func TestLoggerFromContext(t *testing.T) {
	c := New(io.Discard, LogInfo)
	ctx := c.WithLogger(context.Background())

	if got := loggerFromContext(ctx); got != c.Logger {
		t.Error("loggerFromContext() did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without attachment did not fall back to the default")
	}
}

func TestFormatCycle(t *testing.T) {
	got := formatCycle(block.Cycle{Path: []string{"a", "b", "c"}})
	want := "a → b → c → a"
	if got != want {
		t.Errorf("formatCycle() = %q, want %q", got, want)
	}

	if got := formatCycle(block.Cycle{}); got != "" {
		t.Errorf("formatCycle(empty) = %q, want empty", got)
	}
}

func TestIssuesError(t *testing.T) {
	if errIssuesFound.Error() != "dependency issues found" {
		t.Errorf("errIssuesFound.Error() = %q", errIssuesFound.Error())
	}
}
