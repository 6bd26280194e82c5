// Package commands implements the CLI commands for bound.
package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.trai.ch/bound/internal/app"
	"go.trai.ch/bound/internal/build"
	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for bound.
type CLI struct {
	app     Application
	json    JSONSwitcher
	logJSON bool
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Inspect(ctx context.Context, paths ...string) (*app.Report, error)
	Max(values []string) (decimal.Decimal, bool, error)
	Swap(values []string, i, j int) ([]string, error)
	Welcome() string
	Encode(msg string, enc domain.Encoding) (string, error)
}

// JSONSwitcher is implemented by loggers that can switch to JSON output.
type JSONSwitcher interface {
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONSwitch lets the --log-json flag switch s to JSON output.
func WithJSONSwitch(s JSONSwitcher) Option {
	return func(c *CLI) {
		c.json = s
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bound",
		Short:         "Generic collection helpers over entity fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.applyLogFormat()
	}

	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newMaxCmd())
	rootCmd.AddCommand(c.newSwapCmd())
	rootCmd.AddCommand(c.newWelcomeCmd())
	rootCmd.AddCommand(c.newEncodeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyLogFormat() {
	if c.json != nil {
		c.json.SetJSON(c.logJSON)
	}
}

// rawArgs splits the arguments of a command that disables flag parsing so
// negative numbers reach it as values. Leading --log-json and -h/--help are
// still honored; "--" ends the leading flags explicitly.
func (c *CLI) rawArgs(args []string) (values []string, help bool, err error) {
	for i, arg := range args {
		switch {
		case arg == "--":
			return args[i+1:], false, nil
		case arg == "-h" || arg == "--help":
			return nil, true, nil
		case arg == "--log-json":
			c.logJSON = true
		case strings.HasPrefix(arg, "--log-json="):
			enabled, parseErr := strconv.ParseBool(strings.TrimPrefix(arg, "--log-json="))
			if parseErr != nil {
				return nil, false, zerr.With(zerr.Wrap(parseErr, "invalid --log-json value"), "value", arg)
			}
			c.logJSON = enabled
		default:
			return args[i:], false, nil
		}
	}
	return nil, false, nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
