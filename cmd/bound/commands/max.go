package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newMaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "max <values...>",
		Short:              "Print the greatest of the given numbers",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, help, err := c.rawArgs(args)
			if err != nil {
				return err
			}
			c.applyLogFormat()
			if help || len(values) == 0 {
				return cmd.Help()
			}

			found, ok, err := c.app.Max(values)
			if err != nil {
				return err
			}
			if !ok {
				return zerr.Wrap(domain.ErrEmptyInput, "max")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), found.String())
			return err
		},
	}
}
