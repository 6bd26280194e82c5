package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "swap <i> <j> <values...>",
		Short:              "Exchange two elements of a list and print the result",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, help, err := c.rawArgs(args)
			if err != nil {
				return err
			}
			c.applyLogFormat()
			if help || len(values) < 2 {
				return cmd.Help()
			}

			i, err := parseIndex(values[0])
			if err != nil {
				return err
			}
			j, err := parseIndex(values[1])
			if err != nil {
				return err
			}

			swapped, err := c.app.Swap(values[2:], i, j)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(swapped, " "))
			return err
		},
	}
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidNumber, "parse index"), "value", s)
	}
	return n, nil
}
