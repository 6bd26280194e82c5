package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bound/internal/core/domain"
)

func (c *CLI) newWelcomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "welcome",
		Short: "Print the welcome message",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.app.Welcome())
		},
	}
}

func (c *CLI) newEncodeCmd() *cobra.Command {
	var useBase58 bool

	cmd := &cobra.Command{
		Use:   "encode <message>",
		Short: "Encode a message as base64 or base58",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := domain.EncodingBase64
			if useBase58 {
				enc = domain.EncodingBase58
			}

			encoded, err := c.app.Encode(args[0], enc)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return err
		},
	}

	cmd.Flags().BoolVar(&useBase58, "base58", false, "Use base58 instead of base64")

	return cmd
}
