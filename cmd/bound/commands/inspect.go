package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/bound/internal/app"
	"go.trai.ch/bound/internal/engine/collection"
	"go.trai.ch/bound/internal/ui/output"
	"go.trai.ch/bound/internal/ui/style"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file...>",
		Short: "Report on the entities in one or more fixture files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Inspect(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}
}

func printReport(w io.Writer, r *app.Report) error {
	out := output.New(w)
	mark := func(ok bool) string {
		if ok {
			return out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
		}
		return out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
	}

	mostRecent := "none"
	if r.MostRecent != nil {
		mostRecent = r.MostRecent.String()
	}

	fields := [][2]string{
		{"source:", r.Source},
		{"entities:", strconv.Itoa(r.Count)},
		{"new entities:", mark(r.HasNew)},
		{"valid:", mark(r.Valid)},
		{"most recent:", mostRecent},
	}
	if r.Largest != "" {
		fields = append(fields, [2]string{"largest file:", r.Largest})
	}

	widths := make([]int, len(fields))
	for i, f := range fields {
		widths[i] = len(f[0])
	}
	width, _ := collection.FindMaxOrdered(widths)

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-*s %s\n", width, f[0], f[1]); err != nil {
			return err
		}
	}
	if len(r.Duplicates) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "duplicates:"); err != nil {
		return err
	}
	return collection.Print(w, r.Duplicates)
}
