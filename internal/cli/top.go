package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTopCmd creates the top command.
func (a *App) newTopCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "top [path]",
		Short: "Print the most frequent patterns",
		Long: `Print the n most frequent patterns of the corpus, one per line as
count<TAB>pattern. Ties are broken by shorter, then smaller pattern.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("--num must be positive, got %d", n)
			}
			res, err := a.count(cmd, args)
			if err != nil {
				return err
			}
			for _, pc := range res.Table.Top(n) {
				if _, err := fmt.Fprintf(a.stdout, "%d\t%s\n", pc.Count, pc.Pattern); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "num", "n", 10, "number of patterns to print")
	return cmd
}
