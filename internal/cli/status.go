package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/Vigia/internal/repo"
)

// NewStatusCmd создаёт группу команд для статусов запусков.
func NewStatusCmd(outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Execution status records",
	}

	cmd.AddCommand(
		newStatusListCmd(outputFn),
		newStatusLastCmd(outputFn),
	)

	return cmd
}

func newStatusListCmd(outputFn func() *Output) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent execution status rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()
			ctx := cmd.Context()

			pool, err := repo.NewPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			rows, err := repo.NewStatusRepo(pool).ListRecent(ctx, limit)
			if err != nil {
				return err
			}

			headers := []string{"EXECUTED_AT", "PROJECT", "MODE", "TOTAL", "SUCCESS", "FAILED"}
			table := make([][]string, len(rows))
			for i, r := range rows {
				table[i] = []string{
					r.ExecutedAt,
					r.Project,
					r.Mode,
					strconv.Itoa(r.Total),
					strconv.Itoa(r.Success),
					strconv.FormatBool(r.Failed),
				}
			}

			out.Print(headers, table, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum rows to return")

	return cmd
}

func newStatusLastCmd(outputFn func() *Output) *cobra.Command {
	var process string

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show the most recent execution status for a process",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()
			ctx := cmd.Context()

			pool, err := repo.NewPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			row, err := repo.NewStatusRepo(pool).LastFor(ctx, process)
			if errors.Is(err, repo.ErrNotFound) {
				return fmt.Errorf("no runs recorded for process %q", process)
			}
			if err != nil {
				return err
			}

			out.Print(
				[]string{"EXECUTED_AT", "PROJECT", "MODE", "TOTAL", "SUCCESS", "FAILED"},
				[][]string{{
					row.ExecutedAt,
					row.Project,
					row.Mode,
					strconv.Itoa(row.Total),
					strconv.Itoa(row.Success),
					strconv.FormatBool(row.Failed),
				}},
				row,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&process, "process", "vigia", "Process name")

	return cmd
}
