package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/gate"
	"github.com/shaiso/Vigia/internal/repo"
)

// NewGateCmd создаёт группу команд для гейта рабочих дней.
func NewGateCmd(outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Business day gate",
	}

	cmd.AddCommand(newGateCheckCmd(outputFn))

	return cmd
}

func newGateCheckCmd(outputFn func() *Output) *cobra.Command {
	var date string
	var ordinal int
	var country string
	var subdivision string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a date is the Nth business day of its month",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			day := time.Now()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parse date %q: %w", date, err)
				}
				day = parsed
			}

			selector := domain.BusinessDaySelector{
				Ordinal:     ordinal,
				Country:     country,
				Subdivision: subdivision,
			}

			// Праздники читаются из БД; недоступная БД — "праздников нет",
			// как и в самом гейте.
			calendar := loadCalendar(cmd, country, subdivision)

			allowed := gate.ShouldRun(day, selector, calendar)

			result := map[string]any{
				"date":     day.Format("2006-01-02"),
				"ordinal":  ordinal,
				"country":  country,
				"holidays": calendar.Len(),
				"allowed":  allowed,
			}
			out.Print(
				[]string{"DATE", "ORDINAL", "COUNTRY", "HOLIDAYS", "ALLOWED"},
				[][]string{{
					result["date"].(string),
					fmt.Sprint(ordinal),
					country,
					fmt.Sprint(calendar.Len()),
					fmt.Sprint(allowed),
				}},
				result,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to check (YYYY-MM-DD, default: today)")
	cmd.Flags().IntVar(&ordinal, "ordinal", 1, "Nth business day of the month")
	cmd.Flags().StringVar(&country, "country", "BR", "Country code")
	cmd.Flags().StringVar(&subdivision, "subdiv", "", "Country subdivision code")

	return cmd
}

// loadCalendar загружает календарь праздников из БД, best-effort.
func loadCalendar(cmd *cobra.Command, country, subdivision string) *domain.HolidayCalendar {
	ctx := cmd.Context()

	pool, err := repo.NewPool(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: database unavailable, assuming no holidays: %v\n", err)
		return nil
	}
	defer pool.Close()

	calendar, err := repo.NewHolidayRepo(pool).Calendar(ctx, country, subdivision)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: holidays unavailable, assuming none: %v\n", err)
		return nil
	}
	return calendar
}
