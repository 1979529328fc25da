package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shaiso/Vigia/internal/domain"
	"github.com/shaiso/Vigia/internal/notify"
)

// NewNotifyCmd создаёт группу команд для канала уведомлений.
func NewNotifyCmd(outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Failure notification channel",
	}

	cmd.AddCommand(newNotifyTestCmd(outputFn))

	return cmd
}

func newNotifyTestCmd(outputFn func() *Output) *cobra.Command {
	var url string
	var process string
	var mode string
	var message string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send a test failure notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return fmt.Errorf("--url is required")
			}

			notifier := notify.NewWebhook(url, nil, slog.Default())
			err := notifier.Notify(cmd.Context(), process, domain.ParseMode(mode), message)
			if err != nil {
				return err
			}

			outputFn().Print(
				[]string{"PROCESS", "MODE", "SENT"},
				[][]string{{process, mode, "true"}},
				map[string]any{"process": process, "mode": mode, "sent": true},
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Notification webhook URL")
	cmd.Flags().StringVar(&process, "process", "vigia-cli", "Process name to report")
	cmd.Flags().StringVar(&mode, "mode", "develop", "Execution mode (production sends for real)")
	cmd.Flags().StringVar(&message, "message", "test notification", "Error message to send")

	return cmd
}
