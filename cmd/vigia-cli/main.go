// Vigia CLI — операторский инструмент командной строки.
//
// Использование:
//
//	vigia [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	gate    Проверка гейта рабочих дней
//	status  Строки статусов из аналитического хранилища
//	notify  Канал уведомлений о сбоях
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Vigia/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "vigia",
		Short:         "Vigia CLI — unattended job supervision tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewGateCmd(outputFn),
		cli.NewStatusCmd(outputFn),
		cli.NewNotifyCmd(outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
