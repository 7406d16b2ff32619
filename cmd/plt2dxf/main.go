package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var (
		verbosity int
		logPath   string
	)

	rootCmd := &cobra.Command{
		Use:          "plt2dxf",
		Short:        "Convert plotter command files to DXF drawings",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logPath != "" {
				commonlog.Configure(verbosity, &logPath)
			} else {
				commonlog.Configure(verbosity, nil)
			}
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newDimsCmd())
	rootCmd.AddCommand(newPreviewCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
