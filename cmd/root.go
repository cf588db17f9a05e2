package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	if err != nil {
		rootCmd := newBaseCmd()
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	return newRootCmdWith(app)
}

func newRootCmdWith(app *app) *cobra.Command {
	rootCmd := newBaseCmd()

	rootCmd.AddCommand(
		newVersionCmd(),
		newDisconnectsCmd(app),
		newEventsCmd(app),
		newActiveCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}

func newBaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ppmon",
		Short:         "PPPoE session monitor (ppmon): track client disconnections on a MikroTik device",
		Long:          "ppmon polls a MikroTik RouterOS device's system log, classifies PPPoE connect/disconnect/reconnect events, keeps a durable record of disconnections and reports which recently-disconnected clients are active again.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
}
