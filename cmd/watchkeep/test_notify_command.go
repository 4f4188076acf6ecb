package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test desktop notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			notifier := ctx.ensureNotifier()
			if notifier == nil {
				return errors.New("notification service unavailable")
			}
			return notifier.TestNotification(cmd.Context())
		},
	}
}
