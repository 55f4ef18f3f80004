package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uzpay-labs/fraudscope/internal/api"
	"github.com/uzpay-labs/fraudscope/internal/cli"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send one message to the banking chatbot",
		RunE:  runChat,
	}

	cmd.Flags().StringP("message", "m", "", "message to send")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func runChat(cmd *cobra.Command, _ []string) error {
	message, _ := cmd.Flags().GetString("message")

	client := api.New(viper.GetString("backend.url"), stderrNotifier{})
	reply := client.Chat(cmd.Context(), message)
	if reply == nil {
		return fmt.Errorf("no response from backend at %s", client.BaseURL())
	}
	if reply.Reply == "" {
		return fmt.Errorf("backend replied without a message")
	}

	fmt.Println(cli.RobotIcon + " " + reply.Reply)
	return nil
}
