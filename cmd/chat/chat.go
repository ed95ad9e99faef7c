// Package chat handles the interactive and one-shot chat commands
package chat

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"finchat/cmd/root"
	chatcore "finchat/internal/chat"
)

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Register transactions, goals and corrections from chat messages",
	Long: `Send a single message as an argument, or start an interactive session
when no message is given. Messages are plain Portuguese, e.g.
'Gastei R$50 no mercado' or 'Minha meta: economizar R$400 este mês'.`,
	RunE: chatFunc,
}

func chatFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return send(cmd, responder, strings.Join(args, " "))
	}
	return runSession(cmd, responder)
}

func send(cmd *cobra.Command, responder *chatcore.Responder, message string) error {
	replies, err := responder.Handle(message)
	if err != nil {
		return err
	}
	for _, reply := range replies {
		fmt.Fprintln(cmd.OutOrStdout(), reply)
	}
	return nil
}

func runSession(cmd *cobra.Command, responder *chatcore.Responder) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, chatcore.Welcome)
	fmt.Fprintln(out, `Digite "sair" para encerrar.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "sair") {
			fmt.Fprintln(out, "Até logo!")
			break
		}
		if err := send(cmd, responder, line); err != nil {
			root.Log.WithError(err).Error("Failed to process message")
			fmt.Fprintln(out, "Desculpe, algo deu errado. Tente novamente.")
		}
	}
	return scanner.Err()
}
