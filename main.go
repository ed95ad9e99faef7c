package main

import (
	"fmt"
	"os"

	"finchat/cmd/chat"
	"finchat/cmd/data"
	"finchat/cmd/goal"
	"finchat/cmd/report"
	"finchat/cmd/root"
	"finchat/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(goal.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(data.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
