// Package serve handles the HTTP server command
package serve

import (
	"net/http"

	"github.com/spf13/cobra"

	"finchat/cmd/root"
	"finchat/internal/logging"
	"finchat/internal/server"
)

var addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat pipeline over HTTP",
	Long: `Start an HTTP server exposing the chat pipeline, reports, goals and
state transfer as a JSON API under /api.`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to serve.addr from config)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	listenAddr := addr
	if listenAddr == "" {
		listenAddr = root.Cfg.Serve.Addr
	}

	srv := server.New(responder, root.GetLogrusAdapter())
	root.Log.WithField(logging.FieldAddr, listenAddr).Info("Starting HTTP server")
	return http.ListenAndServe(listenAddr, srv.Handler())
}
