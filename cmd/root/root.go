// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"finchat/internal/chat"
	"finchat/internal/config"
	"finchat/internal/intent"
	"finchat/internal/logging"
	"finchat/internal/store"
	"finchat/internal/vocab"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	DataFile       string
	CategoriesFile string
	TipsFile       string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finchat",
		Short: "A personal finance tracker driven by free-text chat messages in Portuguese.",
		Long: `finchat registers expenses, income, monthly saving goals and category
corrections from plain chat messages, and renders reports over the stored
transactions.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finchat!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			// Command-line flags win over config file and environment.
			if SharedFlags.DataFile != "" {
				Cfg.Data.File = SharedFlags.DataFile
			}
			if SharedFlags.CategoriesFile != "" {
				Cfg.Vocab.CategoriesFile = SharedFlags.CategoriesFile
			}
			if SharedFlags.TipsFile != "" {
				Cfg.Vocab.TipsFile = SharedFlags.TipsFile
			}
			return nil
		},
	}

	// SharedFlags holds common flag values accessible to all commands
	SharedFlags = CommonFlags{}
)

// GetLogrusAdapter returns the shared logger wrapped in the logging interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapter(Log)
}

// BuildResponder assembles the chat pipeline from the loaded configuration:
// vocabulary, tips, intent router and state store.
func BuildResponder() (*chat.Responder, error) {
	logger := GetLogrusAdapter()

	voc, err := vocab.Load(Cfg.Vocab.CategoriesFile, logger)
	if err != nil {
		return nil, err
	}
	tips, err := vocab.LoadTips(Cfg.Vocab.TipsFile, logger)
	if err != nil {
		return nil, err
	}

	st := store.NewStateStore(Cfg.Data.File, logger)
	router := intent.NewRouter(voc, logger)
	return chat.NewResponder(router, st, tips, logger)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataFile, "data", "d", "", "Path to the JSON state file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.CategoriesFile, "categories", "", "Path to a YAML file with category rules")
	Cmd.PersistentFlags().StringVar(&SharedFlags.TipsFile, "tips", "", "Path to a YAML file with category tips")
}
