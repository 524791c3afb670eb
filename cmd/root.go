package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/nextword/internal/app"
	"github.com/Rorical/nextword/internal/logging"
)

var (
	profileFlag  string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "nextword",
	Short: "Next word prediction in your terminal",
	Long:  `nextword is a terminal client for a next-word prediction server. Type the start of a sentence and let the model finish it.`,
	Run: func(cmd *cobra.Command, args []string) {
		runApp(profileFlag)
	},
}

func runApp(profile string) {
	level, err := logging.ParseLevel(logLevelFlag)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	application, err := app.NewApplication(app.Options{Profile: profile, LogLevel: level})
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Printf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "profile to use instead of the active one")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
