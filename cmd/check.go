package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/nextword/internal/client"
	"github.com/Rorical/nextword/internal/config"
	"github.com/Rorical/nextword/internal/core"
	"github.com/Rorical/nextword/internal/logging"
)

const (
	checkHealthTimeout  = 5 * time.Second
	checkPredictTimeout = 10 * time.Second
	checkSampleText     = "the quick brown"
	checkSampleWords    = 3
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the prediction server is reachable and answering",
	Run: func(cmd *cobra.Command, args []string) {
		backend, baseURL := newCLIBackend()

		fmt.Printf("Checking %s\n\n", baseURL)
		if !runCheck(cmd.Context(), backend, os.Stdout) {
			os.Exit(1)
		}
	},
}

// newCLIBackend builds a client for the selected profile with logs on stderr.
func newCLIBackend() (*client.Client, string) {
	level, err := logging.ParseLevel(logLevelFlag)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	logger := logging.InitForCLI(os.Stderr, level)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if profileFlag != "" {
		if err := cfg.UseProfile(profileFlag); err != nil {
			log.Fatalf("Failed to use profile: %v", err)
		}
	}

	baseURL, err := cfg.BaseURL()
	if err != nil {
		log.Fatalf("Invalid base url: %v", err)
	}
	return client.New(baseURL, cfg.Timeout(), logger), baseURL
}

// runCheck probes health, then a sample prediction, and reports each step to w.
func runCheck(ctx context.Context, backend core.Backend, w io.Writer) bool {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintln(w, "1. Backend health...")
	healthCtx, cancel := context.WithTimeout(ctx, checkHealthTimeout)
	err := backend.Health(healthCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(w, "   FAILED (%v)\n", err)
		fmt.Fprintln(w, "2. Prediction API...")
		fmt.Fprintln(w, "   SKIPPED (backend not available)")
		printTroubleshooting(w)
		return false
	}
	fmt.Fprintln(w, "   PASSED")

	fmt.Fprintln(w, "2. Prediction API...")
	predictCtx, cancel := context.WithTimeout(ctx, checkPredictTimeout)
	prediction, err := backend.Predict(predictCtx, checkSampleText, checkSampleWords)
	cancel()
	if err != nil {
		fmt.Fprintf(w, "   FAILED (%v)\n", err)
		printTroubleshooting(w)
		return false
	}
	fmt.Fprintln(w, "   PASSED")
	fmt.Fprintf(w, "   Input: '%s'\n", checkSampleText)
	fmt.Fprintf(w, "   Completion: '%s'\n", prediction.Completion)
	fmt.Fprintf(w, "   Words: [%s]\n", strings.Join(prediction.Words, ", "))

	fmt.Fprintln(w, "\nAll checks passed.")
	return true
}

func printTroubleshooting(w io.Writer) {
	fmt.Fprintln(w, "\nTroubleshooting:")
	fmt.Fprintln(w, "   - Start the prediction server (python server.py)")
	fmt.Fprintln(w, "   - Make sure the model and tokenizer files are present")
	fmt.Fprintln(w, "   - Check the profile base URL with 'nextword profile show'")
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
