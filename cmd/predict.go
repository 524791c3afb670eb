package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/nextword/internal/core"
	"github.com/Rorical/nextword/internal/models"
	"github.com/Rorical/nextword/ui/components"
)

var (
	numWordsFlag string
	outputFlag   string
)

var predictCmd = &cobra.Command{
	Use:   "predict [text...]",
	Short: "Predict the next words for a prompt and exit",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		backend, _ := newCLIBackend()

		text := strings.Join(args, " ")
		if err := runPredict(cmd.Context(), backend, text, numWordsFlag, outputFlag, os.Stdout, os.Stderr); err != nil {
			os.Exit(1)
		}
	},
}

// printView collects what the controller renders for a one-shot prediction.
type printView struct {
	prediction *models.Prediction
	errMsg     string
}

func (v *printView) RenderStatus(models.Status)     {}
func (v *printView) RenderControls(models.Controls) {}
func (v *printView) RenderCounter(models.Counter)   {}
func (v *printView) RenderPrompt(string)            {}

func (v *printView) RenderResult(prediction models.Prediction) {
	v.prediction = &prediction
}

func (v *printView) RenderError(message string) {
	v.errMsg = message
}

// runPredict probes the backend, submits text and writes the outcome in format.
func runPredict(ctx context.Context, backend core.Backend, text, numWords, format string, stdout, stderr io.Writer) error {
	if err := validateFormat(format); err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	view := &printView{}
	controller := core.NewController(backend, view, nil)
	controller.ProbeHealth(ctx)

	err := controller.Submit(ctx, core.PromptInput{Text: text, NumWords: numWords})
	if err != nil {
		fmt.Fprintln(stderr, components.RenderError(view.errMsg))
		return err
	}
	return writePrediction(stdout, *view.prediction, format)
}

func validateFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

func writePrediction(w io.Writer, prediction models.Prediction, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prediction)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(prediction); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, components.RenderResult(prediction))
		return err
	}
}

func init() {
	predictCmd.Flags().StringVarP(&numWordsFlag, "num-words", "n", "1", "number of words to predict")
	predictCmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "output format (text, json, yaml)")
	rootCmd.AddCommand(predictCmd)
}
