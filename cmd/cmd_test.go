package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/nextword/internal/config"
	"github.com/Rorical/nextword/internal/core"
	"github.com/Rorical/nextword/internal/models"
)

type stubBackend struct {
	healthErr  error
	predictErr error
	prediction models.Prediction
	gotText    string
	gotWords   int
}

func (s *stubBackend) Health(ctx context.Context) error {
	return s.healthErr
}

func (s *stubBackend) Predict(ctx context.Context, text string, numWords int) (models.Prediction, error) {
	s.gotText = text
	s.gotWords = numWords
	return s.prediction, s.predictErr
}

func TestRunCheckPasses(t *testing.T) {
	backend := &stubBackend{prediction: models.Prediction{Completion: "fox jumps over", Words: []string{"fox", "jumps", "over"}}}
	var out bytes.Buffer

	assert.True(t, runCheck(context.Background(), backend, &out))
	assert.Equal(t, checkSampleText, backend.gotText)
	assert.Equal(t, checkSampleWords, backend.gotWords)
	assert.Contains(t, out.String(), "fox jumps over")
	assert.Contains(t, out.String(), "All checks passed")
}

func TestRunCheckSkipsPredictionWhenUnhealthy(t *testing.T) {
	backend := &stubBackend{healthErr: errors.New("connection refused")}
	var out bytes.Buffer

	assert.False(t, runCheck(context.Background(), backend, &out))
	assert.Empty(t, backend.gotText)
	assert.Contains(t, out.String(), "connection refused")
	assert.Contains(t, out.String(), "SKIPPED")
	assert.Contains(t, out.String(), "Troubleshooting")
}

func TestRunCheckReportsPredictionFailure(t *testing.T) {
	backend := &stubBackend{predictErr: errors.New("model not loaded")}
	var out bytes.Buffer

	assert.False(t, runCheck(context.Background(), backend, &out))
	assert.Contains(t, out.String(), "model not loaded")
}

func TestRunPredictFormats(t *testing.T) {
	pred := models.Prediction{Completion: "world", Words: []string{"world"}}

	var out, errOut bytes.Buffer
	backend := &stubBackend{prediction: pred}
	require.NoError(t, runPredict(context.Background(), backend, "  hello ", "4", "json", &out, &errOut))
	assert.Equal(t, "hello", backend.gotText)
	assert.Equal(t, 4, backend.gotWords)

	var gotJSON models.Prediction
	require.NoError(t, json.Unmarshal(out.Bytes(), &gotJSON))
	assert.Equal(t, models.Prediction{Prompt: "hello", Completion: "world", Words: []string{"world"}}, gotJSON)

	out.Reset()
	require.NoError(t, runPredict(context.Background(), &stubBackend{prediction: pred}, "hello", "1", "yaml", &out, &errOut))
	var gotYAML models.Prediction
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &gotYAML))
	assert.Equal(t, "world", gotYAML.Completion)

	out.Reset()
	require.NoError(t, runPredict(context.Background(), &stubBackend{prediction: pred}, "hello", "1", "text", &out, &errOut))
	assert.Contains(t, out.String(), "hello world")
}

func TestRunPredictErrors(t *testing.T) {
	var out, errOut bytes.Buffer

	err := runPredict(context.Background(), &stubBackend{}, "hello", "1", "xml", &out, &errOut)
	assert.Error(t, err)

	errOut.Reset()
	err = runPredict(context.Background(), &stubBackend{healthErr: errors.New("down")}, "hello", "1", "text", &out, &errOut)
	assert.ErrorIs(t, err, core.ErrNotConnected)
	assert.Contains(t, errOut.String(), core.MsgNotConnected)

	errOut.Reset()
	err = runPredict(context.Background(), &stubBackend{predictErr: errors.New("model not loaded")}, "hello", "1", "text", &out, &errOut)
	assert.Error(t, err)
	assert.Contains(t, errOut.String(), "model not loaded")
	assert.Empty(t, out.String())
}

func TestParseExamples(t *testing.T) {
	assert.Equal(t, []string{"once upon a", "i would like to"}, parseExamples(" once upon a, ,i would like to "))
	assert.Nil(t, parseExamples(""))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateSeconds("0"))
	assert.NoError(t, validateSeconds(" 15 "))
	assert.Error(t, validateSeconds("-1"))
	assert.Error(t, validateSeconds("soon"))

	assert.NoError(t, validateBaseURL(""))
	assert.NoError(t, validateBaseURL("https://predict.example.com"))
	assert.Error(t, validateBaseURL("ftp://example.com"))

	assert.Error(t, validateNotEmpty("  "))
}

func TestRemoveProfile(t *testing.T) {
	cfg := &config.Config{
		Profiles: map[string]config.Profile{
			"local":  {},
			"remote": {BaseURL: "https://predict.example.com"},
		},
		ActiveProfile: "remote",
	}

	removeProfile(cfg, "remote")
	assert.Equal(t, "local", cfg.ActiveProfile)

	removeProfile(cfg, "local")
	assert.Contains(t, cfg.Profiles, config.DefaultProfileName)
	assert.Equal(t, config.DefaultProfileName, cfg.ActiveProfile)
}

func TestDescribeProfile(t *testing.T) {
	out := describeProfile("local", config.Profile{TimeoutSeconds: 7})
	assert.Contains(t, out, config.LocalOrigin)
	assert.Contains(t, out, "Timeout: 7s")
	assert.Contains(t, out, "once upon a")
}
