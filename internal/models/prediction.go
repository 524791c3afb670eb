package models

import "strconv"

// Prediction is the transient result of one successful /predict call.
type Prediction struct {
	Prompt     string   `json:"prompt" yaml:"prompt"`
	Completion string   `json:"completion" yaml:"completion"`
	Words      []string `json:"words" yaml:"words"`
}

func (p Prediction) HasCompletion() bool {
	return p.Completion != ""
}

// FullSentence joins the original prompt and the predicted completion.
func (p Prediction) FullSentence() string {
	return p.Prompt + " " + p.Completion
}

// Status is what the status bar shows about backend reachability
type Status struct {
	Connected bool
	Message   string
}

// Controls describes the submit affordance
type Controls struct {
	Loading       bool
	SubmitEnabled bool
}

type CounterLevel int

const (
	CounterNormal CounterLevel = iota
	CounterWarning
	CounterDanger
)

// Counter is the "used/limit" character counter under the prompt.
type Counter struct {
	Used  int
	Limit int
	Level CounterLevel
}

func (c Counter) Label() string {
	return strconv.Itoa(c.Used) + "/" + strconv.Itoa(c.Limit)
}
