package agent

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// The prompt format is not load-bearing for correctness: the loop only
// requires that the question and a serialization of prior steps reach the
// model so it can condition on history.
const promptTemplate = `You are an autonomous agent answering a question by reasoning over a knowledge graph.

Question: {{ .Question }}
{{- if .Tools }}

Available tools: {{ join ", " .Tools }}
{{- end }}
{{- if .Steps }}

Previous steps:
{{- range .Steps }}
- [{{ .Action }}] {{ .Input }} => {{ .Out }}
{{- end }}
{{- end }}
{{- if .MemorySummary }}

Memory summary: {{ .MemorySummary }}
{{- end }}

Respond with exactly one of:
ANSWER: <final answer>
CALL <tool_name> <arguments>
<program text to execute against the knowledge graph>`

func templateBase(name, text string) (*template.Template, error) {
	return template.New(name).Funcs(sprig.FuncMap()).Parse(text)
}

func renderPrompt(question string, state *runState, tools []string) (string, error) {
	tmpl, err := templateBase("prompt", promptTemplate)
	if err != nil {
		return "", err
	}

	prompt := bytes.NewBuffer([]byte{})
	err = tmpl.Execute(prompt, struct {
		Question      string
		Tools         []string
		Steps         []stepRecord
		MemorySummary string
	}{
		Question:      question,
		Tools:         tools,
		Steps:         state.steps,
		MemorySummary: state.memorySummary,
	})
	if err != nil {
		return "", err
	}

	return prompt.String(), nil
}
