package agent

import (
	"strings"
	"unicode"

	"github.com/omnigraph/kgent/core/types"
)

const (
	answerPrefix = "ANSWER:"
	callPrefix   = "CALL "
)

// ParseDecision converts one raw model response into a tagged decision.
// The priority chain is strict: the ANSWER: prefix (case-insensitive) is
// checked before CALL, so an answer that mentions "CALL" later in the text
// can never be misparsed as a tool call. Anything that is neither an answer
// nor a tool call is treated verbatim as program text for the executor.
func ParseDecision(raw string) types.Decision {
	text := strings.TrimSpace(raw)

	if len(text) >= len(answerPrefix) && strings.EqualFold(text[:len(answerPrefix)], answerPrefix) {
		return types.Decision{
			Kind:   types.DecisionAnswer,
			Answer: strings.TrimSpace(text[len(answerPrefix):]),
		}
	}

	if strings.HasPrefix(text, callPrefix) {
		tool, args := splitCall(text[len(callPrefix):])
		return types.Decision{
			Kind: types.DecisionCallTool,
			Tool: tool,
			Args: args,
		}
	}

	return types.Decision{
		Kind:    types.DecisionRunProgram,
		Program: text,
	}
}

// splitCall extracts the tool name (first whitespace-delimited field, empty
// if absent) and the remainder of the line as a single raw-argument string.
// The remainder is never re-split, so it may itself contain spaces.
func splitCall(rest string) (tool, args string) {
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	i := strings.IndexFunc(rest, unicode.IsSpace)
	if i < 0 {
		return rest, ""
	}
	return rest[:i], strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
}
