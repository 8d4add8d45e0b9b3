package cli

import (
	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the "did you mean" list in error messages.
const maxSuggestions = 3

// candidates gathers every spelling a token could have been trying to
// match at node: declared flag tokens and child command names.
func candidates(node *Command) []string {
	var out []string

	for tok := range node.args.Tokens() {
		out = append(out, tok)
	}

	out = append(out, node.order...)

	return out
}

// suggest returns the closest candidate spellings for an unrecognized
// token, best match first.
func suggest(token string, candidates []string) []string {
	matches := fuzzy.Find(token, candidates)

	n := min(len(matches), maxSuggestions)

	out := make([]string, 0, n)
	for _, m := range matches[:n] {
		out = append(out, m.Str)
	}

	return out
}
