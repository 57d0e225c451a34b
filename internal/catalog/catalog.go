// Package catalog holds the fixed set of Bedrock models the operator can
// choose from, together with the selection logic. Validation is a pure
// function so it can be tested without simulating interactive input.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one row of the built-in model catalog.
type Entry struct {
	Index    int
	Provider string
	Name     string
	Version  string
	ID       string
}

// entries is fixed at build time. Indices are unique and dense (1..N); the
// providers match what the inference program knows how to talk to.
var entries = []Entry{
	{1, "anthropic", "Claude Instant", "v1", "anthropic.claude-instant-v1"},
	{2, "anthropic", "Claude", "v2.1", "anthropic.claude-v2:1"},
	{3, "anthropic", "Claude", "v2", "anthropic.claude-v2"},
	{4, "amazon", "Titan Text Lite", "v1", "amazon.titan-text-lite-v1"},
	{5, "amazon", "Titan Text Express", "v1", "amazon.titan-text-express-v1"},
	{6, "meta", "Llama 3 8B Instruct", "v1", "meta.llama3-8b-instruct-v1:0"},
	{7, "meta", "Llama 3 70B Instruct", "v1", "meta.llama3-70b-instruct-v1:0"},
	{8, "mistral", "Mistral 7B Instruct", "v0.2", "mistral.mistral-7b-instruct-v0:2"},
	{9, "mistral", "Mixtral 8x7B Instruct", "v0.1", "mistral.mixtral-8x7b-instruct-v0:1"},
	{10, "mistral", "Mistral Large", "24.02", "mistral.mistral-large-2402-v1:0"},
	{11, "amazon", "Titan Text Premier", "v1", "amazon.titan-text-premier-v1:0"},
}

// List returns the catalog in index order.
func List() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry with the given index.
func Lookup(index int) (Entry, bool) {
	for _, e := range entries {
		if e.Index == index {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolve validates one line of operator input against the catalog. It
// returns the selected entry, or an error describing why the input is not a
// valid selection. It never mutates anything.
func Resolve(input string) (Entry, error) {
	trimmed := strings.TrimSpace(input)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid selection %q: not a whole number", trimmed)
	}
	e, ok := Lookup(n)
	if !ok {
		return Entry{}, fmt.Errorf("selection %d is out of range [1-%d]", n, len(entries))
	}
	return e, nil
}
