package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrInputClosed is returned by Prompt when the input stream ends before a
// valid selection was made.
var ErrInputClosed = errors.New("input closed before a model was selected")

// Prompt renders the catalog on w and reads lines from r until one resolves
// to a catalog entry. Invalid input re-prompts without limit; only the end
// of the input stream (or process termination) breaks the loop.
func Prompt(r io.Reader, w io.Writer) (Entry, error) {
	fmt.Fprintln(w, "Available models:")
	for _, e := range List() {
		fmt.Fprintf(w, "  %2d) %-10s %-22s %-6s %s\n", e.Index, e.Provider, e.Name, e.Version, e.ID)
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "Select a model [1-%d]: ", len(entries))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Entry{}, fmt.Errorf("failed to read selection: %w", err)
			}
			return Entry{}, ErrInputClosed
		}
		e, err := Resolve(scanner.Text())
		if err != nil {
			fmt.Fprintf(w, "%v\n", err)
			continue
		}
		return e, nil
	}
}
