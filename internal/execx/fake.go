package execx

import (
	"fmt"
	"strings"
)

// Fake is a Runner for tests. Commands are matched by their space-joined
// prefix against the Fail and Output maps; everything else succeeds with
// empty output. Calls records every invocation in order.
type Fake struct {
	// Output maps a command prefix to the output Run should return.
	Output map[string]string

	// Fail maps a command prefix to an error message; matching commands fail.
	Fail map[string]string

	// Missing lists command names LookPath should report as absent.
	Missing []string

	// Calls holds every Run invocation as a single space-joined string.
	Calls []string
}

func (f *Fake) Run(name string, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, cmdline)
	for prefix, msg := range f.Fail {
		if strings.HasPrefix(cmdline, prefix) {
			return "", fmt.Errorf("%s", msg)
		}
	}
	for prefix, out := range f.Output {
		if strings.HasPrefix(cmdline, prefix) {
			return out, nil
		}
	}
	return "", nil
}

func (f *Fake) LookPath(name string) (string, error) {
	for _, m := range f.Missing {
		if m == name {
			return "", fmt.Errorf("%s: executable file not found in $PATH", name)
		}
	}
	return "/usr/bin/" + name, nil
}

// CallCount returns how many recorded invocations start with prefix.
func (f *Fake) CallCount(prefix string) int {
	n := 0
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}
