// Package execx abstracts external command execution so that provisioning
// and credential steps can be exercised in tests without touching the host.
package execx

import (
	"os/exec"
)

// Runner executes external commands. The production implementation shells
// out via os/exec; tests substitute a fake that records invocations.
type Runner interface {
	// Run executes a command and returns its combined output.
	Run(name string, args ...string) (string, error)

	// LookPath reports where a command resolves on PATH, or an error if it
	// does not.
	LookPath(name string) (string, error)
}

// System is the production Runner backed by os/exec.
type System struct{}

func (System) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func (System) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
