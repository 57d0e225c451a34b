// Package provision brings the host to a fully provisioned state: Python
// runtime, archive tool, AWS CLI v2, and the SDK packages the inference
// program imports. Every dependency is a probe + installer pair behind the
// same Ensure loop, so provisioning is idempotent: when a probe succeeds the
// installer never runs.
package provision

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"bedrock-setup/internal/config"
	"bedrock-setup/internal/execx"
	"bedrock-setup/internal/logger"
	"bedrock-setup/internal/platform"
)

// Dependency pairs a presence probe with an installer. Probe must be cheap
// and side-effect free; Install is only invoked when Probe reports absence.
type Dependency struct {
	Name    string
	Probe   func() bool
	Install func() error
}

// Provisioner ensures dependencies on one host. It records downloaded
// installer artifacts so Cleanup can remove them afterwards.
type Provisioner struct {
	Runner   execx.Runner
	Platform platform.Platform
	Settings config.Settings

	artifacts []string
}

// New returns a Provisioner for the given host.
func New(r execx.Runner, p platform.Platform, s config.Settings) *Provisioner {
	return &Provisioner{Runner: r, Platform: p, Settings: s}
}

// Ensure checks one dependency and installs it only when absent. After an
// install the probe runs again; a dependency that is still missing at that
// point is a fatal provisioning failure.
func (p *Provisioner) Ensure(d Dependency) error {
	if d.Probe() {
		logger.Info("%s already installed. Skipping.", d.Name)
		return nil
	}
	logger.Info("Installing %s...", d.Name)
	if err := d.Install(); err != nil {
		return fmt.Errorf("failed to install %s: %w", d.Name, err)
	}
	if !d.Probe() {
		return fmt.Errorf("%s still not available after install", d.Name)
	}
	logger.Info("Installed %s.", d.Name)
	return nil
}

// Cleanup removes downloaded installer artifacts. Best effort: failures are
// logged and never fail the run. The cached virtualenv is deliberately kept
// so later runs reuse it.
func (p *Provisioner) Cleanup() {
	for _, a := range p.artifacts {
		if err := os.RemoveAll(a); err != nil {
			logger.Warn("Failed to remove installer artifact %s: %v", a, err)
			continue
		}
		logger.Info("Removed installer artifact %s", a)
	}
	p.artifacts = nil
}

// trackArtifact marks a path for removal during Cleanup.
func (p *Provisioner) trackArtifact(path string) {
	p.artifacts = append(p.artifacts, path)
}

// run executes a command through the Runner, wrapping failures with the
// command's combined output so install errors are diagnosable from the log.
func (p *Provisioner) run(name string, args ...string) error {
	out, err := p.Runner.Run(name, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %v\nOutput: %s", name, err, out)
	}
	return nil
}

// downloadFile fetches url into destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("Failed to close response body: %v", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return out.Close()
}
