// Package setup sequences the whole bootstrap run. Steps execute strictly
// top to bottom; the first fatal error ends the run with that step's exit
// code, dual-reported to the log file and the operator's error stream.
package setup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"bedrock-setup/internal/catalog"
	"bedrock-setup/internal/config"
	"bedrock-setup/internal/credentials"
	"bedrock-setup/internal/execx"
	"bedrock-setup/internal/invoke"
	"bedrock-setup/internal/logger"
	"bedrock-setup/internal/platform"
	"bedrock-setup/internal/provision"
)

// Exit codes, one per fatal-failure site.
const (
	ExitOK                  = 0
	ExitEnvFileMissing      = 10
	ExitConfigInvalid       = 11
	ExitModelSelection      = 12
	ExitUnsupportedPlatform = 15
	ExitRuntimeInstall      = 20
	ExitArchiveToolInstall  = 21
	ExitCLIInstall          = 22
	ExitSDKInstall          = 23
	ExitProvisionFailure    = 24
	ExitCredentialConfig    = 30
	ExitInference           = 35
)

// StepError carries the exit code of the pipeline step that failed.
type StepError struct {
	Code int
	Err  error
}

func (e *StepError) Error() string { return e.Err.Error() }
func (e *StepError) Unwrap() error { return e.Err }

// ExitCode maps a Run result to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var se *StepError
	if errors.As(err, &se) {
		return se.Code
	}
	return 1
}

// Pipeline holds everything one run needs, passed explicitly so each step is
// testable in isolation: no hidden process-global state beyond the exported
// environment the inference program inherits.
type Pipeline struct {
	Settings config.Settings
	Runner   execx.Runner
	In       io.Reader
	Out      io.Writer

	// GOOS overrides the probed OS in tests; empty means runtime.GOOS.
	GOOS string

	// CredentialsFile overrides the AWS shared credentials file location.
	CredentialsFile string
}

// Run executes the bootstrap sequence once:
// ConfigLoaded -> Validated -> ModelSelected -> PlatformProbed ->
// Provisioned -> CredentialsConfigured -> InferenceInvoked -> CleanedUp.
func (p *Pipeline) Run() error {
	// ConfigLoaded
	rc, err := config.LoadEnv(p.Settings.EnvFile)
	if err != nil {
		return fail(ExitEnvFileMissing, err)
	}
	rc.Profile = p.Settings.Profile
	logger.Info("Loaded environment from %s", p.Settings.EnvFile)

	// Validated
	if err := rc.Validate(); err != nil {
		return fail(ExitConfigInvalid, err)
	}

	// ModelSelected
	entry, err := catalog.Prompt(p.In, p.Out)
	switch {
	case err == nil:
		rc.ModelID = entry.ID
		logger.Info("Selected model %s (%s %s %s)", entry.ID, entry.Provider, entry.Name, entry.Version)
	case errors.Is(err, catalog.ErrInputClosed) && rc.ModelID != "":
		// Non-interactive run with MODEL_ID preset in the .env file.
		logger.Info("Input closed; keeping MODEL_ID from environment: %s", rc.ModelID)
	default:
		return fail(ExitModelSelection, err)
	}
	if err := os.Setenv(config.KeyModelID, rc.ModelID); err != nil {
		return fail(ExitModelSelection, err)
	}

	// PlatformProbed
	goos := p.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	plat := platform.Classify(goos)
	if plat == platform.Unsupported {
		return fail(ExitUnsupportedPlatform, fmt.Errorf("unsupported operating system %q", goos))
	}
	logger.Info("Detected platform: %s", plat)

	// Provisioned
	prov := provision.New(p.Runner, plat, p.Settings)
	for _, dep := range prov.Dependencies() {
		if err := prov.Ensure(dep); err != nil {
			return fail(depExit(dep.Name), err)
		}
	}

	// CredentialsConfigured
	credsFile := p.CredentialsFile
	if credsFile == "" {
		credsFile = credentials.DefaultCredentialsFile()
	}
	if err := credentials.Configure(p.Runner, credsFile, rc); err != nil {
		return fail(ExitCredentialConfig, err)
	}

	// InferenceInvoked
	command := p.Settings.Inference.Command
	if command == "" {
		command = provision.VenvPython(plat, p.Settings.VenvDir)
	}
	logger.Info("Invoking inference program: %s", command)
	res, err := invoke.Run(command, p.Settings.Inference.Args, rc)
	if err != nil {
		if res != nil && res.Stderr != "" {
			err = fmt.Errorf("%w\nStderr: %s", err, res.Stderr)
		}
		return fail(ExitInference, err)
	}
	fmt.Fprint(p.Out, res.Stdout)
	logger.Info("Inference succeeded for model %s", rc.ModelID)

	// CleanedUp (best effort, errors logged inside)
	prov.Cleanup()
	return nil
}

// fail dual-reports a fatal error: one ERROR line in the log (which also
// reaches stderr) and a StepError carrying the site's exit code.
func fail(code int, err error) error {
	logger.Error("%v", err)
	return &StepError{Code: code, Err: err}
}

func depExit(name string) int {
	switch name {
	case provision.DepPython:
		return ExitRuntimeInstall
	case provision.DepArchiveTool:
		return ExitArchiveToolInstall
	case provision.DepAWSCLI:
		return ExitCLIInstall
	case provision.DepSDK:
		return ExitSDKInstall
	}
	return ExitProvisionFailure
}
