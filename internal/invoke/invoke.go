// Package invoke runs the external inference program. It makes exactly one
// attempt; retry is the operator re-running the whole tool.
package invoke

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"bedrock-setup/internal/config"
)

// Result holds the inference program's captured output. Stdout is the model
// response verbatim; Stderr is diagnostic text.
type Result struct {
	Stdout string
	Stderr string
}

// Run executes the inference program with the run configuration exported
// through its environment: the selected model identifier, the configured
// credential profile, and the region. A non-zero exit is an error; the
// partial Result is still returned so the caller can log stderr.
func Run(command string, args []string, rc *config.RunConfiguration) (*Result, error) {
	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(),
		config.KeyModelID+"="+rc.ModelID,
		"AWS_PROFILE="+rc.Profile,
		config.KeyRegion+"="+rc.Region,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return res, fmt.Errorf("inference program %s failed: %w", command, err)
	}
	return res, nil
}
