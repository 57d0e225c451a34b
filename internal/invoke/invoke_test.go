package invoke

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedrock-setup/internal/config"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test shells out to sh")
	}
}

func runConfig() *config.RunConfiguration {
	return &config.RunConfiguration{
		ModelID: "anthropic.claude-v2",
		Profile: "bedrock",
		Region:  "us-east-1",
	}
}

func TestRunCapturesStdout(t *testing.T) {
	skipOnWindows(t)
	res, err := Run("sh", []string{"-c", "echo Jakarta"}, runConfig())
	require.NoError(t, err)
	assert.Equal(t, "Jakarta\n", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestRunExportsConfiguration(t *testing.T) {
	skipOnWindows(t)
	res, err := Run("sh", []string{"-c", "echo $MODEL_ID $AWS_PROFILE $AWS_REGION"}, runConfig())
	require.NoError(t, err)
	assert.Equal(t, "anthropic.claude-v2 bedrock us-east-1\n", res.Stdout)
}

func TestRunNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	res, err := Run("sh", []string{"-c", "echo boom >&2; exit 3"}, runConfig())
	require.Error(t, err)
	assert.Equal(t, "boom\n", res.Stderr)
}

func TestRunMissingProgram(t *testing.T) {
	_, err := Run("definitely-not-a-program", nil, runConfig())
	assert.Error(t, err)
}
