package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedrock-setup/internal/config"
	"bedrock-setup/internal/execx"
)

func runConfig() *config.RunConfiguration {
	return &config.RunConfiguration{
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret",
		Region:          "us-east-1",
		Profile:         "bedrock",
	}
}

func TestProfileExists(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials")
	require.NoError(t, os.WriteFile(creds, []byte(
		"[default]\naws_access_key_id = x\n\n[bedrock]\naws_access_key_id = y\n"), 0600))

	assert.True(t, ProfileExists(creds, "bedrock"))
	assert.True(t, ProfileExists(creds, "default"))
	assert.False(t, ProfileExists(creds, "other"))
	assert.False(t, ProfileExists(filepath.Join(dir, "missing"), "bedrock"))
}

func TestConfigureWritesNewProfile(t *testing.T) {
	creds := filepath.Join(t.TempDir(), "credentials")
	r := &execx.Fake{}

	require.NoError(t, Configure(r, creds, runConfig()))
	require.Len(t, r.Calls, 3)
	assert.Equal(t, "aws configure set aws_access_key_id AKIAEXAMPLE --profile bedrock", r.Calls[0])
	assert.Equal(t, "aws configure set aws_secret_access_key secret --profile bedrock", r.Calls[1])
	assert.Equal(t, "aws configure set region us-east-1 --profile bedrock", r.Calls[2])
}

func TestConfigureReusesExistingProfile(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials")
	require.NoError(t, os.WriteFile(creds, []byte(
		"[bedrock]\naws_access_key_id = original\n"), 0600))
	r := &execx.Fake{}

	// Even with different values in hand, an existing profile is untouched.
	rc := runConfig()
	rc.AccessKeyID = "AKIADIFFERENT"
	require.NoError(t, Configure(r, creds, rc))
	assert.Empty(t, r.Calls)

	data, err := os.ReadFile(creds)
	require.NoError(t, err)
	assert.Contains(t, string(data), "original")
}

func TestConfigureCLIFailure(t *testing.T) {
	creds := filepath.Join(t.TempDir(), "credentials")
	r := &execx.Fake{Fail: map[string]string{"aws configure set": "aws: command not found"}}

	err := Configure(r, creds, runConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aws configure set")
}
