package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env",
		"AWS_ACCESS_KEY_ID=AKIAEXAMPLE\n"+
			"AWS_SECRET_ACCESS_KEY=secret\n"+
			"AWS_REGION=us-east-1\n"+
			"MODEL_ID=anthropic.claude-v2\n")

	rc, err := LoadEnv(envPath)
	require.NoError(t, err)
	assert.Equal(t, "AKIAEXAMPLE", rc.AccessKeyID)
	assert.Equal(t, "secret", rc.SecretAccessKey)
	assert.Equal(t, "us-east-1", rc.Region)
	assert.Equal(t, "anthropic.claude-v2", rc.ModelID)

	// Values must be visible to child processes.
	assert.Equal(t, "us-east-1", os.Getenv("AWS_REGION"))
}

func TestLoadEnvMissingFile(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env file not found")
}

func TestValidate(t *testing.T) {
	valid := RunConfiguration{
		AccessKeyID:     "id",
		SecretAccessKey: "secret",
		Region:          "eu-west-1",
	}
	assert.NoError(t, valid.Validate())

	// MODEL_ID may be empty at validation time.
	withoutModel := valid
	withoutModel.ModelID = ""
	assert.NoError(t, withoutModel.Validate())

	for _, tc := range []struct {
		name  string
		strip func(*RunConfiguration)
		want  string
	}{
		{"no access key", func(rc *RunConfiguration) { rc.AccessKeyID = "" }, KeyAccessKeyID},
		{"no secret", func(rc *RunConfiguration) { rc.SecretAccessKey = "" }, KeySecretAccessKey},
		{"no region", func(rc *RunConfiguration) { rc.Region = "" }, KeyRegion},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rc := valid
			tc.strip(&rc)
			err := rc.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ".env", s.EnvFile)
	assert.Equal(t, "setup.log", s.LogFile)
	assert.Equal(t, "bedrock", s.Profile)
	assert.Equal(t, ".venv", s.VenvDir)
	assert.Equal(t, []string{"bedrock.py"}, s.Inference.Args)
}

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.yaml",
		"env_file: /etc/bedrock/.env\n"+
			"profile: team-profile\n"+
			"inference:\n"+
			"  command: python3\n"+
			"  args: [infer.py, --quiet]\n")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/bedrock/.env", s.EnvFile)
	assert.Equal(t, "team-profile", s.Profile)
	assert.Equal(t, "python3", s.Inference.Command)
	assert.Equal(t, []string{"infer.py", "--quiet"}, s.Inference.Args)
	// Untouched fields keep defaults.
	assert.Equal(t, "setup.log", s.LogFile)
	assert.Equal(t, ".venv", s.VenvDir)
}

func TestLoadSettingsMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.yaml", "env_file: [oops\n")
	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestResolveRelative(t *testing.T) {
	s := DefaultSettings()
	s.ResolveRelative("/opt/run")
	assert.Equal(t, filepath.Join("/opt/run", ".env"), s.EnvFile)

	abs := DefaultSettings()
	abs.EnvFile = "/etc/bedrock/.env"
	abs.ResolveRelative("/opt/run")
	assert.Equal(t, "/etc/bedrock/.env", abs.EnvFile)
}
