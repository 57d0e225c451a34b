package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Required .env keys. The run cannot proceed when any of them is empty.
const (
	KeyAccessKeyID     = "AWS_ACCESS_KEY_ID"
	KeySecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	KeyRegion          = "AWS_REGION"
	KeyModelID         = "MODEL_ID"
)

// RunConfiguration holds everything one invocation needs. It is populated
// from the .env file plus the interactive model selection and passed
// explicitly through every pipeline step; nothing reads it back out of
// hidden global state. Lifetime is a single run.
type RunConfiguration struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	ModelID         string
	Profile         string
}

// LoadEnv reads the key=value .env file at envPath into a RunConfiguration.
// The values are also exported into the process environment so the external
// inference program inherits them. A missing file is fatal for the run.
func LoadEnv(envPath string) (*RunConfiguration, error) {
	if _, err := os.Stat(envPath); err != nil {
		return nil, fmt.Errorf(".env file not found at %s", envPath)
	}

	vars, err := godotenv.Read(envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", envPath, err)
	}
	for k, v := range vars {
		if err := os.Setenv(k, v); err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", k, err)
		}
	}

	return &RunConfiguration{
		AccessKeyID:     vars[KeyAccessKeyID],
		SecretAccessKey: vars[KeySecretAccessKey],
		Region:          vars[KeyRegion],
		ModelID:         vars[KeyModelID],
	}, nil
}

// Validate checks that all required keys are non-empty. MODEL_ID is optional
// here; interactive selection fills it in later.
func (rc *RunConfiguration) Validate() error {
	for _, kv := range []struct {
		key, val string
	}{
		{KeyAccessKeyID, rc.AccessKeyID},
		{KeySecretAccessKey, rc.SecretAccessKey},
		{KeyRegion, rc.Region},
	} {
		if kv.val == "" {
			return fmt.Errorf("%s is empty or missing in the .env file", kv.key)
		}
	}
	return nil
}
