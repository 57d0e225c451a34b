// Package credentials materializes the run's AWS credentials into a named
// profile in the AWS CLI's own store. The store belongs to the CLI; this
// package only checks for the profile section and delegates writes to
// `aws configure set`, so repeated runs never corrupt an existing profile.
package credentials

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bedrock-setup/internal/config"
	"bedrock-setup/internal/execx"
	"bedrock-setup/internal/logger"
)

// DefaultCredentialsFile is the AWS shared credentials file location.
func DefaultCredentialsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".aws", "credentials")
	}
	return filepath.Join(home, ".aws", "credentials")
}

// ProfileExists reports whether a `[profile]` section is present in the
// shared credentials file. A missing file means no profiles exist yet.
func ProfileExists(credsFile, profile string) bool {
	f, err := os.Open(credsFile)
	if err != nil {
		return false
	}
	defer f.Close()

	want := "[" + profile + "]"
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == want {
			return true
		}
	}
	return false
}

// Configure ensures the named profile holds the run's access key, secret,
// and region. An existing profile is reused untouched; otherwise the three
// fields are written through `aws configure set`.
func Configure(r execx.Runner, credsFile string, rc *config.RunConfiguration) error {
	if ProfileExists(credsFile, rc.Profile) {
		logger.Info("AWS profile %q already configured. Reusing.", rc.Profile)
		return nil
	}

	logger.Info("Writing AWS profile %q", rc.Profile)
	for _, kv := range [][2]string{
		{"aws_access_key_id", rc.AccessKeyID},
		{"aws_secret_access_key", rc.SecretAccessKey},
		{"region", rc.Region},
	} {
		out, err := r.Run("aws", "configure", "set", kv[0], kv[1], "--profile", rc.Profile)
		if err != nil {
			return fmt.Errorf("aws configure set %s failed: %v\nOutput: %s", kv[0], err, out)
		}
	}
	logger.Info("AWS profile %q configured.", rc.Profile)
	return nil
}
