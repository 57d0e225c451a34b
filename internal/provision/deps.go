package provision

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"bedrock-setup/internal/archive"
	"bedrock-setup/internal/logger"
	"bedrock-setup/internal/platform"
)

// Dependency names, used by the pipeline to map failures to exit codes.
const (
	DepPython      = "Python runtime"
	DepArchiveTool = "unzip"
	DepAWSCLI      = "AWS CLI v2"
	DepSDK         = "SDK packages"
)

// sdkPackages are installed into the virtualenv; they are what the external
// inference program imports.
var sdkPackages = []string{"boto3", "botocore", "python-dotenv"}

// Dependencies returns the provisioning order. Every later pipeline step
// assumes all of these succeeded.
func (p *Provisioner) Dependencies() []Dependency {
	return []Dependency{
		p.pythonDep(),
		p.archiveToolDep(),
		p.awsCLIDep(),
		p.sdkDep(),
	}
}

// PythonBinary is the interpreter name on the given platform.
func PythonBinary(plat platform.Platform) string {
	if plat == platform.Windows {
		return "python"
	}
	return "python3"
}

// VenvPython is the interpreter inside the cached virtualenv.
func VenvPython(plat platform.Platform, venvDir string) string {
	if plat == platform.Windows {
		return filepath.Join(venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(venvDir, "bin", "python3")
}

func (p *Provisioner) pythonDep() Dependency {
	bin := PythonBinary(p.Platform)
	pkgs := []string{"python3"}
	switch p.Platform {
	case platform.Linux:
		// Debian-family images ship python3 without venv/pip.
		pkgs = []string{"python3", "python3-venv", "python3-pip"}
	case platform.Windows:
		pkgs = []string{"python"}
	}
	return Dependency{
		Name: DepPython,
		Probe: func() bool {
			_, err := p.Runner.LookPath(bin)
			return err == nil
		},
		Install: func() error {
			return p.packageInstall(pkgs...)
		},
	}
}

func (p *Provisioner) archiveToolDep() Dependency {
	return Dependency{
		Name: DepArchiveTool,
		Probe: func() bool {
			_, err := p.Runner.LookPath("unzip")
			return err == nil
		},
		Install: func() error {
			return p.packageInstall("unzip")
		},
	}
}

func (p *Provisioner) awsCLIDep() Dependency {
	return Dependency{
		Name: DepAWSCLI,
		Probe: func() bool {
			_, err := p.Runner.Run("aws", "--version")
			return err == nil
		},
		Install: func() error {
			return p.installAWSCLI()
		},
	}
}

// installAWSCLI installs AWS CLI v2 the way Amazon documents for each
// platform: the zip bundle on Linux (extracted in-process, so the install
// does not depend on the unzip step having succeeded), the .pkg on macOS,
// the MSI on Windows.
func (p *Provisioner) installAWSCLI() error {
	switch p.Platform {
	case platform.Linux:
		arch := "x86_64"
		if runtime.GOARCH == "arm64" {
			arch = "aarch64"
		}
		url := fmt.Sprintf("https://awscli.amazonaws.com/awscli-exe-linux-%s.zip", arch)
		zipPath := filepath.Join(p.Settings.TempDir, "awscliv2.zip")
		logger.Info("Downloading %s", url)
		if err := downloadFile(url, zipPath); err != nil {
			return err
		}
		p.trackArtifact(zipPath)

		extracted, err := archive.Extract(zipPath, p.Settings.TempDir)
		if err != nil {
			return fmt.Errorf("failed to extract AWS CLI archive: %w", err)
		}
		p.trackArtifact(extracted)

		return p.run("sudo", filepath.Join(extracted, "install"), "--update")

	case platform.Darwin:
		url := "https://awscli.amazonaws.com/AWSCLIV2.pkg"
		pkgPath := filepath.Join(p.Settings.TempDir, "AWSCLIV2.pkg")
		logger.Info("Downloading %s", url)
		if err := downloadFile(url, pkgPath); err != nil {
			return err
		}
		p.trackArtifact(pkgPath)

		return p.run("sudo", "installer", "-pkg", pkgPath, "-target", "/")

	case platform.Windows:
		return p.run("msiexec", "/i", "https://awscli.amazonaws.com/AWSCLIV2.msi", "/qn")
	}
	return fmt.Errorf("no AWS CLI installer for platform %s", p.Platform)
}

func (p *Provisioner) sdkDep() Dependency {
	venvPy := VenvPython(p.Platform, p.Settings.VenvDir)
	return Dependency{
		Name: DepSDK,
		Probe: func() bool {
			// Fails both when the venv does not exist yet and when any of
			// the packages is missing from it.
			_, err := p.Runner.Run(venvPy, "-c", "import boto3, botocore, dotenv")
			return err == nil
		},
		Install: func() error {
			if err := p.ensureVenv(); err != nil {
				return err
			}
			args := append([]string{"-m", "pip", "install", "--upgrade"}, sdkPackages...)
			return p.run(venvPy, args...)
		},
	}
}

// ensureVenv creates the isolated runtime environment, reusing a cached one
// from an earlier run when present.
func (p *Provisioner) ensureVenv() error {
	if _, err := os.Stat(p.Settings.VenvDir); err == nil {
		logger.Info("Reusing cached virtualenv at %s", p.Settings.VenvDir)
		return nil
	}
	logger.Info("Creating virtualenv at %s", p.Settings.VenvDir)
	return p.run(PythonBinary(p.Platform), "-m", "venv", p.Settings.VenvDir)
}

// packageInstall installs packages through the platform's package manager.
// On Linux the manager itself is probed: apt-get, then dnf, then yum.
func (p *Provisioner) packageInstall(pkgs ...string) error {
	var argv []string
	switch p.Platform {
	case platform.Linux:
		switch {
		case p.has("apt-get"):
			argv = append([]string{"sudo", "apt-get", "install", "-y"}, pkgs...)
		case p.has("dnf"):
			argv = append([]string{"sudo", "dnf", "install", "-y"}, pkgs...)
		case p.has("yum"):
			argv = append([]string{"sudo", "yum", "install", "-y"}, pkgs...)
		default:
			return errors.New("no supported package manager found (apt-get, dnf, yum)")
		}
	case platform.Darwin:
		argv = append([]string{"brew", "install"}, pkgs...)
	case platform.Windows:
		argv = append([]string{"choco", "install", "-y"}, pkgs...)
	default:
		return fmt.Errorf("no package manager for platform %s", p.Platform)
	}
	return p.run(argv[0], argv[1:]...)
}

func (p *Provisioner) has(bin string) bool {
	_, err := p.Runner.LookPath(bin)
	return err == nil
}
