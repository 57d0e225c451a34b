// Package platform classifies the host operating system once, up front.
// Every later step that needs platform-specific behavior receives the tag
// explicitly instead of re-deriving it.
package platform

import (
	"runtime"
)

// Platform is the host OS family.
type Platform int

const (
	Unsupported Platform = iota
	Linux
	Darwin
	Windows
)

func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	case Windows:
		return "windows"
	default:
		return "unsupported"
	}
}

// Probe classifies the host the process is running on.
func Probe() Platform {
	return Classify(runtime.GOOS)
}

// Classify maps a GOOS value to a Platform tag. Pure, no side effects.
func Classify(goos string) Platform {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	case "windows":
		return Windows
	default:
		return Unsupported
	}
}
