package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, Linux, Classify("linux"))
	assert.Equal(t, Darwin, Classify("darwin"))
	assert.Equal(t, Windows, Classify("windows"))
	assert.Equal(t, Unsupported, Classify("plan9"))
	assert.Equal(t, Unsupported, Classify(""))
}

func TestString(t *testing.T) {
	assert.Equal(t, "linux", Linux.String())
	assert.Equal(t, "darwin", Darwin.String())
	assert.Equal(t, "windows", Windows.String())
	assert.Equal(t, "unsupported", Unsupported.String())
}
