package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, Version, info.String())
}

func TestInfo_Full(t *testing.T) {
	info := Info{Version: "1.0.0", Commit: "abc123", BuildDate: "2026-10-14", GoVersion: "go1.25.0", Platform: "linux/amd64"}

	full := info.Full()
	assert.True(t, strings.HasPrefix(full, "ariasheet 1.0.0 (abc123)"))
	assert.Contains(t, full, "linux/amd64")
}
