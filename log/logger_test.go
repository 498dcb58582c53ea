package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	t.Cleanup(func() {
		ResetModuleLevels()
		SetLevel(Notice)
		SetSink(os.Stderr)
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" WARNING ")
	require.NoError(t, err)
	assert.Equal(t, Warning, level)
	assert.Equal(t, "warning", level.String())

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestModuleLevelOverridesDefault(t *testing.T) {
	buf := captureLogs(t)
	SetLevel(Warning)
	SetModuleLevel(Renderer, Debug)

	For(Renderer).Debugf("pass %d", 2)
	For(Loader).Info("parsed scene")
	For(Loader).Error("missing mtl")

	out := buf.String()
	assert.Contains(t, out, "[renderer]")
	assert.Contains(t, out, "pass 2")
	assert.NotContains(t, out, "parsed scene")
	assert.Contains(t, out, "missing mtl")
	assert.Equal(t, Debug, LevelOf(Renderer))
	assert.Equal(t, Warning, LevelOf(Loader))
}

func TestLevelsSurviveSinkChange(t *testing.T) {
	captureLogs(t)
	SetModuleLevel(Device, Error)

	var buf bytes.Buffer
	SetSink(&buf)
	For(Device).Warning("slow upload")
	For(Device).Error("context lost")

	assert.NotContains(t, buf.String(), "slow upload")
	assert.Contains(t, buf.String(), "context lost")
}

func TestResetModuleLevels(t *testing.T) {
	buf := captureLogs(t)
	SetModuleLevel(Profiler, Error)
	ResetModuleLevels()

	For(Profiler).Notice("frame stats")
	assert.Contains(t, buf.String(), "frame stats")
	assert.Equal(t, Notice, LevelOf(Profiler))
}

func TestParseModuleLevels(t *testing.T) {
	captureLogs(t)

	require.NoError(t, ParseModuleLevels("info, opengl=warning,Renderer=DEBUG"))
	assert.Equal(t, Info, LevelOf(Engine))
	assert.Equal(t, Warning, LevelOf(Device))
	assert.Equal(t, Debug, LevelOf(Renderer))

	assert.Error(t, ParseModuleLevels("physics=debug"))
	assert.Error(t, ParseModuleLevels("loader=chatty"))
}
