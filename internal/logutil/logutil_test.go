package logutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	SetVerbose(false)
	assert.False(t, Verbose())
	Debugf("hidden %d", 1)
	Infof("shown %d", 1)
	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 1")

	buf.Reset()
	SetVerbose(true)
	assert.True(t, Verbose())
	Debugf("hidden %d", 2)
	assert.Contains(t, buf.String(), "hidden 2")
}
