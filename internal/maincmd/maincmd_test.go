package maincmd_test

import (
	"bytes"
	"testing"

	"github.com/emberlang/ember/internal/maincmd"
	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
)

func runSource(t *testing.T, src string) (string, string, mainer.ExitCode) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := maincmd.RunSource(mainer.Stdio{Stdout: &out, Stderr: &errOut}, src)
	return out.String(), errOut.String(), code
}

func TestRunSourceSuccess(t *testing.T) {
	out, errOut, code := runSource(t, `print "hello";`)
	assert.Equal(t, "hello\n", out)
	assert.Empty(t, errOut)
	assert.EqualValues(t, 0, code)
}

func TestRunSourceParseErrorExits65(t *testing.T) {
	_, errOut, code := runSource(t, `var x = ;`)
	assert.NotEmpty(t, errOut)
	assert.EqualValues(t, 65, code)
}

func TestRunSourceResolveErrorExits65(t *testing.T) {
	_, errOut, code := runSource(t, `{ var a = a; }`)
	assert.NotEmpty(t, errOut)
	assert.EqualValues(t, 65, code)
}

func TestRunSourceRuntimeErrorExits70(t *testing.T) {
	_, errOut, code := runSource(t, `print 1 / 0;`)
	assert.Contains(t, errOut, "Can't divide by zero.")
	assert.EqualValues(t, 70, code)
}
