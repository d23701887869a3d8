package lerr_test

import (
	"testing"

	"github.com/emberlang/ember/lang/lerr"
	"github.com/stretchr/testify/assert"
)

func TestErrorFormat(t *testing.T) {
	e := &lerr.Error{Kind: lerr.Parse, Line: 3, Near: " at 'x'", Message: "Expect ';' after value."}
	assert.Equal(t, "ParseError [line 3] at 'x': Expect ';' after value.", e.Error())
}

func TestErrorFormatNoNear(t *testing.T) {
	e := &lerr.Error{Kind: lerr.Runtime, Line: 10, Message: "Undefined variable 'x'."}
	assert.Equal(t, "RuntimeError [line 10]: Undefined variable 'x'.", e.Error())
}

func TestIsStatic(t *testing.T) {
	assert.True(t, (&lerr.Error{Kind: lerr.Parse}).IsStatic())
	assert.True(t, (&lerr.Error{Kind: lerr.Resolve}).IsStatic())
	assert.False(t, (&lerr.Error{Kind: lerr.Runtime}).IsStatic())
}

func TestListErr(t *testing.T) {
	var l lerr.List
	assert.NoError(t, l.Err())

	l.Add(lerr.Parse, 1, "", "first")
	l.Add(lerr.Parse, 2, "", "second")
	err := l.Err()
	if assert.Error(t, err) {
		assert.Equal(t, "ParseError [line 1]: first\nParseError [line 2]: second", err.Error())
	}
}
