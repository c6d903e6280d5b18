package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestWrapKeepsMatching(t *testing.T) {
	t.Parallel()

	base := New("disk full")
	wrapped := Wrapf(Wrap(base, "write export"), "farm %s", "f-1")

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "farm f-1: write export: disk full", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errors_test.go")

	var coded *codedError
	assert.True(t, As(WithStack(&codedError{code: 7}), &coded))
	assert.Equal(t, 7, coded.code)
}

func TestNilPassthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
	assert.NoError(t, Join(nil, nil))

	failed := Errorf("row %d", 3)
	assert.True(t, Is(Join(nil, failed), failed))
}
