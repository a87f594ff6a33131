package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	inner := errors.New("open /tmp/backup.json: no such file")
	err := NewUserError("could not read backup file", inner)

	assert.Equal(t, "could not read backup file: open /tmp/backup.json: no such file", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestUserErrorWithoutCause(t *testing.T) {
	err := NewUserError("something went wrong", nil)

	assert.Equal(t, "something went wrong", err.Error())
	assert.NoError(t, errors.Unwrap(err))
}
