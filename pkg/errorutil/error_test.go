package errorutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := IO("write rates failed", cause)

	assert.Equal(t, "io: write rates failed: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindIO))
	assert.False(t, IsKind(err, KindFetch))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(KindFetch, "x", nil))
	assert.Nil(t, Fetch("x", nil))
	assert.False(t, IsKind(nil, KindFetch))
}

func TestKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("zones: %w", Newf(KindSchema, "no column in %v", []string{"a"}))

	assert.Equal(t, KindSchema, KindOf(err))
	assert.Equal(t, "zones: schema: no column in [a]", err.Error())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, "config: missing", New(KindConfig, "missing").Error())
}
