package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "topic file missing",
			wantStr: "[NOT_FOUND] topic file missing",
		},
		{
			name:    "invalid_config",
			code:    errors.ErrConfigValid,
			message: "unknown ansi mode",
			wantStr: "[CONFIG_INVALID] unknown ansi mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "width %d below %d", 0, 1)
	assert.Equal(t, "width 0 below 1", err.Message)
	assert.Equal(t, errors.ErrInvalidInput, err.Code)
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrConfigLoad, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrConfigLoad, "ignored %s", "too"))
	})

	t.Run("wraps_and_unwraps", func(t *testing.T) {
		base := stderrors.New("permission denied")
		err := errors.Wrapf(base, errors.ErrConfigLoad, "reading %s", "config.toml")

		require.NotNil(t, err)
		assert.Equal(t, "[CONFIG_LOAD] reading config.toml: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, base))
		assert.Same(t, base, stderrors.Unwrap(err))
	})
}

func TestIsMatchesCode(t *testing.T) {
	err := errors.New(errors.ErrPathResolve, "first")
	same := errors.New(errors.ErrPathResolve, "second")
	other := errors.New(errors.ErrInternal, "third")

	assert.True(t, stderrors.Is(err, same))
	assert.False(t, stderrors.Is(err, other))
}

func TestCodeHelpers(t *testing.T) {
	coded := errors.New(errors.ErrTopicNotFound, "no such topic").
		WithDetail("topic", "wrapping")
	wrapped := fmt.Errorf("help: %w", coded)
	plain := stderrors.New("plain")

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrTopicNotFound))
	assert.False(t, errors.IsErrorCode(plain, errors.ErrTopicNotFound))

	assert.Equal(t, errors.ErrTopicNotFound, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))

	assert.Equal(t, map[string]interface{}{"topic": "wrapping"}, errors.GetErrorDetails(wrapped))
	assert.Nil(t, errors.GetErrorDetails(plain))
}
