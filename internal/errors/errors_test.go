package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/varkas/amptop/internal/errors"
)

func TestHasCode(t *testing.T) {
	factory := errors.New()

	base := factory.New(errors.ErrProviderRead)
	assert.True(t, errors.HasCode(base, errors.ErrProviderRead))
	assert.False(t, errors.HasCode(base, errors.ErrCollectorLoop))

	wrapped := factory.Wrap(errors.ErrCollectorLoop, base)
	assert.True(t, errors.HasCode(wrapped, errors.ErrCollectorLoop))
	assert.True(t, errors.HasCode(wrapped, errors.ErrProviderRead), "inner codes stay visible through wrapping")

	assert.False(t, errors.HasCode(nil, errors.ErrInternal))
	assert.False(t, errors.HasCode(stderrors.New("plain"), errors.ErrInternal))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := errors.New().Wrap(errors.ErrIOFailed, cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWithDataAppearsInMessage(t *testing.T) {
	err := errors.New().WithData(errors.ErrInvalidInterval, -3)

	assert.Equal(t, errors.ErrInvalidInterval, err.Code())
	assert.Equal(t, -3, err.GetData())
	assert.Contains(t, err.Error(), "-3")
}
