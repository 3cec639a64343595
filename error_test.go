package fehwiki_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/fehwiki"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := fehwiki.Errorf(fehwiki.ENOTFOUND, "page %q not found", "Marth")

	assert.Equal(t, fehwiki.ENOTFOUND, fehwiki.ErrorCode(err))
	assert.Equal(t, "page \"Marth\" not found", fehwiki.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, fehwiki.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, fehwiki.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup: %w", fehwiki.Errorf(fehwiki.EUNAVAILABLE, "timeout"))

	assert.Equal(t, fehwiki.EUNAVAILABLE, fehwiki.ErrorCode(err))
	assert.Equal(t, "timeout", fehwiki.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, fehwiki.EINTERNAL, fehwiki.ErrorCode(err))
	assert.Equal(t, "Internal error.", fehwiki.ErrorMessage(err))
}
