package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindUpstream, http.StatusInternalServerError},
		{KindStorage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.kind))
		})
	}
}

func TestAs_WrappedError(t *testing.T) {
	cause := assert.AnError
	err := fmt.Errorf("handler: %w", Storage("Internal Server Error", int64(7), cause))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, KindStorage, appErr.Kind)
	assert.Equal(t, int64(7), appErr.RequestID)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindStorage))
	assert.False(t, IsKind(err, KindConflict))
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(assert.AnError)
	assert.False(t, ok)
}
