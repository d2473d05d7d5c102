package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/snackstore/constant"
	cerr "github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	tests := []struct {
		name     string
		errType  constant.ErrorType
		wantMsg  string
		wantCode string
		wantHTTP int
	}{
		{"internal", constant.ErrInternal, "error internal", "0001", http.StatusInternalServerError},
		{"insufficient stock", constant.ErrInsufficientStock, "insufficient stock", "0007", http.StatusConflict},
		{"order validation", constant.ErrOrderValidation, "order validation failed", "0009", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cerr.SetCustomError(tt.errType)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, tt.wantCode, err.ErrorCode())
			assert.Equal(t, tt.wantHTTP, err.ErrorHTTPCode())
			assert.Empty(t, err.Details())
		})
	}
}

func TestCustomError_DetailsSurviveWrapping(t *testing.T) {
	details := []string{constant.ValidationEmptyCart}
	wrapped := fmt.Errorf("checkout: %w", cerr.SetCustomErrorWithDetails(constant.ErrOrderValidation, details))

	var ce cerr.CustomError
	assert.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, constant.ErrOrderValidation, ce.ErrorType())
	assert.Equal(t, details, ce.Details())
}
