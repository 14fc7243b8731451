package controllers

import (
	"Gamehub/utils"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: name is required", utils.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: not yours", utils.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: game x", utils.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: stale", utils.ErrConflict), http.StatusConflict},
		{utils.ErrAlreadyMember, http.StatusConflict},
		{utils.ErrGroupFull, http.StatusConflict},
		{fmt.Errorf("%w: redis down", utils.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
