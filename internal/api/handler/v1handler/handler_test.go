package v1handler_test

import (
	"context"
	"errors"
	"purger/internal/api/handler/v1handler"
	"testing"

	"purger/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    serrors.Kind
		message string
	}{
		{
			name:    "plain error is internal",
			err:     errors.New("boom"),
			status:  500,
			code:    serrors.ErrInternal,
			message: "internal error",
		},
		{
			name:    "kind sentinel",
			err:     serrors.ErrNotFound,
			status:  404,
			code:    serrors.ErrNotFound,
			message: "resource not found",
		},
		{
			name:    "bad request exposes its message",
			err:     serrors.With(serrors.ErrBadRequest, "invalid payload: post_id"),
			status:  400,
			code:    serrors.ErrBadRequest,
			message: "invalid payload: post_id",
		},
		{
			name:    "wrapped unauthorized hides the cause",
			err:     serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad signature"), "invalid token"),
			status:  401,
			code:    serrors.ErrUnauthorized,
			message: "invalid token",
		},
		{
			name:    "unavailable hides its message",
			err:     serrors.With(serrors.ErrUnavailable, "ban rejected with status 403"),
			status:  503,
			code:    serrors.ErrUnavailable,
			message: "service unavailable",
		},
		{
			name:    "internal kind only",
			err:     serrors.KindOnly(serrors.ErrInternal),
			status:  500,
			code:    serrors.ErrInternal,
			message: "internal error",
		},
	}

	h := v1handler.New(v1handler.Deps{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tc.err)
			require.NotNil(t, res)
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, tc.code.Error(), res.Response.Code)
			require.Equal(t, tc.message, res.Response.Message)
		})
	}
}
