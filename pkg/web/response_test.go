package web

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestWithWarning(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantWarning bool
	}{
		{name: "NoError"},
		{name: "NotPersisted", err: fmt.Errorf("%w: %w", domain.ErrNotPersisted, errors.New("disk full")), wantWarning: true},
		{name: "OtherError", err: errors.New("boom")},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			res := WithWarning("data", tc.err)
			require.Equal(t, "data", res.Data)
			require.Equal(t, tc.wantWarning, res.Warning != "")
		})
	}
}

func TestBindErrorMsg(t *testing.T) {
	type request struct {
		Name string `validate:"required"`
		Term int    `validate:"min=1"`
	}

	v := validator.New()

	err := v.Struct(request{Term: 1})
	require.Equal(t, "Name is required", BindErrorMsg(err))

	err = v.Struct(request{Name: "x"})
	require.Equal(t, "Term must be at least 1", BindErrorMsg(err))

	require.Equal(t, "invalid request: EOF", BindErrorMsg(errors.New("EOF")))
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "DateOnly", input: "2024-03-05", want: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{name: "RFC3339", input: "2024-03-05T10:30:00+02:00", want: time.Date(2024, time.March, 5, 8, 30, 0, 0, time.UTC)},
		{name: "Invalid", input: "05/03/2024", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.True(t, tc.want.Equal(got))
			require.Equal(t, time.UTC, got.Location())
		})
	}
}
