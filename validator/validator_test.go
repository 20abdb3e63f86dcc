package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/addressbook/errors"
)

func TestVar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		field      string
		value      string
		rules      string
		wantReason string
	}{
		{name: "valid phone", field: "phone", value: "1234567890", rules: "required,len=10,number", wantReason: ""},
		{name: "empty value", field: "phone", value: "", rules: "required,len=10,number", wantReason: "required"},
		{name: "too short", field: "phone", value: "123", rules: "required,len=10,number", wantReason: "invalid_length"},
		{name: "too long", field: "phone", value: "12345678901", rules: "required,len=10,number", wantReason: "invalid_length"},
		{name: "non digits", field: "phone", value: "12345abcde", rules: "required,len=10,number", wantReason: "only_numbers_allowed"},
		{name: "valid name", field: "name", value: "John", rules: "required", wantReason: ""},
		{name: "empty name", field: "name", value: "", rules: "required", wantReason: "required"},
		{name: "unknown tag falls back", field: "x", value: "abc", rules: "uuid4", wantReason: "invalid"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Var(tc.field, tc.value, tc.rules)
			if tc.wantReason == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, errors.IsDomainError(err))

			var de errors.DomainError
			require.ErrorAs(t, err, &de)
			require.Equal(t, tc.field, de.Field)
			require.Equal(t, tc.wantReason, de.Reason)
		})
	}
}

func TestInstanceIsShared(t *testing.T) {
	t.Parallel()

	require.NotNil(t, Instance())
	require.Same(t, Instance(), Instance())
}
