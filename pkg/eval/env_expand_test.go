package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("REVCHECK_TEST_VAR", "value")

	tests := map[string]struct {
		in   string
		want string
	}{
		"plain string":         {in: "no-vars-here", want: "no-vars-here"},
		"required var":         {in: "${REVCHECK_TEST_VAR}/x", want: "value/x"},
		"default used":         {in: "${REVCHECK_UNSET_VAR:-fallback}", want: "fallback"},
		"default ignored":      {in: "${REVCHECK_TEST_VAR:-fallback}", want: "value"},
		"empty default":        {in: "${REVCHECK_UNSET_VAR:-}", want: ""},
		"multiple occurrences": {in: "${REVCHECK_TEST_VAR}-${REVCHECK_TEST_VAR}", want: "value-value"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ExpandEnv(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpandEnvMissingRequired(t *testing.T) {
	_, err := ExpandEnv("${REVCHECK_DEFINITELY_UNSET}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REVCHECK_DEFINITELY_UNSET")
}
