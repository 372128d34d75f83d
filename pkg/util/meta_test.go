package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeMetaValidate(t *testing.T) {
	tests := map[string]struct {
		meta      TypeMeta
		kind      string
		expectErr bool
	}{
		"valid with explicit apiVersion": {
			meta: TypeMeta{APIVersion: APIVersionV1Alpha1, Kind: "TranscriptEval"},
			kind: "TranscriptEval",
		},
		"valid with defaulted apiVersion": {
			meta: TypeMeta{Kind: "TranscriptEval"},
			kind: "TranscriptEval",
		},
		"wrong kind": {
			meta:      TypeMeta{Kind: "Eval"},
			kind:      "TranscriptEval",
			expectErr: true,
		},
		"unknown apiVersion": {
			meta:      TypeMeta{APIVersion: "revcheck/v2", Kind: "TranscriptEval"},
			kind:      "TranscriptEval",
			expectErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.meta.Validate(tc.kind)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetAPIVersionDefaults(t *testing.T) {
	meta := TypeMeta{}
	assert.Equal(t, APIVersionV1Alpha1, meta.GetAPIVersion())

	meta.APIVersion = APIVersionV1Alpha1
	assert.Equal(t, APIVersionV1Alpha1, meta.GetAPIVersion())
}

func TestUnmarshalWithKind(t *testing.T) {
	type doc struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}

	var d doc
	err := UnmarshalWithKind([]byte(`{"kind": "TranscriptEval", "name": "demo"}`), &d, "TranscriptEval")
	require.NoError(t, err)
	assert.Equal(t, "demo", d.Name)

	err = UnmarshalWithKind([]byte(`{"kind": "Other"}`), &d, "TranscriptEval")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode kind 'Other'")
}
