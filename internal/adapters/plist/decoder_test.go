package plist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcinfo/internal/adapters/plist"
	"go.trai.ch/xcinfo/internal/core/domain"
	howett "howett.net/plist"
)

func TestDecoder_Decode(t *testing.T) {
	manifest := map[string]any{
		"CFBundleName":      "Kit",
		"MergeableMetadata": true,
		"AvailableLibraries": []any{
			map[string]any{"LibraryIdentifier": "ios-arm64"},
		},
	}

	for _, format := range []int{howett.XMLFormat, howett.BinaryFormat, howett.OpenStepFormat} {
		t.Run(howett.FormatNames[format], func(t *testing.T) {
			data, err := howett.Marshal(manifest, format)
			require.NoError(t, err)

			v, err := plist.NewDecoder().Decode(data)
			require.NoError(t, err)

			dict, ok := v.(map[string]any)
			require.True(t, ok, "top level should decode to a dictionary")
			assert.Equal(t, "Kit", dict["CFBundleName"])

			libs, ok := dict["AvailableLibraries"].([]any)
			require.True(t, ok)
			require.Len(t, libs, 1)
		})
	}
}

func TestDecoder_Decode_NonDictionary(t *testing.T) {
	data, err := howett.Marshal([]any{"a", "b"}, howett.XMLFormat)
	require.NoError(t, err)

	v, err := plist.NewDecoder().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, v)
}

func TestDecoder_Decode_Invalid(t *testing.T) {
	_, err := plist.NewDecoder().Decode([]byte("{ \"unterminated\" = "))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPlistDecodeFailed.Error())
}
