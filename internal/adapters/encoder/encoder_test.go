package encoder_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcinfo/internal/adapters/encoder"
	"go.trai.ch/xcinfo/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func ptr[T any](v T) *T { return &v }

func sampleDoc() domain.AnnotatedInfo {
	return domain.AnnotatedInfo{
		FrameworkInfo: domain.FrameworkInfo{
			FrameworkName:           ptr("Kit"),
			FrameworkVersion:        ptr("1.2.0"),
			IsMergeable:             true,
			SwiftCompilerInfo:       ptr("Apple Swift version 5.9 (swiftlang-5.9.0.128.108 clang-1500.0.40.1)"),
			SwiftCompilerVersion:    ptr("5.9.0.128.108"),
			SwiftVersion:            ptr("5"),
			LibraryEvolutionEnabled: true,
			BuiltForDistribution:    true,
			AvailableLibraries: domain.List[domain.LibraryInfo]{
				{
					BinaryPath:             "Kit.framework/Kit",
					LibraryIdentifier:      "ios-arm64",
					LibraryPath:            "Kit.framework",
					MarketingVersion:       ptr("1.2.0"),
					MergeableMetadata:      ptr(true),
					SupportedArchitectures: []string{"arm64"},
					SupportedPlatform:      "ios",
					MinimumOSVersion:       ptr("13.0"),
					Size:                   ptr("1.23 MB"),
					Dependencies:           []string{"Foundation", "UIKit"},
					PrivacyInfo: &domain.PrivacyInfo{
						Present:         true,
						Tracking:        ptr(false),
						TrackingDomains: domain.List[string]{},
						CollectedDataTypes: domain.List[domain.CollectedDataType]{{
							DataType: "NSPrivacyCollectedDataTypeCrashData",
							Purposes: []string{"NSPrivacyCollectedDataTypePurposeAppFunctionality"},
						}},
						AccessedAPITypes: domain.List[domain.AccessedAPIType]{{
							API:     "NSPrivacyAccessedAPICategoryUserDefaults",
							Reasons: []string{"CA92.1"},
						}},
					},
				},
				{
					BinaryPath:               "Kit.framework/Kit",
					LibraryIdentifier:        "ios-arm64_x86_64-simulator",
					LibraryPath:              "Kit.framework",
					SupportedArchitectures:   []string{"arm64", "x86_64"},
					SupportedPlatform:        "ios",
					SupportedPlatformVariant: ptr("simulator"),
					PrivacyInfo:              &domain.PrivacyInfo{},
				},
			},
		},
		Diagnostics: []domain.Diagnostic{
			{Scope: "ios-arm64_x86_64-simulator", Reason: "binary Kit.framework/Kit not found"},
		},
	}
}

func TestFactory_For(t *testing.T) {
	f := encoder.NewFactory()

	for _, format := range []domain.OutputFormat{domain.FormatJSON, domain.FormatYAML, domain.FormatText} {
		enc, err := f.For(format)
		require.NoError(t, err)
		assert.NotNil(t, enc)
	}

	_, err := f.For("xml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedFormat.Error())
}

func TestJSONEncoder_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encoder.JSONEncoder{}.Encode(&buf, []domain.AnnotatedInfo{sampleDoc()}))

	g := goldie.New(t)
	g.Assert(t, "report", buf.Bytes())
}

func TestJSONEncoder_AbsentAndEmptyLists(t *testing.T) {
	absent := domain.AnnotatedInfo{}
	empty := domain.AnnotatedInfo{FrameworkInfo: domain.FrameworkInfo{
		AvailableLibraries: domain.List[domain.LibraryInfo]{},
	}}

	var buf bytes.Buffer
	require.NoError(t, encoder.JSONEncoder{}.Encode(&buf, []domain.AnnotatedInfo{absent, empty}))

	assert.JSONEq(t, `[
		{"is_mergeable": false, "library_evolution_enabled": false, "built_for_distribution": false},
		{"is_mergeable": false, "library_evolution_enabled": false, "built_for_distribution": false, "available_libraries": []}
	]`, buf.String())
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encoder.YAMLEncoder{}.Encode(&buf, []domain.AnnotatedInfo{sampleDoc()}))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "Kit", decoded["framework_name"])
	assert.Equal(t, true, decoded["is_mergeable"])

	libs, ok := decoded["available_libraries"].([]any)
	require.True(t, ok)
	require.Len(t, libs, 2)

	first, ok := libs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ios-arm64", first["library_identifier"])
	assert.Equal(t, []any{"Foundation", "UIKit"}, first["dependencies"])

	privacy, ok := first["privacy_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, privacy["tracking_domains"], "an empty list is written, not omitted")

	second, ok := libs[1].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, second, "size")
	assert.NotContains(t, second, "dependencies")
	assert.Equal(t, map[string]any{"present": false}, second["privacy_info"])

	diags, ok := decoded["diagnostics"].([]any)
	require.True(t, ok)
	assert.Len(t, diags, 1)
}

func TestTextEncoder(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, encoder.TextEncoder{}.Encode(&buf, []domain.AnnotatedInfo{sampleDoc(), {}}))

	out := buf.String()
	assert.Contains(t, out, "Kit 1.2.0\n")
	assert.Contains(t, out, "● ios-arm64 (ios; arm64)\n")
	assert.Contains(t, out, "○ ios-arm64_x86_64-simulator (ios-simulator; arm64, x86_64)\n")
	assert.Contains(t, out, "Foundation, UIKit")
	assert.Contains(t, out, "present, 1 collected data types, 1 accessed API types")
	assert.Contains(t, out, "! ios-arm64_x86_64-simulator: binary Kit.framework/Kit not found")
	assert.Contains(t, out, "(unnamed framework)\n")
	assert.Contains(t, out, "not declared")
	assert.NotContains(t, out, "\x1b[", "plain output for non-terminal writers")
}
