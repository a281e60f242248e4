// Package domain contains the core types describing an inspected framework bundle.
package domain

// List is a slice whose absent and empty states are kept apart when serialized.
// A nil List is omitted from JSON and YAML output, an empty one is written as [].
type List[T any] []T

// IsZero reports whether the list is absent. Both encoding/json (omitzero)
// and yaml.v3 (omitempty) consult it.
func (l List[T]) IsZero() bool {
	return l == nil
}

// FrameworkInfo is the normalized report for one aggregate framework bundle.
type FrameworkInfo struct {
	FrameworkName           *string           `json:"framework_name,omitempty" yaml:"framework_name,omitempty"`
	FrameworkVersion        *string           `json:"framework_version,omitempty" yaml:"framework_version,omitempty"`
	IsMergeable             bool              `json:"is_mergeable" yaml:"is_mergeable"`
	SwiftCompilerInfo       *string           `json:"swift_compiler_info,omitempty" yaml:"swift_compiler_info,omitempty"`
	SwiftCompilerVersion    *string           `json:"swift_compiler_version,omitempty" yaml:"swift_compiler_version,omitempty"`
	SwiftVersion            *string           `json:"swift_version,omitempty" yaml:"swift_version,omitempty"`
	LibraryEvolutionEnabled bool              `json:"library_evolution_enabled" yaml:"library_evolution_enabled"`
	BuiltForDistribution    bool              `json:"built_for_distribution" yaml:"built_for_distribution"`
	AvailableLibraries      List[LibraryInfo] `json:"available_libraries,omitzero" yaml:"available_libraries,omitempty"`
}

// LibraryInfo describes one platform/architecture slice of the bundle.
type LibraryInfo struct {
	BinaryPath               string       `json:"binary_path" yaml:"binary_path"`
	LibraryIdentifier        string       `json:"library_identifier" yaml:"library_identifier"`
	LibraryPath              string       `json:"library_path" yaml:"library_path"`
	MarketingVersion         *string      `json:"marketing_version,omitempty" yaml:"marketing_version,omitempty"`
	MergeableMetadata        *bool        `json:"mergeable_metadata,omitempty" yaml:"mergeable_metadata,omitempty"`
	SupportedArchitectures   []string     `json:"supported_architectures" yaml:"supported_architectures"`
	SupportedPlatform        string       `json:"supported_platform" yaml:"supported_platform"`
	SupportedPlatformVariant *string      `json:"supported_platform_variant,omitempty" yaml:"supported_platform_variant,omitempty"`
	MinimumOSVersion         *string      `json:"minimum_os_version,omitempty" yaml:"minimum_os_version,omitempty"`
	Size                     *string      `json:"size,omitempty" yaml:"size,omitempty"`
	Dependencies             []string     `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	PrivacyInfo              *PrivacyInfo `json:"privacy_info,omitempty" yaml:"privacy_info,omitempty"`
}

// Scope returns the "<identifier>/<path>" subtree that holds the library's resources.
func (l LibraryInfo) Scope() string {
	return l.LibraryIdentifier + "/" + l.LibraryPath
}

// PrivacyInfo holds the contents of a library's privacy manifest.
// Present is false when the library ships no manifest.
type PrivacyInfo struct {
	Present            bool                    `json:"present" yaml:"present"`
	Tracking           *bool                   `json:"tracking,omitempty" yaml:"tracking,omitempty"`
	TrackingDomains    List[string]            `json:"tracking_domains,omitzero" yaml:"tracking_domains,omitempty"`
	CollectedDataTypes List[CollectedDataType] `json:"collected_data_types,omitzero" yaml:"collected_data_types,omitempty"`
	AccessedAPITypes   List[AccessedAPIType]   `json:"accessed_api_types,omitzero" yaml:"accessed_api_types,omitempty"`
}

// CollectedDataType is one NSPrivacyCollectedDataTypes record.
type CollectedDataType struct {
	DataType     string   `json:"data_type" yaml:"data_type"`
	LinkedToUser bool     `json:"linked_to_user" yaml:"linked_to_user"`
	Tracking     bool     `json:"tracking" yaml:"tracking"`
	Purposes     []string `json:"purposes" yaml:"purposes"`
}

// AccessedAPIType is one NSPrivacyAccessedAPITypes record.
type AccessedAPIType struct {
	API     string   `json:"api" yaml:"api"`
	Reasons []string `json:"reasons" yaml:"reasons"`
}
