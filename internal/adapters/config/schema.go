package config

// Xcfile represents the structure of the xcinfo.yaml configuration file.
// Pointer fields distinguish "not set" from an explicit zero value.
type Xcfile struct {
	Output  OutputDTO  `yaml:"output"`
	Cache   ToggleDTO  `yaml:"cache"`
	History ToggleDTO  `yaml:"history"`
	Inspect InspectDTO `yaml:"inspect"`
}

// OutputDTO configures report rendering.
type OutputDTO struct {
	Format      string `yaml:"format"`
	Diagnostics *bool  `yaml:"diagnostics"`
}

// ToggleDTO enables or disables an optional store.
type ToggleDTO struct {
	Enabled *bool `yaml:"enabled"`
}

// InspectDTO configures how archives are processed.
type InspectDTO struct {
	Concurrency *int `yaml:"concurrency"`
}
