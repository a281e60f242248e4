package extractor

import (
	"fmt"

	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	keyBundleName      = "CFBundleName"
	keyShortVersion    = "CFBundleShortVersionString"
	keySDKBuild        = "DTSDKBuild"
	keyMergeable       = "MergeableMetadata"
	keyBinaryPath      = "BinaryPath"
	keyIdentifier      = "LibraryIdentifier"
	keyLibraryPath     = "LibraryPath"
	keyArchitectures   = "SupportedArchitectures"
	keyPlatform        = "SupportedPlatform"
	keyPlatformVariant = "SupportedPlatformVariant"
	keyMinimumOS       = "MinimumOSVersion"
)

// rootManifest decodes the bundle's top-level Info.plist. When several exist,
// the shallowest one wins and ties go to container order.
func (x *extraction) rootManifest() (map[string]any, error) {
	var (
		root  ports.Entry
		found bool
	)
	for _, e := range x.archive.FindAll(domain.ResourceQuery{Suffix: infoPlistSuffix}) {
		if !found || domain.PathDepth(e.Name) < domain.PathDepth(root.Name) {
			root, found = e, true
		}
	}
	if !found {
		return nil, zerr.With(domain.ErrRootManifestNotFound, "entries", len(x.archive.Entries()))
	}

	data, err := x.archive.Read(root)
	if err != nil {
		return nil, err
	}
	v, err := x.decoder.Decode(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRootManifestInvalid.Error()), "entry", root.Name)
	}
	dict, ok := v.(map[string]any)
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrRootManifestInvalid, "entry", root.Name), "type", fmt.Sprintf("%T", v))
	}
	return dict, nil
}

// isMergeable reports whether any raw library descriptor, valid or not,
// declares MergeableMetadata as true.
func isMergeable(root map[string]any) bool {
	descriptors, _ := root[keyAvailableLibraries].([]any)
	for _, d := range descriptors {
		dict, ok := d.(map[string]any)
		if !ok {
			continue
		}
		if v, ok := dict[keyMergeable].(bool); ok && v {
			return true
		}
	}
	return false
}

// builtForDistribution prefers a boolean DTSDKBuild and otherwise
// reports whether the archive ships any Swift interface.
func (x *extraction) builtForDistribution(root map[string]any) bool {
	if v, ok := root[keySDKBuild].(bool); ok {
		return v
	}
	_, ok := x.archive.FindFirst(domain.ResourceQuery{Suffix: interfaceSuffix})
	return ok
}

// descriptor parses one AvailableLibraries element and records a diagnostic when it is dropped.
func (x *extraction) descriptor(index int, raw any) (domain.LibraryInfo, bool) {
	outcome := parseDescriptor(raw)
	lib, ok := outcome.Value()
	if ok {
		return lib, true
	}

	scope := fmt.Sprintf("%s[%d]", keyAvailableLibraries, index)
	if dict, isDict := raw.(map[string]any); isDict {
		if id, hasID := dict[keyIdentifier].(string); hasID && id != "" {
			scope = id
		}
	}
	x.skip(scope, outcome.Reason())
	return domain.LibraryInfo{}, false
}

// parseDescriptor turns a raw library descriptor into a LibraryInfo holding
// only the manifest fields. Per-library resources are filled in by assemble.
func parseDescriptor(raw any) domain.Outcome[domain.LibraryInfo] {
	dict, ok := raw.(map[string]any)
	if !ok {
		return domain.Skipped[domain.LibraryInfo](fmt.Sprintf("library descriptor is a %T, not a dictionary", raw))
	}

	var lib domain.LibraryInfo
	required := []struct {
		key string
		dst *string
	}{
		{keyBinaryPath, &lib.BinaryPath},
		{keyIdentifier, &lib.LibraryIdentifier},
		{keyLibraryPath, &lib.LibraryPath},
		{keyPlatform, &lib.SupportedPlatform},
	}
	for _, field := range required {
		v, ok := dict[field.key].(string)
		if !ok {
			return domain.Skipped[domain.LibraryInfo]("missing " + field.key)
		}
		*field.dst = v
	}

	archs, ok := dict[keyArchitectures].([]any)
	if !ok {
		return domain.Skipped[domain.LibraryInfo]("missing " + keyArchitectures)
	}
	lib.SupportedArchitectures = stringList(archs)
	if len(lib.SupportedArchitectures) == 0 {
		return domain.Skipped[domain.LibraryInfo](keyArchitectures + " is empty")
	}

	lib.MergeableMetadata = boolField(dict, keyMergeable)
	lib.SupportedPlatformVariant = stringField(dict, keyPlatformVariant)
	lib.MinimumOSVersion = stringField(dict, keyMinimumOS)

	return domain.Included(lib)
}

func stringField(dict map[string]any, key string) *string {
	if v, ok := dict[key].(string); ok {
		return &v
	}
	return nil
}

func boolField(dict map[string]any, key string) *bool {
	if v, ok := dict[key].(bool); ok {
		return &v
	}
	return nil
}

// stringList keeps the string elements of a raw array, in order.
func stringList(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
