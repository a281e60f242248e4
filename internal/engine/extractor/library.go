package extractor

import (
	"go.trai.ch/xcinfo/internal/core/domain"
)

// assemble fills in the resources found under one library's subtree.
func (x *extraction) assemble(lib domain.LibraryInfo) (domain.LibraryInfo, error) {
	version, err := x.marketingVersion(lib)
	if err != nil {
		return lib, err
	}
	lib.MarketingVersion = version

	deps, err := x.dependencies(lib)
	if err != nil {
		return lib, err
	}
	lib.Dependencies = deps

	privacy, err := x.privacyInfo(lib)
	if err != nil {
		return lib, err
	}
	lib.PrivacyInfo = privacy

	lib.Size = x.size(lib)
	return lib, nil
}

// marketingVersion reads CFBundleShortVersionString from the library's own Info.plist.
func (x *extraction) marketingVersion(lib domain.LibraryInfo) (*string, error) {
	entry, ok := x.archive.FindFirst(domain.ResourceQuery{Scope: lib.Scope(), Suffix: infoPlistSuffix})
	if !ok {
		return nil, nil
	}
	data, err := x.archive.Read(entry)
	if err != nil {
		return nil, err
	}
	v, err := x.decoder.Decode(data)
	if err != nil {
		x.skip(lib.LibraryIdentifier, "Info.plist could not be decoded")
		return nil, nil
	}
	dict, ok := v.(map[string]any)
	if !ok {
		x.skip(lib.LibraryIdentifier, "Info.plist is not a dictionary")
		return nil, nil
	}
	return stringField(dict, keyShortVersion), nil
}

// size formats the uncompressed length of the library binary. Every slice of a
// framework shares the same BinaryPath, so the lookup is scoped to the identifier.
func (x *extraction) size(lib domain.LibraryInfo) *string {
	entry, ok := x.archive.FindFirst(domain.ResourceQuery{Scope: lib.LibraryIdentifier, Suffix: "/" + lib.BinaryPath})
	if !ok {
		x.skip(lib.LibraryIdentifier, "binary "+lib.BinaryPath+" not found")
		return nil
	}
	s := domain.FormatSize(entry.Size)
	return &s
}
