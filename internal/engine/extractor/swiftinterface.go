package extractor

import (
	"iter"
	"strings"

	"go.trai.ch/xcinfo/internal/core/domain"
)

const (
	compilerVersionPrefix = "// swift-compiler-version: "
	moduleFlagsPrefix     = "// swift-module-flags: "
	importPrefix          = "import "
	swiftlangMarker       = "swiftlang-"
)

// InterfaceDetails holds what a .swiftinterface header says about the build.
type InterfaceDetails struct {
	CompilerInfo     *string
	CompilerVersion  *string
	ModuleName       *string
	SwiftVersion     *string
	LibraryEvolution bool
}

// ParseInterfaceDetails reads the swift-compiler-version and swift-module-flags
// header lines of an interface file. All other lines are ignored.
func ParseInterfaceDetails(data []byte) InterfaceDetails {
	var d InterfaceDetails
	for line := range lines(data) {
		if rest, ok := strings.CutPrefix(line, compilerVersionPrefix); ok {
			info := rest
			d.CompilerInfo = &info
			for _, tok := range strings.Fields(rest) {
				if !strings.Contains(tok, swiftlangMarker) {
					continue
				}
				_, version, _ := strings.Cut(tok, "-")
				d.CompilerVersion = &version
				break
			}
			continue
		}

		rest, ok := strings.CutPrefix(line, moduleFlagsPrefix)
		if !ok {
			continue
		}
		flags := strings.Fields(rest)
		for i, flag := range flags {
			switch flag {
			case "-module-name":
				if i+1 < len(flags) {
					name := flags[i+1]
					d.ModuleName = &name
				}
			case "-swift-version":
				if i+1 < len(flags) {
					version := flags[i+1]
					d.SwiftVersion = &version
				}
			case "-enable-library-evolution":
				d.LibraryEvolution = true
			}
		}
	}
	return d
}

// ParseImports returns the module named by each "import" line, in file order.
func ParseImports(data []byte) []string {
	var out []string
	for line := range lines(data) {
		if !strings.HasPrefix(line, importPrefix) {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 1 {
			out = append(out, fields[1])
		}
	}
	return out
}

func lines(data []byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(string(data)) {
			if !yield(strings.TrimRight(line, "\r\n")) {
				return
			}
		}
	}
}

// apply copies the parsed values over the manifest-derived fields.
// The interface's module name takes precedence over CFBundleName.
func (d InterfaceDetails) apply(info *domain.FrameworkInfo) {
	if d.CompilerInfo != nil {
		info.SwiftCompilerInfo = d.CompilerInfo
	}
	if d.CompilerVersion != nil {
		info.SwiftCompilerVersion = d.CompilerVersion
	}
	if d.ModuleName != nil {
		info.FrameworkName = d.ModuleName
	}
	if d.SwiftVersion != nil {
		info.SwiftVersion = d.SwiftVersion
	}
	if d.LibraryEvolution {
		info.LibraryEvolutionEnabled = true
	}
}

// interfaceDetails parses the first interface file in the archive, if any.
func (x *extraction) interfaceDetails() (InterfaceDetails, bool, error) {
	entry, ok := x.archive.FindFirst(domain.ResourceQuery{Suffix: interfaceSuffix})
	if !ok {
		return InterfaceDetails{}, false, nil
	}
	data, err := x.archive.Read(entry)
	if err != nil {
		return InterfaceDetails{}, false, err
	}
	return ParseInterfaceDetails(data), true, nil
}

// dependencies collects the imports of every interface file under the library's Modules directory.
func (x *extraction) dependencies(lib domain.LibraryInfo) ([]string, error) {
	var all []string
	for _, e := range x.archive.FindAll(domain.ResourceQuery{Scope: lib.Scope() + "/" + modulesDir, Suffix: interfaceSuffix}) {
		data, err := x.archive.Read(e)
		if err != nil {
			return nil, err
		}
		all = append(all, ParseImports(data)...)
	}
	return domain.UniqueOrdered(all), nil
}
