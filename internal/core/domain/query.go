package domain

import "strings"

// ResourceQuery selects archive entries by name.
//
// Suffix is matched against the entry name with a leading slash, so "/Info.plist"
// selects files named exactly Info.plist while ".swiftinterface" selects by extension.
// Scope, when set, must appear in the entry path as whole path segments:
// "ios-arm64" matches "X.xcframework/ios-arm64/..." but not ".../ios-arm64_x86_64-simulator/...".
type ResourceQuery struct {
	Scope  string
	Suffix string
}

// Matches reports whether an entry name satisfies the query. Directory entries never match.
func (q ResourceQuery) Matches(name string) bool {
	if name == "" || strings.HasSuffix(name, "/") {
		return false
	}
	rooted := "/" + name
	if !strings.HasSuffix(rooted, q.Suffix) {
		return false
	}
	scope := strings.Trim(q.Scope, "/")
	if scope == "" {
		return true
	}
	return strings.Contains(rooted+"/", "/"+scope+"/")
}

// PathDepth returns the number of directories above an entry.
func PathDepth(name string) int {
	return strings.Count(strings.TrimSuffix(name, "/"), "/")
}
