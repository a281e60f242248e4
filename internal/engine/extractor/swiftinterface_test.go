package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xcinfo/internal/engine/extractor"
)

func TestParseInterfaceDetails(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  extractor.InterfaceDetails
	}{
		{
			name:  "empty",
			input: "",
			want:  extractor.InterfaceDetails{},
		},
		{
			name:  "compiler version",
			input: "// swift-compiler-version: Apple Swift version 6.0 effective-5.10 (swiftlang-6.0.0.9.10 clang-1600.0.26.2)\n",
			want: extractor.InterfaceDetails{
				CompilerInfo:    ptr("Apple Swift version 6.0 effective-5.10 (swiftlang-6.0.0.9.10 clang-1600.0.26.2)"),
				CompilerVersion: ptr("6.0.0.9.10"),
			},
		},
		{
			name:  "compiler without swiftlang token",
			input: "// swift-compiler-version: Swift version 5.9-dev\n",
			want: extractor.InterfaceDetails{
				CompilerInfo: ptr("Swift version 5.9-dev"),
			},
		},
		{
			name:  "evolution flag first",
			input: "// swift-module-flags: -enable-library-evolution -module-name Kit\n",
			want: extractor.InterfaceDetails{
				ModuleName:       ptr("Kit"),
				LibraryEvolution: true,
			},
		},
		{
			name:  "evolution flag last",
			input: "// swift-module-flags: -swift-version 5 -module-name Kit -enable-library-evolution\n",
			want: extractor.InterfaceDetails{
				ModuleName:       ptr("Kit"),
				SwiftVersion:     ptr("5"),
				LibraryEvolution: true,
			},
		},
		{
			name:  "dangling flag value",
			input: "// swift-module-flags: -O -module-name\n",
			want:  extractor.InterfaceDetails{},
		},
		{
			name:  "crlf line endings",
			input: "// swift-module-flags: -swift-version 6\r\nimport Foundation\r\n",
			want: extractor.InterfaceDetails{
				SwiftVersion: ptr("6"),
			},
		},
		{
			name:  "prefix must start the line",
			input: "  // swift-module-flags: -module-name Kit\n/* // swift-compiler-version: x */\n",
			want:  extractor.InterfaceDetails{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.ParseInterfaceDetails([]byte(tt.input)))
		})
	}
}

func TestParseImports(t *testing.T) {
	input := `// swift-module-flags: -module-name Kit
import Foundation
import UIKit
@_exported import Combine
import Foundation
import
importSomething
import Darwin.C
`

	assert.Equal(t,
		[]string{"Foundation", "UIKit", "Foundation", "Darwin.C"},
		extractor.ParseImports([]byte(input)),
	)
	assert.Empty(t, extractor.ParseImports(nil))
}
