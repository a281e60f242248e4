package encoder

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/ui/style"
	"go.trai.ch/zerr"
)

const labelWidth = 20

// TextEncoder writes a human-readable summary of each report.
type TextEncoder struct{}

// Encode implements ports.ReportEncoder.
func (TextEncoder) Encode(w io.Writer, docs []domain.AnnotatedInfo) error {
	p := style.NewPalette(lipgloss.NewRenderer(w), labelWidth)

	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeFramework(&sb, p, doc)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportEncodeFailed.Error()), "format", "text")
	}
	return nil
}

func writeFramework(sb *strings.Builder, p style.Palette, doc domain.AnnotatedInfo) {
	title := deref(doc.FrameworkName, "(unnamed framework)")
	if doc.FrameworkVersion != nil {
		title += " " + *doc.FrameworkVersion
	}
	sb.WriteString(p.Title.Render(title) + "\n")

	row(sb, p, "  ", "mergeable", yesNo(p, doc.IsMergeable))
	row(sb, p, "  ", "library evolution", yesNo(p, doc.LibraryEvolutionEnabled))
	row(sb, p, "  ", "distribution build", yesNo(p, doc.BuiltForDistribution))
	if doc.SwiftVersion != nil {
		row(sb, p, "  ", "swift version", *doc.SwiftVersion)
	}
	if doc.SwiftCompilerVersion != nil {
		row(sb, p, "  ", "compiler", *doc.SwiftCompilerVersion)
	}

	if doc.AvailableLibraries == nil {
		row(sb, p, "  ", "libraries", p.Caution.Render("not declared"))
	} else {
		row(sb, p, "  ", "libraries", fmt.Sprintf("%d", len(doc.AvailableLibraries)))
	}

	for i, lib := range doc.AvailableLibraries {
		writeLibrary(sb, p, lib, i == 0)
	}

	for _, d := range doc.Diagnostics {
		sb.WriteString(p.Caution.Render(fmt.Sprintf("  %s %s: %s", style.Warning, d.Scope, d.Reason)) + "\n")
	}
}

func writeLibrary(sb *strings.Builder, p style.Palette, lib domain.LibraryInfo, first bool) {
	icon := style.Circle
	if first {
		icon = style.Dot
	}

	platform := lib.SupportedPlatform
	if lib.SupportedPlatformVariant != nil {
		platform += "-" + *lib.SupportedPlatformVariant
	}
	fmt.Fprintf(sb, "  %s %s (%s; %s)\n", icon, lib.LibraryIdentifier, platform,
		strings.Join(lib.SupportedArchitectures, ", "))

	const indent = "      "
	row(sb, p, indent, "binary", lib.BinaryPath)
	if lib.MarketingVersion != nil {
		row(sb, p, indent, "version", *lib.MarketingVersion)
	}
	if lib.MinimumOSVersion != nil {
		row(sb, p, indent, "minimum os", *lib.MinimumOSVersion)
	}
	if lib.MergeableMetadata != nil {
		row(sb, p, indent, "mergeable metadata", yesNo(p, *lib.MergeableMetadata))
	}
	row(sb, p, indent, "size", deref(lib.Size, "unknown"))
	if len(lib.Dependencies) > 0 {
		row(sb, p, indent, "dependencies", strings.Join(lib.Dependencies, ", "))
	}
	row(sb, p, indent, "privacy manifest", privacySummary(p, lib.PrivacyInfo))
}

func privacySummary(p style.Palette, info *domain.PrivacyInfo) string {
	if info == nil || !info.Present {
		return p.Caution.Render("absent")
	}

	parts := []string{p.Good.Render("present")}
	if info.Tracking != nil && *info.Tracking {
		parts = append(parts, p.Bad.Render("tracking"))
	}
	if n := len(info.TrackingDomains); n > 0 {
		parts = append(parts, fmt.Sprintf("%d tracking domains", n))
	}
	if n := len(info.CollectedDataTypes); n > 0 {
		parts = append(parts, fmt.Sprintf("%d collected data types", n))
	}
	if n := len(info.AccessedAPITypes); n > 0 {
		parts = append(parts, fmt.Sprintf("%d accessed API types", n))
	}
	return strings.Join(parts, ", ")
}

func row(sb *strings.Builder, p style.Palette, indent, label, value string) {
	sb.WriteString(indent + p.Label.Render(label) + value + "\n")
}

func yesNo(p style.Palette, v bool) string {
	if v {
		return p.Good.Render(style.Check + " yes")
	}
	return p.Label.UnsetWidth().Render("no")
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
