// Package extractor assembles framework reports from the contents of a bundle archive.
package extractor

import (
	"context"

	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	keyAvailableLibraries = "AvailableLibraries"

	infoPlistSuffix       = "/Info.plist"
	privacyManifestSuffix = "/PrivacyInfo.xcprivacy"
	interfaceSuffix       = ".swiftinterface"
	modulesDir            = "Modules"
)

var _ ports.ReportBuilder = (*Builder)(nil)

// Builder runs the extraction pipeline for one archive at a time.
type Builder struct {
	opener  ports.ArchiveOpener
	decoder ports.PropertyListDecoder
	tracer  ports.Tracer
}

// NewBuilder creates a new Builder.
func NewBuilder(opener ports.ArchiveOpener, decoder ports.PropertyListDecoder, tracer ports.Tracer) *Builder {
	return &Builder{
		opener:  opener,
		decoder: decoder,
		tracer:  tracer,
	}
}

// Build inspects the archive at path and returns its report.
// It fails when the archive cannot be read, when it has no root Info.plist
// or when a library ships a privacy manifest that is not a dictionary.
// Everything else that cannot be parsed is dropped and recorded as a diagnostic.
func (b *Builder) Build(ctx context.Context, path string) (*domain.Report, error) {
	ctx, span := b.tracer.Start(ctx, "inspect", ports.WithAttribute("archive", path))
	defer span.End()

	archive, err := b.opener.Open(path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer func() {
		_ = archive.Close()
	}()
	span.SetAttribute("entries", len(archive.Entries()))

	x := &extraction{archive: archive, decoder: b.decoder}
	info, err := b.extract(ctx, x)
	if err != nil {
		err = zerr.With(err, "archive", path)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("diagnostics", len(x.diagnostics))

	return &domain.Report{
		Archive:     domain.ArchiveRef{Path: path},
		Info:        info,
		Diagnostics: x.diagnostics,
	}, nil
}

func (b *Builder) extract(ctx context.Context, x *extraction) (domain.FrameworkInfo, error) {
	var info domain.FrameworkInfo

	var root map[string]any
	err := b.stage(ctx, "root_manifest", func(_ ports.Span) error {
		var err error
		root, err = x.rootManifest()
		return err
	})
	if err != nil {
		return info, err
	}

	info.FrameworkName = stringField(root, keyBundleName)
	info.FrameworkVersion = stringField(root, keyShortVersion)
	info.IsMergeable = isMergeable(root)

	err = b.stage(ctx, "swift_interface", func(span ports.Span) error {
		details, found, err := x.interfaceDetails()
		if err != nil || !found {
			return err
		}
		details.apply(&info)
		span.SetAttribute("library_evolution", details.LibraryEvolution)
		return nil
	})
	if err != nil {
		return info, err
	}

	info.BuiltForDistribution = x.builtForDistribution(root)

	raw, declared := root[keyAvailableLibraries]
	if !declared {
		return info, nil
	}
	descriptors, ok := raw.([]any)
	if !ok {
		x.skip(keyAvailableLibraries, "not an array")
		return info, nil
	}

	libraries := make(domain.List[domain.LibraryInfo], 0, len(descriptors))
	for i, d := range descriptors {
		lib, ok := x.descriptor(i, d)
		if !ok {
			continue
		}
		err := b.stage(ctx, "library", func(_ ports.Span) error {
			var err error
			lib, err = x.assemble(lib)
			return err
		}, ports.WithAttribute("library", lib.LibraryIdentifier))
		if err != nil {
			return info, zerr.With(err, "library", lib.LibraryIdentifier)
		}
		libraries = append(libraries, lib)
	}
	info.AvailableLibraries = libraries

	return info, nil
}

func (b *Builder) stage(ctx context.Context, name string, fn func(ports.Span) error, opts ...ports.SpanOption) error {
	_, span := b.tracer.Start(ctx, name, opts...)
	defer span.End()

	if err := fn(span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// extraction holds the state of one Build call.
type extraction struct {
	archive     ports.Archive
	decoder     ports.PropertyListDecoder
	diagnostics []domain.Diagnostic
}

func (x *extraction) skip(scope, reason string) {
	x.diagnostics = append(x.diagnostics, domain.Diagnostic{Scope: scope, Reason: reason})
}
