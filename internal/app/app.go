// Package app implements the application layer for xcinfo.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      ports.ReportBuilder
	digester     ports.Digester
	cache        ports.ReportCache
	history      ports.History
	encoders     ports.EncoderFactory
	logger       ports.Logger
	stdout       io.Writer
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder ports.ReportBuilder,
	digester ports.Digester,
	cache ports.ReportCache,
	history ports.History,
	encoders ports.EncoderFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		digester:     digester,
		cache:        cache,
		history:      history,
		encoders:     encoders,
		logger:       log,
		stdout:       os.Stdout,
		now:          time.Now,
	}
}

// WithStdout redirects report output. It is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithClock replaces the clock used to stamp reports. It is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// InspectOptions configures Inspect.
type InspectOptions struct {
	// Format overrides the configured output format when set.
	Format string
	// Output is the report file. Reports go to stdout when empty.
	Output string
	// NoCache bypasses the report cache for reads and writes.
	NoCache bool
	// Diagnostics embeds skipped-record diagnostics in the output.
	Diagnostics bool
	// Verbose logs the duration of every extraction stage.
	Verbose bool
	// LogJSON switches log output to JSON.
	LogJSON bool
}

type inspectSettings struct {
	format      domain.OutputFormat
	diagnostics bool
	useCache    bool
	history     bool
	concurrency int
}

// Inspect extracts the metadata of every archive and writes the reports.
// A single archive yields one document, several yield a list in argument order.
func (a *App) Inspect(ctx context.Context, paths []string, opts InspectOptions) error {
	a.logger.SetVerbose(opts.Verbose)
	a.logger.SetJSON(opts.LogJSON)

	if len(paths) == 0 {
		return domain.ErrNoArchivesSpecified
	}

	settings, err := a.settings(opts)
	if err != nil {
		return err
	}

	encoder, err := a.encoders.For(settings.format)
	if err != nil {
		return err
	}

	reports := make([]*domain.Report, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(settings.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			report, err := a.inspectOne(gctx, path, settings.useCache)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	docs := make([]domain.AnnotatedInfo, 0, len(reports))
	for _, r := range reports {
		for _, d := range r.Diagnostics {
			a.logger.Warn(fmt.Sprintf("%s: skipped %s: %s", r.Archive.Path, d.Scope, d.Reason))
		}
		if settings.history {
			a.record(ctx, r)
		}

		doc := domain.AnnotatedInfo{FrameworkInfo: r.Info}
		if settings.diagnostics {
			doc.Diagnostics = r.Diagnostics
		}
		docs = append(docs, doc)
	}

	return a.write(encoder, docs, opts.Output)
}

func (a *App) settings(opts InspectOptions) (inspectSettings, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return inspectSettings{}, zerr.Wrap(err, "failed to load configuration")
	}

	format := cfg.Format
	if opts.Format != "" {
		format, err = domain.ParseOutputFormat(opts.Format)
		if err != nil {
			return inspectSettings{}, zerr.With(err, "format", opts.Format)
		}
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return inspectSettings{
		format:      format,
		diagnostics: cfg.Diagnostics || opts.Diagnostics,
		useCache:    cfg.CacheEnabled && !opts.NoCache,
		history:     cfg.HistoryEnabled,
		concurrency: concurrency,
	}, nil
}

func (a *App) inspectOne(ctx context.Context, path string, useCache bool) (*domain.Report, error) {
	digest, err := a.digester.ComputeFileDigest(path)
	if err != nil {
		// The builder reports unreadable archives with a better error.
		a.logger.Debug(fmt.Sprintf("%s: no digest, cache disabled: %v", path, err))
		digest, useCache = "", false
	}

	if useCache {
		cached, err := a.cache.Get(digest)
		switch {
		case err != nil:
			a.logger.Warn(fmt.Sprintf("%s: ignoring report cache: %v", path, err))
		case cached != nil:
			a.logger.Debug(fmt.Sprintf("%s: cached report %s", path, digest))
			cached.Archive.Path = path
			cached.InspectedAt = a.now().UTC()
			return cached, nil
		}
	}

	report, err := a.builder.Build(ctx, path)
	if err != nil {
		return nil, err
	}
	report.Archive.Digest = digest
	report.InspectedAt = a.now().UTC()

	if useCache {
		if err := a.cache.Put(*report); err != nil {
			a.logger.Warn(fmt.Sprintf("%s: report not cached: %v", path, err))
		}
	}
	return report, nil
}

func (a *App) record(ctx context.Context, r *domain.Report) {
	entry := domain.NewHistoryEntry(r)
	if entry.InspectedAt.IsZero() {
		entry.InspectedAt = a.now().UTC()
	}
	if err := a.history.Record(ctx, entry); err != nil {
		a.logger.Warn(fmt.Sprintf("%s: inspection not recorded: %v", r.Archive.Path, err))
	}
}

func (a *App) write(encoder ports.ReportEncoder, docs []domain.AnnotatedInfo, output string) (err error) {
	if output == "" {
		return encoder.Encode(a.stdout, docs)
	}

	//nolint:gosec // Output path is supplied by the user on purpose
	f, err := os.Create(output)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, domain.ErrOutputWriteFailed.Error()), "path", output)
		}
	}()

	if err := encoder.Encode(f, docs); err != nil {
		return zerr.With(err, "path", output)
	}
	a.logger.Info(fmt.Sprintf("report written to %s", output))
	return nil
}

// History writes the most recent inspections to w, newest first.
func (a *App) History(ctx context.Context, w io.Writer, limit int) error {
	entries, err := a.history.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.logger.Info("no inspections recorded")
		return nil
	}
	_, err = io.WriteString(w, renderHistory(w, entries)+"\n")
	return err
}

// CleanOptions selects what Clean removes.
type CleanOptions struct {
	Cache   bool
	History bool
}

// Clean removes the report cache and the inspection history based on the provided options.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	remove := func(name string, paths ...string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		for _, path := range paths {
			if err := os.RemoveAll(path); err != nil {
				errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
				return
			}
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Cache {
		remove("report cache", domain.DefaultCachePath())
	}

	if options.History {
		if err := a.history.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
		db := domain.DefaultHistoryPath()
		remove("inspection history", db, db+"-wal", db+"-shm")
	}

	return errs
}
