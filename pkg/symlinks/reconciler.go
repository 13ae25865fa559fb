package symlinks

import (
	"context"
	"strings"

	"github.com/arthur-debert/linkfix/pkg/config"
	"github.com/arthur-debert/linkfix/pkg/cygpath"
	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/executor"
	"github.com/arthur-debert/linkfix/pkg/filesystem"
	"github.com/arthur-debert/linkfix/pkg/logging"
	"github.com/rs/zerolog"
)

// Options contains configuration for the reconciler
type Options struct {
	Executor   executor.CommandExecutor
	Translator *cygpath.Translator
	Linker     filesystem.Linker

	// Shell is the emulation layer's POSIX shell, run as Shell ShellArgs -c <pipeline>
	Shell     string
	ShellArgs []string

	Marker    string
	Discovery string
	DryRun    bool

	// Logger defaults to the package's component logger when nil
	Logger *zerolog.Logger
}

// Reconciler repairs emulation-layer symlinks under a directory tree.
// It holds no state between calls; concurrent passes over overlapping
// trees must be serialized by the caller.
type Reconciler struct {
	exec       executor.CommandExecutor
	translator *cygpath.Translator
	linker     filesystem.Linker
	shell      string
	shellArgs  []string
	marker     string
	discovery  string
	dryRun     bool
	logger     zerolog.Logger
}

// New creates a new reconciler
func New(opts Options) *Reconciler {
	logger := logging.GetLogger("symlinks")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	discovery := opts.Discovery
	if discovery == "" {
		discovery = config.DiscoveryTwoStream
	}

	return &Reconciler{
		exec:       opts.Executor,
		translator: opts.Translator,
		linker:     opts.Linker,
		shell:      opts.Shell,
		shellArgs:  opts.ShellArgs,
		marker:     marker,
		discovery:  discovery,
		dryRun:     opts.DryRun,
		logger:     logger,
	}
}

// NewFromConfig wires a reconciler from configuration
func NewFromConfig(cfg *config.Config, exec executor.CommandExecutor, dryRun bool) *Reconciler {
	return New(Options{
		Executor:   exec,
		Translator: cygpath.New(exec, cfg.TranslatorPath(), cfg.Emulation.NativeFlag),
		Linker:     filesystem.NewLinker(filesystem.Options{Staged: cfg.Symlinks.StagedReplace}),
		Shell:      cfg.ShellPath(),
		ShellArgs:  cfg.Emulation.ShellArgs,
		Marker:     cfg.Symlinks.Marker,
		Discovery:  cfg.Symlinks.Discovery,
		DryRun:     dryRun,
	})
}

// FixSymlinks discovers every link under directory and recreates, as a
// native directory link, each one whose translated path differs from its
// translated target. Nothing is modified if discovery or pairing fails.
// A relink failure stops the pass; the returned Result lists what was
// already relinked.
func (r *Reconciler) FixSymlinks(ctx context.Context, directory string) (*Result, error) {
	if strings.TrimSpace(directory) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "directory is required")
	}

	logger := r.logger.With().Str("directory", directory).Logger()
	done := logging.LogOperationStart(logger, "fix-symlinks")
	defer done()

	emulationDir, err := r.translator.ToEmulation(ctx, directory)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Directory:    directory,
		EmulationDir: emulationDir,
		Discovery:    r.discovery,
		DryRun:       r.dryRun,
	}

	switch r.discovery {
	case config.DiscoverySinglePass:
		result.Records, err = r.discoverTuples(ctx, emulationDir)
	default:
		result.Records, err = r.discoverStreams(ctx, directory, emulationDir)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("emulationDir", emulationDir).
		Int("links", len(result.Records)).
		Msg("Discovered symlinks")

	for _, rec := range result.Records {
		if !rec.NeedsRelink() {
			// translator left it alone: already native, or a junction
			logger.Debug().Str("symlink", rec.Symlink).Msg("Symlink already native, skipping")
			result.Skipped = append(result.Skipped, rec)
			continue
		}

		if r.dryRun {
			logger.Info().
				Str("symlink", rec.Symlink).
				Str("target", rec.Target).
				Msg("Dry run - symlink would be fixed")
			continue
		}

		logger.Info().
			Str("symlink", rec.Symlink).
			Str("target", rec.Target).
			Msg("Fixing symlink")

		if err := r.linker.Replace(rec.Symlink, rec.Target); err != nil {
			logger.Error().
				Err(err).
				Str("symlink", rec.Symlink).
				Str("target", rec.Target).
				Msg("Failed to fix symlink")
			if !errors.IsErrorCode(err, errors.ErrRelink) {
				err = errors.Wrapf(err, errors.ErrRelink, "failed to relink %s", rec.Symlink)
			}
			return result, err
		}
		result.Relinked = append(result.Relinked, rec)
	}

	return result, nil
}

func (r *Reconciler) discoverStreams(ctx context.Context, directory, emulationDir string) ([]Record, error) {
	translator := shellTranslator(r.translator.Binary())
	flag := r.translator.NativeFlag()

	symlinkList, err := r.runPipeline(ctx, symlinkStreamCommand(emulationDir, translator, flag, r.marker))
	if err != nil {
		return nil, err
	}
	targetList, err := r.runPipeline(ctx, targetStreamCommand(emulationDir, translator, flag))
	if err != nil {
		return nil, err
	}

	records, err := Pair(symlinkList, targetList, r.marker)
	if err != nil {
		r.logger.Error().
			Str("directory", directory).
			Str("symlinks", strings.Join(symlinkList, ";")).
			Str("targets", strings.Join(targetList, ";")).
			Msg("Symlink count doesn't match target count")
		if linkErr, ok := err.(*errors.LinkfixError); ok {
			linkErr.WithDetail("directory", directory)
		}
		return nil, err
	}
	return records, nil
}

func (r *Reconciler) discoverTuples(ctx context.Context, emulationDir string) ([]Record, error) {
	translator := shellTranslator(r.translator.Binary())
	lines, err := r.runPipeline(ctx, tupleCommand(emulationDir, translator, r.translator.NativeFlag(), r.marker))
	if err != nil {
		return nil, err
	}
	return ParseTuples(lines, r.marker)
}

// runPipeline runs command in the emulation shell and returns its
// non-empty output lines
func (r *Reconciler) runPipeline(ctx context.Context, command string) ([]string, error) {
	args := append(append([]string(nil), r.shellArgs...), "-c", command)
	res, err := r.exec.Run(ctx, r.shell, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTranslation, "discovery pipeline failed").
			WithDetail("command", command)
	}
	return splitLines(res.Stdout), nil
}
