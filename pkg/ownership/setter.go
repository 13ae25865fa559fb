package ownership

import (
	"os"
	"strings"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options contains configuration for a Setter
type Options struct {
	// Platform defaults to the host implementation
	Platform Platform
	FS       afero.Fs
	Logger   *zerolog.Logger
}

// Setter changes ownership of directory trees
type Setter struct {
	platform Platform
	fs       afero.Fs
	logger   zerolog.Logger
}

// NewSetter creates a new Setter
func NewSetter(opts Options) *Setter {
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	platform := opts.Platform
	if platform == nil {
		platform = NewPlatform(fs)
	}

	logger := logging.GetLogger("ownership")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Setter{platform: platform, fs: fs, logger: logger}
}

// TakeOwnership makes principal the owner of directory and grants it full
// rights inherited by every child container and object. The descriptor is
// written once; a failure leaves the previous owner in place.
func (s *Setter) TakeOwnership(directory, principal string) error {
	if strings.TrimSpace(directory) == "" {
		return errors.New(errors.ErrInvalidInput, "directory is required")
	}
	if strings.TrimSpace(principal) == "" {
		return errors.New(errors.ErrInvalidInput, "principal is required")
	}

	logger := s.logger.With().
		Str("directory", directory).
		Str("principal", principal).
		Logger()
	done := logging.LogOperationStart(logger, "take-ownership")
	defer done()

	info, err := s.fs.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrAccessControl, "directory %s does not exist", directory).
				WithDetail("directory", directory)
		}
		return errors.Wrapf(err, errors.ErrAccessControl, "failed to read %s", directory).
			WithDetail("directory", directory)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a directory", directory)
	}

	grant := NewGrant(directory, principal)
	logger.Debug().
		Str("rights", grant.Rights.String()).
		Str("inheritance", grant.Inheritance.String()).
		Msg("Applying ownership grant")

	if err := s.platform.Apply(grant); err != nil {
		logger.Error().Err(err).Msg("Failed to take ownership")
		return errors.Wrapf(err, errors.ErrAccessControl, "failed to take ownership of %s", directory).
			WithDetail("directory", directory).
			WithDetail("principal", principal)
	}

	logger.Info().Msg("Ownership taken")
	return nil
}

// Inspect reports the owner and access entries of path
func (s *Setter) Inspect(path string) (Report, error) {
	if strings.TrimSpace(path) == "" {
		return Report{}, errors.New(errors.ErrInvalidInput, "path is required")
	}

	if _, err := s.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Report{Path: path}, nil
		}
		return Report{}, errors.Wrapf(err, errors.ErrAccessControl, "failed to read %s", path)
	}

	report, err := s.platform.Inspect(path)
	if err != nil {
		return Report{}, errors.Wrapf(err, errors.ErrAccessControl, "failed to inspect %s", path)
	}
	return report, nil
}
