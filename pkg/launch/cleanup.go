package launch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// RemoveImages deletes every entry of dir whose name contains marker.
// The match is a case-sensitive substring test so "shot.bmp.old" is removed while
// "shot.BMP" isn't. Subdirectories aren't searched; a directory that matches is
// reported as an error instead of being removed.
func RemoveImages(ctx context.Context, dir, marker string, dryRun bool) ([]string, error) {
	if marker == "" {
		return nil, eris.New("refusing to clean with an empty marker")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to list %s", dir)
	}

	removed := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.Contains(name, marker) {
			continue
		}

		path := filepath.Join(dir, name)
		if entry.IsDir() {
			return removed, eris.Errorf("%s is a directory", path)
		}

		log(ctx).Debug().
			Str("step", StepCleanup.String()).
			Str("path", path).
			Bool("dry", dryRun).
			Msgf("Removing %s", path)

		if !dryRun {
			if err := os.Remove(path); err != nil {
				return removed, eris.Wrapf(err, "Could not delete %s", path)
			}
		}

		removed = append(removed, name)
	}

	log(ctx).Info().
		Str("step", StepCleanup.String()).
		Msgf("Removed %d file(s) matching %s", len(removed), marker)

	return removed, nil
}
