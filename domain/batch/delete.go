package batch

import (
	"log/slog"

	"github.com/soocke/landmark-editor/domain/annotation"
)

// DeleteAll removes every image and its sibling files. It never stops early;
// the returned errors are *annotation.DeleteError values, in input order.
func DeleteAll(imgs []string, suffixes []string, progress Progress, logger *slog.Logger) []error {
	var errs []error
	for _, img := range imgs {
		failed := annotation.Delete(img, suffixes)
		if logger != nil {
			if len(failed) > 0 {
				logger.Warn("delete incomplete", "image", img, "errors", len(failed))
			} else {
				logger.Info("image deleted", "image", img)
			}
		}
		errs = append(errs, failed...)
		if progress != nil {
			_ = progress.Add(1)
		}
	}
	return errs
}
