// SPDX-License-Identifier: MIT

package dissim

import "go.uber.org/zap"

// LogProgress returns a ProgressFunc that logs through logger every `every`
// rows and once more when the pass completes. every <= 0 logs only at the end.
// A nil logger yields a no-op.
func LogProgress(logger *zap.Logger, every int) ProgressFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(done, total int) {
		if done == total || (every > 0 && done%every == 0) {
			logger.Info("pairwise dissimilarities",
				zap.Int("done", done),
				zap.Int("total", total),
			)
		}
	}
}
