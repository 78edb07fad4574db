package helpers

import (
	"time"

	"github.com/yigit/academies/internal/pkg/logger"
)

// ParseDuration parses a duration setting, returning defaultDuration when it is malformed.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		logger.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
