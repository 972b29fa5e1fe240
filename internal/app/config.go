package app

import (
	"github.com/lumenlearn/lumen-backend/internal/platform/envutil"
	"github.com/lumenlearn/lumen-backend/internal/scheduler"
)

type Config struct {
	Scheduler scheduler.Config
	ChunkSize int
}

func LoadConfig() Config {
	cfg := scheduler.DefaultConfig()
	cfg.MasteryThreshold = envutil.Float("SCHED_MASTERY_THRESHOLD", cfg.MasteryThreshold)
	cfg.HeadSliceFactor = envutil.Int("SCHED_HEAD_SLICE_FACTOR", cfg.HeadSliceFactor)
	cfg.BlendRatio = envutil.Float("SCHED_BLEND_RATIO", cfg.BlendRatio)

	return Config{
		Scheduler: cfg,
		ChunkSize: envutil.Int("SCHED_CHUNK_SIZE", 500),
	}
}
