package ledger

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ScheduleFlush registers a job retrying failed snapshot saves on the given cron spec.
//
// The job is a no-op while the ledger is clean.
func (lg *Ledger) ScheduleFlush(ctx context.Context, c *cron.Cron, spec string) (cron.EntryID, error) {
	l := zerolog.Ctx(ctx)

	return c.AddFunc(spec, func() {
		if !lg.Dirty() {
			return
		}

		if err := lg.Flush(ctx); err != nil {
			l.Warn().Err(err).Msg("snapshot retry failed")
			return
		}

		l.Info().Msg("snapshot retry succeeded")
	})
}
