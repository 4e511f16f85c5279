// Package history connects finished shooter sessions to the run database
// and turns session events into log lines. Both frontends and the headless
// simulator share it.
package history

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// Recorder logs events and stores completed runs for one player.
type Recorder struct {
	Store  *storage.Store // optional
	Logger *log.Logger
	Player string
}

// NewRecorder creates a recorder. A nil logger uses log.Default().
func NewRecorder(store *storage.Store, logger *log.Logger, player string) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{Store: store, Logger: logger, Player: player}
}

// LogEvents writes session events to the log at debug level.
func (r *Recorder) LogEvents(events []shooter.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case shooter.RunStartedEvent:
			r.Logger.Debug("run started")
		case shooter.WaveStartedEvent:
			r.Logger.Debug("wave started", "level", e.Level, "enemies", e.Length)
		case shooter.EnemyDestroyedEvent:
			r.Logger.Debug("enemy destroyed", "variant", e.Variant, "kills", e.Kills)
		case shooter.PlayerHitEvent:
			r.Logger.Debug("player hit", "source", e.Source, "health", e.Health)
		case shooter.EnemyEscapedEvent:
			r.Logger.Debug("enemy escaped", "variant", e.Variant, "lives", e.Lives)
		case shooter.GameLostEvent:
			r.Logger.Debug("game lost", "reason", e.Reason, "level", e.Level, "kills", e.Kills)
		case shooter.RunEndedEvent:
			r.Logger.Debug("run ended", "completed", e.Completed, "level", e.Result.Level, "ticks", e.Result.Ticks)
		case shooter.PausedEvent:
			r.Logger.Debug("pause toggled", "paused", e.Paused)
		}
	}
}

// Record converts a run result into a storage record for the player.
func (r *Recorder) Record(res shooter.RunResult) storage.RunRecord {
	return storage.RunRecord{
		Player: r.Player,
		Level:  res.Level,
		Kills:  res.Kills,
		Ticks:  int64(res.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		Reason: res.Reason.String(),
	}
}

// Save stores a finished run. Storage problems are logged, never fatal.
// It returns the new row id, or 0 when nothing was stored.
func (r *Recorder) Save(res shooter.RunResult) int64 {
	r.Logger.Info("run finished", "player", r.Player, "level", res.Level, "kills", res.Kills, "reason", res.Reason)
	if r.Store == nil {
		return 0
	}
	id, err := r.Store.SaveRun(r.Record(res))
	if err != nil {
		r.Logger.Warn("could not save run", "error", err)
		return 0
	}
	return id
}

// Finish handles a terminated session: a completed run is saved. It
// reports whether the run completed, which is when a frontend starts over
// rather than exiting.
func (r *Recorder) Finish(s *shooter.Session) bool {
	res, completed := s.Result()
	if completed {
		r.Save(res)
	}
	return completed
}
