package assessment

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// Score sources reported in API responses.
const (
	ScoreSourceModel         = "model"
	ScoreSourceDeterministic = "deterministic"
)

// Assessor runs the full submission pipeline: normalize the raw answers,
// compute the deterministic score, then opportunistically overlay a model
// prediction. Apart from the persisted model state it is stateless between
// calls.
type Assessor struct {
	trainer *Trainer
}

// NewAssessor creates an assessor backed by a model store under dataDir and
// the shared training corpus.
func NewAssessor(dataDir string, corpus CorpusSource) *Assessor {
	return &Assessor{
		trainer: NewTrainer(NewModelStore(dataDir), corpus),
	}
}

// Trainer exposes the underlying model trainer for explicit retrains.
func (a *Assessor) Trainer() *Trainer {
	return a.trainer
}

// BuildRecord turns a raw submission into a scored response record. Platform
// flows go through the per-platform answer tables; everything else uses the
// direct numeric metrics. This never fails: malformed input degrades to
// neutral defaults.
func (a *Assessor) BuildRecord(userID string, req *types.AssessRequest) *types.ResponseRecord {
	platform := types.ParsePlatform(req.Platform)

	var metrics types.CanonicalMetrics
	if platform.IsKnown() && len(req.Answers) > 0 {
		metrics = NormalizeAnswers(platform, req.Answers)
	} else {
		metrics = NormalizeGeneral(req.Mood, req.Sleep, req.Stress, req.Anxiety)
	}

	record := &types.ResponseRecord{
		ID:            uuid.New().String(),
		UserID:        userID,
		Timestamp:     time.Now().UTC(),
		Platform:      platform,
		Mood:          metrics.Mood,
		Sleep:         metrics.Sleep,
		Stress:        metrics.Stress,
		Anxiety:       metrics.Anxiety,
		PlatformTime:  req.PlatformTime,
		ContentImpact: ParseContentImpact(req.ContentImpact),
		Notes:         req.Notes,
	}
	record.DeterministicScore = ScoreRecord(record)

	return record
}

// Assess fills in the model score when a fitted model is available. Model
// unavailability is expected early on (small corpus) and silently falls back
// to the deterministic score; real failures are logged but never surfaced.
func (a *Assessor) Assess(record *types.ResponseRecord) (score int, source string) {
	predicted, err := a.trainer.Predict(record)
	if err != nil {
		if !errors.Is(err, ErrModelUnavailable) {
			slog.Warn("Model prediction failed, using deterministic score",
				"record_id", record.ID,
				"error", err)
		}
		return record.DeterministicScore, ScoreSourceDeterministic
	}

	record.ModelScore = &predicted
	return predicted, ScoreSourceModel
}
