package assessment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

type stubCorpus struct {
	records []*types.ResponseRecord
	err     error
}

func (s *stubCorpus) Corpus() ([]*types.ResponseRecord, error) {
	return s.records, s.err
}

func trainingRecords(n int) []*types.ResponseRecord {
	seed := []*types.ResponseRecord{
		{Mood: 5, Sleep: intPtr(4), Stress: 1, Anxiety: false},
		{Mood: 1, Sleep: intPtr(2), Stress: 5, Anxiety: true},
		{Mood: 3, Sleep: intPtr(3), Stress: 3, Anxiety: false},
		{Mood: 4, Sleep: intPtr(5), Stress: 2, Anxiety: true},
		{Mood: 2, Sleep: intPtr(1), Stress: 4, Anxiety: false},
		{Mood: 5, Sleep: intPtr(5), Stress: 1, Anxiety: true},
		{Mood: 2, Sleep: intPtr(4), Stress: 2, Anxiety: false},
		{Mood: 4, Sleep: intPtr(2), Stress: 3, Anxiety: true},
	}

	records := make([]*types.ResponseRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, seed[i%len(seed)])
	}
	return records
}

func TestFitGating(t *testing.T) {
	t.Run("refuses to fit below the minimum corpus size", func(t *testing.T) {
		trainer := NewTrainer(NewModelStore(t.TempDir()), &stubCorpus{records: trainingRecords(MinTrainingRecords - 1)})

		state, err := trainer.Fit()
		assert.Nil(t, state)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("fits at exactly the minimum corpus size", func(t *testing.T) {
		trainer := NewTrainer(NewModelStore(t.TempDir()), &stubCorpus{records: trainingRecords(MinTrainingRecords)})

		state, err := trainer.Fit()
		require.NoError(t, err)
		assert.Equal(t, MinTrainingRecords, state.SampleCount)
		assert.NotEmpty(t, state.Columns)
		assert.Len(t, state.Weights, len(state.Columns))
	})

	t.Run("failed fit leaves existing state untouched", func(t *testing.T) {
		dir := t.TempDir()
		corpus := &stubCorpus{records: trainingRecords(6)}
		trainer := NewTrainer(NewModelStore(dir), corpus)

		fitted, err := trainer.Fit()
		require.NoError(t, err)

		corpus.records = trainingRecords(2)
		trainer.Invalidate()

		_, err = trainer.Fit()
		assert.ErrorIs(t, err, ErrInsufficientData)

		loaded, err := NewModelStore(dir).Load()
		require.NoError(t, err)
		assert.Equal(t, fitted.TrainedAt.Unix(), loaded.TrainedAt.Unix())
		assert.Equal(t, fitted.SampleCount, loaded.SampleCount)
	})
}

func TestFitPersistsAtomically(t *testing.T) {
	dir := t.TempDir()
	trainer := NewTrainer(NewModelStore(dir), &stubCorpus{records: trainingRecords(6)})

	state, err := trainer.Fit()
	require.NoError(t, err)

	// The artifact is in place and no temp files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "wellbeing_model.json", entries[0].Name())

	loaded, err := NewModelStore(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, state.Columns, loaded.Columns)
	assert.Equal(t, state.SampleCount, loaded.SampleCount)
	assert.InDeltaSlice(t, state.Weights, loaded.Weights, 1e-9)
}

func TestPredictReproducesLinearTargets(t *testing.T) {
	// The deterministic score is exactly linear in the base metrics, so a
	// model fitted on sleep-complete records must reproduce it.
	records := trainingRecords(8)
	trainer := NewTrainer(NewModelStore(t.TempDir()), &stubCorpus{records: records})

	_, err := trainer.Fit()
	require.NoError(t, err)

	for _, r := range records {
		predicted, err := trainer.Predict(r)
		require.NoError(t, err)
		assert.Equal(t, ScoreRecord(r), predicted)
	}

	// Unseen combination of the same columns
	unseen := &types.ResponseRecord{Mood: 3, Sleep: intPtr(5), Stress: 2, Anxiety: true}
	predicted, err := trainer.Predict(unseen)
	require.NoError(t, err)
	assert.Equal(t, ScoreRecord(unseen), predicted)
}

func TestPredictBootstrapsLazily(t *testing.T) {
	dir := t.TempDir()
	trainer := NewTrainer(NewModelStore(dir), &stubCorpus{records: trainingRecords(6)})

	// No explicit Fit: the first predict triggers one
	record := &types.ResponseRecord{Mood: 4, Sleep: intPtr(3), Stress: 2, Anxiety: false}
	predicted, err := trainer.Predict(record)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, predicted, 0)
	assert.LessOrEqual(t, predicted, 100)

	// The bootstrap fit was persisted
	_, err = os.Stat(filepath.Join(dir, "wellbeing_model.json"))
	assert.NoError(t, err)
}

func TestPredictUnavailable(t *testing.T) {
	t.Run("empty corpus", func(t *testing.T) {
		trainer := NewTrainer(NewModelStore(t.TempDir()), &stubCorpus{})

		_, err := trainer.Predict(&types.ResponseRecord{Mood: 3, Stress: 3})
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})

	t.Run("corpus source failure", func(t *testing.T) {
		trainer := NewTrainer(NewModelStore(t.TempDir()), &stubCorpus{err: errors.New("database closed")})

		_, err := trainer.Predict(&types.ResponseRecord{Mood: 3, Stress: 3})
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})
}

func TestPredictUsesPersistedState(t *testing.T) {
	dir := t.TempDir()

	fitTrainer := NewTrainer(NewModelStore(dir), &stubCorpus{records: trainingRecords(6)})
	_, err := fitTrainer.Fit()
	require.NoError(t, err)

	// A fresh trainer with an empty corpus still predicts from disk
	freshTrainer := NewTrainer(NewModelStore(dir), &stubCorpus{})
	record := &types.ResponseRecord{Mood: 5, Sleep: intPtr(4), Stress: 1, Anxiety: false}

	predicted, err := freshTrainer.Predict(record)
	require.NoError(t, err)
	assert.Equal(t, ScoreRecord(record), predicted)
}

func TestStoreLoad(t *testing.T) {
	t.Run("missing artifact returns nil state and nil error", func(t *testing.T) {
		state, err := NewModelStore(t.TempDir()).Load()
		assert.NoError(t, err)
		assert.Nil(t, state)
	})

	t.Run("corrupt artifact returns an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wellbeing_model.json"), []byte("{not json"), 0644))

		_, err := NewModelStore(dir).Load()
		assert.Error(t, err)
	})

	t.Run("inconsistent artifact returns an error", func(t *testing.T) {
		dir := t.TempDir()
		artifact := `{"columns":["mood","stress"],"weights":[1.0],"means":[0,0],"scales":[1,1],"sample_count":5}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wellbeing_model.json"), []byte(artifact), 0644))

		_, err := NewModelStore(dir).Load()
		assert.Error(t, err)
	})
}

func TestSolveLinearSystem(t *testing.T) {
	t.Run("solves a well conditioned system", func(t *testing.T) {
		a := [][]float64{
			{2, 1},
			{1, 3},
		}
		b := []float64{5, 10}

		x, err := solveLinearSystem(a, b)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, x[0], 1e-9)
		assert.InDelta(t, 3.0, x[1], 1e-9)
	})

	t.Run("rejects a singular system", func(t *testing.T) {
		a := [][]float64{
			{1, 2},
			{2, 4},
		}
		b := []float64{3, 6}

		_, err := solveLinearSystem(a, b)
		assert.Error(t, err)
	})
}
