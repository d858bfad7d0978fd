package assessment

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// MinTrainingRecords is the fit precondition: below this corpus size no
// model state is produced or overwritten.
const MinTrainingRecords = 5

var (
	// ErrInsufficientData is reported by Fit when the corpus is too small.
	ErrInsufficientData = errors.New("insufficient training data")

	// ErrModelUnavailable is reported by Predict when no fitted state exists
	// and a bootstrap fit is not possible. Callers fall back to the
	// deterministic score.
	ErrModelUnavailable = errors.New("model unavailable")
)

// CorpusSource supplies the shared training corpus.
type CorpusSource interface {
	Corpus() ([]*types.ResponseRecord, error)
}

// Trainer fits and applies the linear wellbeing model. The deterministic
// score is the regression target, so the model learns to reproduce the
// formula while also weighting platform, screen-time and content-impact
// columns the formula ignores.
type Trainer struct {
	store  *ModelStore
	corpus CorpusSource

	mu    sync.Mutex
	state *ModelState
}

// NewTrainer creates a trainer backed by the given store and corpus.
func NewTrainer(store *ModelStore, corpus CorpusSource) *Trainer {
	return &Trainer{store: store, corpus: corpus}
}

// Fit trains on the full corpus and atomically persists the new state.
// Concurrent fits are serialized; a corpus below MinTrainingRecords leaves
// any existing state untouched.
func (t *Trainer) Fit() (*ModelState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fitLocked()
}

func (t *Trainer) fitLocked() (*ModelState, error) {
	records, err := t.corpus.Corpus()
	if err != nil {
		return nil, fmt.Errorf("failed to load training corpus: %w", err)
	}
	if len(records) < MinTrainingRecords {
		return nil, fmt.Errorf("%w: have %d records, need %d", ErrInsufficientData, len(records), MinTrainingRecords)
	}

	encoded := make([]map[string]float64, len(records))
	targets := make([]float64, len(records))
	for i, r := range records {
		encoded[i] = Encode(r)
		targets[i] = float64(ScoreRecord(r))
	}

	schema := SchemaOf(encoded)
	rows := make([][]float64, len(encoded))
	for i, features := range encoded {
		rows[i] = Project(schema, features)
	}

	means, scales := columnStats(rows)
	for _, row := range rows {
		standardize(row, means, scales)
	}

	weights, intercept, err := solveLeastSquares(rows, targets)
	if err != nil {
		return nil, fmt.Errorf("failed to fit model: %w", err)
	}

	state := &ModelState{
		Columns:     schema,
		Weights:     weights,
		Intercept:   intercept,
		Means:       means,
		Scales:      scales,
		SampleCount: len(records),
		TrainedAt:   time.Now().UTC(),
	}

	if err := t.store.Save(state); err != nil {
		return nil, err
	}

	t.state = state
	return state, nil
}

// Predict scores a record with the fitted model, clamped to [0,100]. When no
// state is cached or persisted it attempts one lazy bootstrap fit; if that
// fails too it reports ErrModelUnavailable and never panics.
func (t *Trainer) Predict(r *types.ResponseRecord) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := t.state
	if state == nil {
		loaded, err := t.store.Load()
		if err == nil && loaded != nil {
			state = loaded
			t.state = loaded
		}
	}

	if state == nil {
		fitted, err := t.fitLocked()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		state = fitted
	}

	row := Project(state.Columns, Encode(r))
	standardize(row, state.Means, state.Scales)

	prediction := state.Intercept
	for i, w := range state.Weights {
		prediction += w * row[i]
	}

	score := int(math.Round(prediction))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}

// State returns the cached or persisted model state, if any.
func (t *Trainer) State() *ModelState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == nil {
		if loaded, err := t.store.Load(); err == nil {
			t.state = loaded
		}
	}
	return t.state
}

// Invalidate drops the cached state so the next predict reloads or refits.
func (t *Trainer) Invalidate() {
	t.mu.Lock()
	t.state = nil
	t.mu.Unlock()
}

// columnStats computes the per-column mean and standard deviation for
// z-score normalization. Constant columns get scale 1 so standardizing them
// is a no-op instead of a division by zero.
func columnStats(rows [][]float64) (means, scales []float64) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols := len(rows[0])
	means = make([]float64, cols)
	scales = make([]float64, cols)

	for j := 0; j < cols; j++ {
		sum := 0.0
		for _, row := range rows {
			sum += row[j]
		}
		means[j] = sum / float64(len(rows))

		variance := 0.0
		for _, row := range rows {
			d := row[j] - means[j]
			variance += d * d
		}
		variance /= float64(len(rows))

		scales[j] = math.Sqrt(variance)
		if scales[j] < 1e-12 {
			scales[j] = 1
		}
	}

	return means, scales
}

// standardize applies stored normalization statistics to a row in place.
func standardize(row, means, scales []float64) {
	for j := range row {
		row[j] = (row[j] - means[j]) / scales[j]
	}
}

// solveLeastSquares fits ordinary least squares via the normal equations
// with a tiny ridge term for numerical stability on collinear columns. The
// intercept is the final augmented column and is excluded from the ridge.
func solveLeastSquares(rows [][]float64, targets []float64) (weights []float64, intercept float64, err error) {
	n := len(rows)
	if n == 0 || n != len(targets) {
		return nil, 0, fmt.Errorf("mismatched design matrix: %d rows, %d targets", n, len(targets))
	}

	cols := len(rows[0])
	dim := cols + 1 // augmented with the intercept column

	xtx := make([][]float64, dim)
	for i := range xtx {
		xtx[i] = make([]float64, dim)
	}
	xty := make([]float64, dim)

	augmented := func(row []float64, j int) float64 {
		if j == cols {
			return 1
		}
		return row[j]
	}

	for r := 0; r < n; r++ {
		for i := 0; i < dim; i++ {
			xi := augmented(rows[r], i)
			xty[i] += xi * targets[r]
			for j := i; j < dim; j++ {
				xtx[i][j] += xi * augmented(rows[r], j)
			}
		}
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < i; j++ {
			xtx[i][j] = xtx[j][i]
		}
	}

	const ridge = 1e-8
	for i := 0; i < cols; i++ {
		xtx[i][i] += ridge
	}

	solution, err := solveLinearSystem(xtx, xty)
	if err != nil {
		return nil, 0, err
	}

	return solution[:cols], solution[cols], nil
}

// solveLinearSystem performs Gaussian elimination with partial pivoting.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)

	m := make([][]float64, n)
	for i := range m {
		m[i] = append(append([]float64{}, a[i]...), b[i])
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("singular system at column %d", col)
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < n; r++ {
			factor := m[r][col] / m[col][col]
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	solution := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := m[i][n]
		for j := i + 1; j < n; j++ {
			sum -= m[i][j] * solution[j]
		}
		solution[i] = sum / m[i][i]
	}

	return solution, nil
}
