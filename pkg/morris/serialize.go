package morris

import (
	"encoding/json"

	"gonum.org/v1/gonum/mat"
)

// experimentState is the JSON image of the full generator state. The random
// stream is captured by its seed, not by its position: a reloaded experiment
// restarts the stream from the recorded seed, exactly as a freshly seeded
// one would.
type experimentState struct {
	Domain       Domain      `json:"domain"`
	Pool         [][]float64 `json:"pool,omitempty"`
	Step         []float64   `json:"step"`
	Trajectories int         `json:"trajectories"`
	Seed         uint64      `json:"seed"`
}

// MarshalJSON stores domain bounds, pool, step vector, trajectory count and
// seed, losslessly.
func (e *Experiment) MarshalJSON() ([]byte, error) {
	state := experimentState{
		Domain:       e.domain,
		Step:         e.step,
		Trajectories: e.n,
		Seed:         e.seed,
	}
	if e.pool != nil {
		size, _ := e.pool.Dims()
		state.Pool = make([][]float64, size)
		for i := range state.Pool {
			state.Pool[i] = e.pool.RawRowView(i)
		}
	}
	return json.Marshal(state)
}

// UnmarshalJSON restores a saved experiment. Generate output after a
// round trip is bit-identical to that of the saved experiment re-seeded
// with its recorded seed.
func (e *Experiment) UnmarshalJSON(data []byte) error {
	var state experimentState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	e.domain = state.Domain
	e.step = state.Step
	e.n = state.Trajectories
	e.pool = nil
	if len(state.Pool) > 0 {
		dimension := len(state.Pool[0])
		e.pool = mat.NewDense(len(state.Pool), dimension, nil)
		for i, row := range state.Pool {
			e.pool.SetRow(i, row)
		}
	}
	e.Seed(state.Seed)
	return nil
}
