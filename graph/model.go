package graph

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/qroute/matrix"
)

// Model is the immutable graph model: the location↔state bijection plus the
// N×N reward matrix. reward[i][j] > 0 iff the transition i→j is legal.
//
// A Model never changes after New returns; accessors hand out copies, so a
// single Model may be shared by concurrent trainers.
type Model struct {
	index    *Index
	reward   *matrix.Dense
	playable [][]int // playable[i] = ascending legal next states of i
}

// New BUILD the graph model from a location count, the declared locations and
// the edge declarations.
// Implementation:
//   - Stage 1: validate locations (empty, duplicate) and N against the distinct count.
//   - Stage 2: validate edges (unknown endpoints, reward policy) and write them
//     into the reward matrix in declaration order (last write wins).
//   - Stage 3: reject dead-end states (rows with no positive entry).
//   - Stage 4: cache the playable set of every state.
//
// Behavior highlights:
//   - Every violation is collected; the returned error lists all of them and
//     matches ErrConfiguration plus each specific sentinel via errors.Is.
//   - Undirected edges are mirrored; self-loops are written once.
//
// Errors:
//   - ErrConfiguration wrapping ErrEmptyLocation, ErrDuplicateLocation,
//     ErrCountMismatch, ErrUnknownLocation, ErrBadReward, ErrDeadEnd.
//
// Complexity:
//   - Time O(N² + E), Space O(N²).
func New(n int, locations []Location, edges []Edge, opts ...Option) (*Model, error) {
	cfg := gatherOptions(opts...)

	var errs *multierror.Error

	// 1) Locations.
	seen := make(map[Location]struct{}, len(locations))
	var (
		k   int
		loc Location
	)
	for k, loc = range locations {
		if loc == "" {
			errs = multierror.Append(errs, fmt.Errorf("location #%d: %w", k, ErrEmptyLocation))
			continue
		}
		if _, dup := seen[loc]; dup {
			errs = multierror.Append(errs, fmt.Errorf("location #%d %q: %w", k, loc, ErrDuplicateLocation))
			continue
		}
		seen[loc] = struct{}{}
	}
	if n <= 0 || n != len(seen) {
		errs = multierror.Append(errs, fmt.Errorf("declared %d, distinct %d: %w", n, len(seen), ErrCountMismatch))
	}
	if errs.ErrorOrNil() != nil {
		// Indices are meaningless without a valid location set.
		return nil, configErr(errs)
	}

	index := newIndex(locations)
	reward, err := matrix.NewSquare(n)
	if err != nil {
		return nil, configErr(multierror.Append(errs, err))
	}

	// 2) Edges.
	var (
		e        Edge
		from, to int
		ok       bool
		r        float64
	)
	for k, e = range edges {
		from, ok = index.byLocation[e.From]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("edge #%d %s→%s: from %w", k, e.From, e.To, ErrUnknownLocation))
		}
		to, ok = index.byLocation[e.To]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("edge #%d %s→%s: to %w", k, e.From, e.To, ErrUnknownLocation))
		}
		r = e.Reward
		if r == 0 {
			r = cfg.defaultReward
		}
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			errs = multierror.Append(errs, fmt.Errorf("edge #%d %s→%s reward=%g: %w", k, e.From, e.To, e.Reward, ErrBadReward))
			continue
		}
		if !index.Has(e.From) || !index.Has(e.To) {
			continue
		}

		// Indices are validated above; Set cannot fail here.
		_ = reward.Set(from, to, r)
		if !e.Directed && !cfg.directed && from != to {
			_ = reward.Set(to, from, r)
		}
	}

	// 3) Dead ends. Only meaningful once the edge set is valid.
	playable := make([][]int, n)
	var i int
	for i = 0; i < n; i++ {
		playable[i], _ = reward.RowPositive(i)
		if errs.ErrorOrNil() == nil && len(playable[i]) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("state %d (%s): %w", i, index.byState[i], ErrDeadEnd))
		}
	}
	if errs.ErrorOrNil() != nil {
		return nil, configErr(errs)
	}

	return &Model{index: index, reward: reward, playable: playable}, nil
}

// configErr wraps the collected violations under ErrConfiguration while
// keeping every individual sentinel reachable through errors.Is.
func configErr(errs *multierror.Error) error {
	return fmt.Errorf("%w: %w", ErrConfiguration, errs)
}

// FromRewardMatrix BUILD a model directly from a literal reward matrix whose
// rows and columns follow the order of locations. It applies the same
// validation as New (count, locations, rewards, dead ends).
//
// Complexity: O(N²).
func FromRewardMatrix(locations []Location, rewards [][]float64) (*Model, error) {
	n := len(locations)
	var errs *multierror.Error
	if len(rewards) != n {
		errs = multierror.Append(errs, fmt.Errorf("reward rows %d, locations %d: %w", len(rewards), n, ErrCountMismatch))
		return nil, configErr(errs)
	}

	edges := make([]Edge, 0, n*2)
	var i, j int
	for i = 0; i < n; i++ {
		if len(rewards[i]) != n {
			errs = multierror.Append(errs, fmt.Errorf("reward row %d has %d columns, want %d: %w", i, len(rewards[i]), n, ErrCountMismatch))
			continue
		}
		for j = 0; j < n; j++ {
			if rewards[i][j] == 0 {
				continue
			}
			edges = append(edges, Edge{From: locations[i], To: locations[j], Reward: rewards[i][j], Directed: true})
		}
	}
	if errs.ErrorOrNil() != nil {
		return nil, configErr(errs)
	}

	return New(n, locations, edges)
}

// N returns the number of states.
func (m *Model) N() int { return m.index.Len() }

// Index exposes the immutable location↔state bijection.
func (m *Model) Index() *Index { return m.index }

// Locations returns the locations ordered by state index (copy).
func (m *Model) Locations() []Location { return m.index.Locations() }

// Encode maps a location to its state index.
func (m *Model) Encode(loc Location) (int, error) { return m.index.Encode(loc) }

// Decode maps a state index back to its location.
func (m *Model) Decode(i int) (Location, error) { return m.index.Decode(i) }

// Reward returns reward[i][j].
// Errors: ErrStateOutOfRange.
func (m *Model) Reward(i, j int) (float64, error) {
	v, err := m.reward.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStateOutOfRange, err)
	}

	return v, nil
}

// RewardMatrix returns a copy of the N×N reward matrix.
func (m *Model) RewardMatrix() *matrix.Dense { return m.reward.Clone() }

// Legal reports whether i→j is a legal transition (reward > 0).
// Out-of-range indices are never legal.
func (m *Model) Legal(i, j int) bool {
	v, err := m.reward.At(i, j)
	return err == nil && v > 0
}

// Playable returns the legal next states of i in ascending order (copy).
// Errors: ErrStateOutOfRange.
func (m *Model) Playable(i int) ([]int, error) {
	if i < 0 || i >= len(m.playable) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStateOutOfRange, i, len(m.playable))
	}
	out := make([]int, len(m.playable[i]))
	copy(out, m.playable[i])

	return out, nil
}

// LegalPath reports whether every consecutive pair of path is a legal
// transition. Unknown locations make the path illegal. Paths with fewer than
// two locations are trivially legal when all their locations are known.
//
// Complexity: O(len(path)).
func (m *Model) LegalPath(path []Location) bool {
	var (
		prev, cur int
		err       error
		k         int
	)
	for k = range path {
		cur, err = m.index.Encode(path[k])
		if err != nil {
			return false
		}
		if k > 0 && !m.Legal(prev, cur) {
			return false
		}
		prev = cur
	}

	return true
}

// WithReward returns a copy of the model in which from→to carries reward r.
// The receiver is not modified. A transition that was illegal becomes legal.
//
// Errors:
//   - ErrNilModel, ErrUnknownLocation, ErrBadReward (r must be finite and > 0).
//
// Complexity: O(N²) for the copy.
func (m *Model) WithReward(from, to Location, r float64) (*Model, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("%s→%s reward=%g: %w", from, to, r, ErrBadReward)
	}
	i, err := m.index.Encode(from)
	if err != nil {
		return nil, err
	}
	j, err := m.index.Encode(to)
	if err != nil {
		return nil, err
	}

	reward := m.reward.Clone()
	if err = reward.Set(i, j, r); err != nil {
		return nil, err
	}
	playable := make([][]int, len(m.playable))
	var s int
	for s = range m.playable {
		playable[s] = m.playable[s]
	}
	playable[i], _ = reward.RowPositive(i) // only row i can change

	return &Model{index: m.index, reward: reward, playable: playable}, nil
}
