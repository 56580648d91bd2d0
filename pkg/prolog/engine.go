package prolog

import "github.com/pkg/errors"

// Session is the engine façade described in spec §9: a uniform entry point
// taking a parsed query and a database, producing a lazy sequence of
// solution environments that the caller pulls one at a time via Next.
//
// Session owns all of the search's resources (the choice-point stack, the
// environments produced along the way). Nothing it does spawns a
// goroutine: each Next call synchronously advances the resolver on the
// caller's own goroutine, matching the single-threaded model spec §5
// requires. A caller that stops calling Next simply drops the Session; all
// of its resources are garbage the next time it is collected — there is no
// separate shutdown step.
type Session struct {
	db    Database
	state *sessionState
	done  bool
}

// NewSession starts a query: goal against db, at renaming depth 1 (depth 0
// is reserved for the variables the caller's own query mentions, per
// spec §3.1 and the rendering rule in Environment.String).
func NewSession(db Database, goal Clause) *Session {
	return &Session{
		db: db,
		state: &sessionState{
			Remaining: db,
			Env:       NewEnvironment(),
			Goals:     goal,
			Depth:     1,
		},
	}
}

// Next advances the search to the next solution. It returns the solution
// Environment and true if one was found, or a zero Environment and false
// once the search is exhausted. Calling Next again after it has returned
// false keeps returning false — the search never restarts on its own.
func (s *Session) Next() (Environment, bool) {
	for !s.done && s.state != nil {
		st := s.state

		if len(st.Goals) == 0 {
			solution := st.Env

			next, ok := backtrack(st.Choices)
			if !ok {
				s.state = nil
			} else {
				s.state = next
			}
			return solution, true
		}

		next, ok := st.step(s.db)
		if ok {
			s.state = next
			continue
		}

		next, ok = backtrack(st.Choices)
		if !ok {
			s.state = nil
			s.done = true
			return Environment{}, false
		}
		s.state = next
	}

	return Environment{}, false
}

// SolveOnce runs a query to its first solution (or exhaustion) without
// requiring the caller to manage a Session. It returns ErrNoSolution if the
// query has no solution at all.
func SolveOnce(db Database, goal Clause) (Environment, error) {
	sess := NewSession(db, goal)
	env, ok := sess.Next()
	if !ok {
		return Environment{}, errors.Wrap(ErrNoSolution, "prolog: SolveOnce")
	}
	return env, nil
}
