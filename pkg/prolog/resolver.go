package prolog

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrNoSolution is reported when both the current goal's candidate
// assertions and the choice-point stack are exhausted (spec §7).
var ErrNoSolution = errors.New("prolog: no solution")

// log is the resolver's trace-level diagnostic logger. It is silent by
// default (logrus' default level is Info, and these calls are Trace) —
// callers that want clause-attempt/backtrack visibility call SetLogger with
// a logger set to Trace level. This never affects solution
// output, which always goes through Session/Environment.String, matching
// spec §6's separation of "solution rendering" from ambient diagnostics.
var log = logrus.New()

// SetLogger replaces the resolver's diagnostic logger, letting a host
// application route resolver trace events into its own logging pipeline.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// ChoicePoint snapshots a decision point so the resolver can resume search
// there later: the remaining database suffix still to be tried for the
// goal active at that point, the environment as it stood before that
// goal's unification, the full goal list at that point (head goal
// included), and the depth then in effect. Backtracking is a direct jump
// to a saved ChoicePoint, never exception-driven (spec §9).
type ChoicePoint struct {
	Remaining Database
	Env       Environment
	Goals     Clause
	Depth     int
}

// sessionState is the resolver's current position in the search: the
// choice-point stack, the database suffix left to try for the current
// goal, the environment, the remaining goal list, and the renaming depth.
type sessionState struct {
	Choices   []ChoicePoint
	Remaining Database
	Env       Environment
	Goals     Clause
	Depth     int
}

// reduceAtom scans asrl in order for an assertion whose renamed head (at
// depth n) unifies with a. On success it returns the database suffix after
// the matched assertion, the extended environment, and the assertion's
// renamed body. On exhaustion ok is false.
func reduceAtom(env Environment, n int, a Compound, asrl Database) (remaining Database, next Environment, body Clause, ok bool) {
	for i, assertion := range asrl {
		head := RenumberAtom(n, assertion.Head)

		extended, err := UnifyAtoms(env, a, head)
		if err != nil {
			log.WithFields(logrus.Fields{"goal": a.String(), "head": head.String()}).Trace("clause did not unify")
			continue
		}

		log.WithFields(logrus.Fields{"goal": a.String(), "head": head.String(), "depth": n}).Trace("clause matched")
		return asrl[i+1:], extended, RenumberClause(n, assertion.Body), true
	}

	return nil, env, nil, false
}

// step advances st by exactly one resolver transition: either it reduces
// the head goal against st.Remaining and descends, or — if st.Goals is
// already empty — it is not called at all (the caller handles the solution
// case directly). It returns the next state to resume from, or ok=false if
// the current goal's candidates are exhausted and the caller must
// backtrack.
func (st *sessionState) step(db Database) (next *sessionState, ok bool) {
	a, rest := st.Goals[0], st.Goals[1:]

	remaining, extended, body, matched := reduceAtom(st.Env, st.Depth, a, st.Remaining)
	if !matched {
		return nil, false
	}

	cp := ChoicePoint{Remaining: remaining, Env: st.Env, Goals: st.Goals, Depth: st.Depth}

	goals := make(Clause, 0, len(body)+len(rest))
	goals = append(goals, body...)
	goals = append(goals, rest...)

	choices := make([]ChoicePoint, len(st.Choices), len(st.Choices)+1)
	copy(choices, st.Choices)
	choices = append(choices, cp)

	return &sessionState{
		Choices:   choices,
		Remaining: db,
		Env:       extended,
		Goals:     goals,
		Depth:     st.Depth + 1,
	}, true
}

// backtrack pops the youngest choice point and resumes search there
// (continue_search in the original interpreter). Choice points are LIFO —
// the most recently pushed decision point is retried first (spec §4.3).
func backtrack(choices []ChoicePoint) (next *sessionState, ok bool) {
	if len(choices) == 0 {
		log.Trace("choice-point stack exhausted")
		return nil, false
	}

	n := len(choices) - 1
	top := choices[n]

	return &sessionState{
		Choices:   choices[:n],
		Remaining: top.Remaining,
		Env:       top.Env,
		Goals:     top.Goals,
		Depth:     top.Depth,
	}, true
}
