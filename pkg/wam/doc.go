// Package wam implements the abstract-machine half of the evaluation core:
// a tagged heap of Ref/Str/Func cells, a register file, and the small
// put/set/get/unify instruction set that compiles term construction and
// matching (spec §4.4–§4.8). It is a faithful, independent realization of
// the same unification core as pkg/prolog, expressed at the level of heap
// addresses and dereference chains instead of a term tree.
//
// call and proceed — the instructions that would tie a compiled query to
// a compiled clause and drive full procedure-call dispatch — are
// intentionally left unimplemented; this package only needs to realize
// unification over compiled term structure, not a whole WAM program
// loader.
package wam
