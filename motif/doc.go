// Package motif classifies water molecules by their donor/acceptor profile.
//
// The label of a molecule is a deterministic, total function of its
// (in-degree, out-degree) pair: "A" repeated in-degree times, then "D"
// repeated out-degree times — accept letters always precede donate letters.
// A double acceptor / single donor is "AAD", the classic tetrahedral
// double acceptor / double donor is "AADD", and an unbonded molecule maps
// to the empty label.
//
// The only error case is a negative degree (ErrNegativeDegree); clusters
// built by package cluster can never produce one.
package motif
