// Package tabu implements Tabu Search (TabuCol) over a descending sequence
// of palette sizes ("k-descent"): starting from K0 = max_degree+1 (or a
// caller-supplied warm-start upper bound from DSATUR), each K-stage
// constructs a randomised greedy colouring and, if it conflicts, repairs it
// with a tabu-guided local search before moving on to try K-1.
//
// The inner loop forbids re-assigning a vertex to the colour it just left
// for tabu_tenure iterations, with an aspiration criterion overriding the
// taboo whenever the move would beat the best conflict count seen so far in
// the current K-stage — the same escape-local-optima idea as classic
// TabuCol.
package tabu
