// Package terminate implements the PSLQ termination logic (component C6):
// after every round, check whether some y_i has collapsed to
// (near) zero — in which case the matching ledger column is a candidate
// relation — update the certified norm bound NB = 1/max_i|H_{i,i}|, and
// decide whether NB has reached the caller's max_norm.
package terminate
