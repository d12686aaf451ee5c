// Package measure computes geometric body metrics from per-frame skeleton
// snapshots: inter-joint distances, interior joint angles, and an estimated
// stature built from a partial skeletal chain.
//
// Every function is a pure function of one snapshot. No state is retained
// between calls, so all operations are safe to invoke concurrently on
// independent snapshots.
//
// Distance conventions: sensor range uses the *squared* distance
// (SquaredDistanceFromOrigin) while inter-joint measurements use the true
// Euclidean distance (Distance, JointDistance). The asymmetry is inherited
// from downstream call sites that depend on each form; do not unify them.
package measure
