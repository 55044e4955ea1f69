/*
This pkg is the system-wide configuration for the streaming k-median
solver: the handful of constants the original PARSEC streamcluster
kernel hard-coded as preprocessor defines.
*/
package cfg

// Seed is the fixed PRNG seed used for reproducible runs (spec SEED=1).
// Every solver entry point takes its *rand.Rand explicitly; this is
// the seed the CLI gives the one RNG it creates.
const Seed = 1

// SP is the number of chances speedy gets to reach kmin before the
// driver gives up and lowers z instead.
const SP = 1

// Iter scales the feasible-sample size and the per-pass FL iteration
// count: both are computed as Iter*k*ln(k).
const Iter = 3

// CacheLineBytes governs work-memory stride rounding only (pgain's
// per-worker strip is padded to a multiple of this many doubles-worth
// of bytes, to avoid false sharing across worker goroutines' writes).
// Portable value; the original kernel's own comment permits 64 on
// modern hardware, but this is the constant it actually ships with.
const CacheLineBytes = 32
