package browse

// Package browse runs catalog fetches on background goroutines and delivers
// each result back to the UI exactly once. Every fetch carries a
// monotonically increasing token per destination; a completion whose token is
// no longer the latest is discarded, so a slow response can never overwrite
// the results of a newer request.
