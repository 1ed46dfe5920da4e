package exchange

// Package exchange implements the TrackMania Exchange REST client: filter to
// query-parameter mapping, response envelope decoding with tolerance for
// partial records, and the binary download and thumbnail endpoints.
