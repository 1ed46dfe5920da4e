package model

import "strconv"

// Environment is a map environment as exposed by the exchange API.
type Environment int

const (
	EnvStadium Environment = 0
	EnvSnow    Environment = 1
	EnvRally   Environment = 2
	EnvDesert  Environment = 3
)

// environmentNames is the single source of truth for the wire ordinals the
// exchange API uses for environments.
var environmentNames = map[Environment]string{
	EnvStadium: "Stadium",
	EnvSnow:    "Snow",
	EnvRally:   "Rally",
	EnvDesert:  "Desert",
}

// String returns the display name, or the raw ordinal for unknown values.
func (e Environment) String() string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return strconv.Itoa(int(e))
}

// EnvironmentByName returns the environment for a display name. The second
// return is false for names outside the table (including "All").
func EnvironmentByName(name string) (Environment, bool) {
	for env, n := range environmentNames {
		if n == name {
			return env, true
		}
	}
	return 0, false
}

// EnvironmentNames lists display names in filter order.
func EnvironmentNames() []string {
	return []string{"Stadium", "Snow", "Rally", "Desert"}
}

// Difficulty is a map difficulty rating. The API reports ordinals 0-4; the
// search filter only accepts 0-3.
type Difficulty int

const (
	DiffBeginner     Difficulty = 0
	DiffIntermediate Difficulty = 1
	DiffAdvanced     Difficulty = 2
	DiffExpert       Difficulty = 3
	DiffExpertPlus   Difficulty = 4
)

var difficultyNames = map[Difficulty]string{
	DiffBeginner:     "Beginner",
	DiffIntermediate: "Intermediate",
	DiffAdvanced:     "Advanced",
	DiffExpert:       "Expert",
	DiffExpertPlus:   "Expert+",
}

// String returns the display name, or the raw ordinal for unknown values.
func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return strconv.Itoa(int(d))
}

// DifficultyByName returns the difficulty for a display name.
func DifficultyByName(name string) (Difficulty, bool) {
	for diff, n := range difficultyNames {
		if n == name {
			return diff, true
		}
	}
	return 0, false
}

// DifficultyFilterNames lists the names selectable in the search filter.
// Expert+ exists only in responses, matching the remote catalog.
func DifficultyFilterNames() []string {
	return []string{"Beginner", "Intermediate", "Advanced", "Expert"}
}

// LengthBucket classifies a track length into one of the fixed filter ranges.
type LengthBucket int

const (
	LengthUnder30s LengthBucket = iota
	Length30To60s
	Length1To2Min
	Length2To5Min
	LengthOver5Min
)

// lengthMaxUnbounded stands in for "no upper bound" in the outgoing query.
const lengthMaxUnbounded = 999999999

type lengthRange struct {
	name     string
	min, max int
}

// lengthRanges holds the closed millisecond ranges behind each bucket, in
// bucket order.
var lengthRanges = []lengthRange{
	{"0-30 sec", 0, 30000},
	{"30-60 sec", 30000, 60000},
	{"1-2 min", 60000, 120000},
	{"2-5 min", 120000, 300000},
	{"5+ min", 300000, lengthMaxUnbounded},
}

// String returns the bucket's display name.
func (b LengthBucket) String() string {
	if b < 0 || int(b) >= len(lengthRanges) {
		return "Unknown"
	}
	return lengthRanges[b].name
}

// Bounds returns the bucket's millisecond range as sent to the API.
func (b LengthBucket) Bounds() (min, max int) {
	if b < 0 || int(b) >= len(lengthRanges) {
		return 0, lengthMaxUnbounded
	}
	return lengthRanges[b].min, lengthRanges[b].max
}

// LengthBucketByName returns the bucket for a display name.
func LengthBucketByName(name string) (LengthBucket, bool) {
	for i, r := range lengthRanges {
		if r.name == name {
			return LengthBucket(i), true
		}
	}
	return 0, false
}

// LengthBucketNames lists display names in filter order.
func LengthBucketNames() []string {
	names := make([]string, len(lengthRanges))
	for i, r := range lengthRanges {
		names[i] = r.name
	}
	return names
}

// BucketForLength classifies a length in milliseconds. The label is derived
// from the reported length only, never from a server-side bucket field.
func BucketForLength(lengthMS int) LengthBucket {
	seconds := lengthMS / 1000
	switch {
	case seconds < 30:
		return LengthUnder30s
	case seconds < 60:
		return Length30To60s
	case seconds < 120:
		return Length1To2Min
	case seconds < 300:
		return Length2To5Min
	default:
		return LengthOver5Min
	}
}

// sortOption pairs a sort label with the ordinal the API's order1 parameter
// expects.
type sortOption struct {
	name    string
	ordinal int
}

var sortOptions = []sortOption{
	{"Uploaded (Newest)", 6},
	{"Uploaded (Oldest)", 5},
	{"Updated (Newest)", 8},
	{"Name (A-Z)", 1},
	{"Name (Z-A)", 2},
	{"Awards (Most)", 12},
	{"Awards (Least)", 11},
	{"Difficulty (Hardest)", 16},
	{"Difficulty (Easiest)", 15},
	{"Length (Longest)", 18},
	{"Length (Shortest)", 17},
	{"Downloads (Most)", 20},
	{"Downloads (Least)", 19},
	{"Rating (Most)", 30},
	{"Rating (Least)", 29},
}

// SortOrdinalNewestUploaded is the default sort for searches and the fixed
// sort used by mappack listings.
const SortOrdinalNewestUploaded = 6

// SortOrdinal returns the order1 ordinal for a sort label.
func SortOrdinal(name string) (int, bool) {
	for _, o := range sortOptions {
		if o.name == name {
			return o.ordinal, true
		}
	}
	return 0, false
}

// SortNames lists sort labels in menu order.
func SortNames() []string {
	names := make([]string, len(sortOptions))
	for i, o := range sortOptions {
		names[i] = o.name
	}
	return names
}
