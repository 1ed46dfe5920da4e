package model

import (
	"fmt"
	"strings"
)

// NoTimeValue is shown where a millisecond time is zero or absent.
const NoTimeValue = "---"

// MapRecord is one map from a catalog response. Records are built fresh from
// each response and discarded when a new search replaces them; only favorites
// outlive a search.
type MapRecord struct {
	ID         int
	Name       string
	GbxMapName string

	UploaderID   int
	UploaderName string
	AuthorLogin  string

	Environment Environment
	Difficulty  Difficulty
	VehicleName string
	MapType     string
	TitlePack   string
	Mood        string

	LengthMS int

	AwardCount    int
	CommentCount  int
	DownloadCount int
	ReplayCount   int
	TrackValue    int

	WorldRecordMS     int
	WorldRecordHolder string

	UploadedAt string
	UpdatedAt  string

	HasThumbnail bool
	HasImages    bool
}

// LengthBucket classifies the record's length into the fixed filter ranges.
func (m *MapRecord) LengthBucket() LengthBucket {
	return BucketForLength(m.LengthMS)
}

// Label returns the one-line list representation.
func (m *MapRecord) Label() string {
	return fmt.Sprintf("%s — %s", m.Name, m.UploaderName)
}

func (m *MapRecord) isListItem() {}

// InfoText renders the multi-line details panel text.
func (m *MapRecord) InfoText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.Name)
	fmt.Fprintf(&b, "ID: %d\n", m.ID)
	fmt.Fprintf(&b, "Author: %s\n", m.UploaderName)
	fmt.Fprintf(&b, "Environment: %s\n", m.Environment)
	fmt.Fprintf(&b, "Time: %s\n", FormatTime(m.LengthMS))
	if m.WorldRecordMS > 0 {
		fmt.Fprintf(&b, "World Record: %s by %s\n", FormatTime(m.WorldRecordMS), m.WorldRecordHolder)
	}
	fmt.Fprintf(&b, "Length: %s\n", m.LengthBucket())
	fmt.Fprintf(&b, "Difficulty: %s\n", m.Difficulty)
	fmt.Fprintf(&b, "Awards: %d\n", m.AwardCount)
	fmt.Fprintf(&b, "Comments: %d\n", m.CommentCount)
	fmt.Fprintf(&b, "Downloads: %d\n", m.DownloadCount)
	fmt.Fprintf(&b, "Value: %d\n", m.TrackValue)
	if len(m.UploadedAt) >= 10 {
		fmt.Fprintf(&b, "Uploaded: %s\n", m.UploadedAt[:10])
	}
	return b.String()
}

// FormatTime renders a millisecond time as MM:SS.mmm, or NoTimeValue when
// zero.
func FormatTime(ms int) string {
	if ms == 0 {
		return NoTimeValue
	}
	seconds := ms / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d.%03d", seconds/60, seconds%60, millis)
}
