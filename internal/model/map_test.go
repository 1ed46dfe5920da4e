package model

import (
	"strings"
	"testing"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		ms   int
		want string
	}{
		{0, "---"},
		{999, "00:00.999"},
		{45000, "00:45.000"},
		{61500, "01:01.500"},
		{125430, "02:05.430"},
		{3600000, "60:00.000"},
	}

	for _, c := range cases {
		if got := FormatTime(c.ms); got != c.want {
			t.Errorf("FormatTime(%d) = %q, want %q", c.ms, got, c.want)
		}
	}
}

func TestMapRecordLengthBucket(t *testing.T) {
	m := &MapRecord{LengthMS: 45000}
	if got := m.LengthBucket().String(); got != "30-60 sec" {
		t.Errorf("LengthBucket() = %q, want %q", got, "30-60 sec")
	}
}

func TestMapRecordInfoTextOmitsZeroWorldRecord(t *testing.T) {
	m := &MapRecord{ID: 42, Name: "Test Track", UploaderName: "alice"}
	info := m.InfoText()
	if strings.Contains(info, "World Record") {
		t.Error("InfoText should omit the world record line when no record is set")
	}

	m.WorldRecordMS = 51230
	m.WorldRecordHolder = "bob"
	info = m.InfoText()
	if !strings.Contains(info, "World Record: 00:51.230 by bob") {
		t.Errorf("InfoText missing world record line:\n%s", info)
	}
}

func TestListItemLabels(t *testing.T) {
	var items []ListItem
	items = append(items,
		&MapRecord{Name: "Alpine", UploaderName: "alice"},
		&MappackRecord{Name: "Winter Pack", OwnerName: "bob", MapCount: 10},
	)

	for _, item := range items {
		switch v := item.(type) {
		case *MapRecord:
			if !strings.Contains(v.Label(), "Alpine") {
				t.Errorf("map label = %q", v.Label())
			}
		case *MappackRecord:
			if !strings.Contains(v.Label(), "Winter Pack") {
				t.Errorf("mappack label = %q", v.Label())
			}
		default:
			t.Fatalf("unexpected list item type %T", item)
		}
	}
}

func TestDownloadTaskDisplayTitle(t *testing.T) {
	dt := &DownloadTask{MapID: 42}
	if got := dt.DisplayTitle(); got != "Map 42" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "Map 42")
	}
	dt.MapName = "Test Track"
	if got := dt.DisplayTitle(); got != "Test Track" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "Test Track")
	}
}
