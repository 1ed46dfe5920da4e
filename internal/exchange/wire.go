package exchange

import "github.com/tmxb/tmx-browser/internal/model"

// The response shape is not contractually complete: any nested object may be
// absent or null. Every nested field is a pointer so decoding degrades to
// zero values instead of failing.

// envelope is the outer object wrapping every results array.
type envelope[T any] struct {
	Results []T `json:"Results"`
}

type wireUser struct {
	UserID int    `json:"UserId"`
	Name   string `json:"Name"`
}

type wireAuthor struct {
	User *wireUser `json:"User"`
}

type wireWorldRecord struct {
	RecordTime int       `json:"RecordTime"`
	User       *wireUser `json:"User"`
}

type wireMap struct {
	MapID      int    `json:"MapId"`
	Name       string `json:"Name"`
	GbxMapName string `json:"GbxMapName"`

	Uploader *wireUser    `json:"Uploader"`
	Authors  []wireAuthor `json:"Authors"`

	Environment int    `json:"Environment"`
	Difficulty  int    `json:"Difficulty"`
	Length      int    `json:"Length"`
	VehicleName string `json:"VehicleName"`
	MapType     string `json:"MapType"`
	TitlePack   string `json:"TitlePack"`
	Mood        string `json:"Mood"`

	AwardCount    int `json:"AwardCount"`
	CommentCount  int `json:"CommentCount"`
	DownloadCount int `json:"DownloadCount"`
	ReplayCount   int `json:"ReplayCount"`
	TrackValue    int `json:"TrackValue"`

	OnlineWR *wireWorldRecord `json:"OnlineWR"`

	UploadedAt   string `json:"UploadedAt"`
	UpdatedAt    string `json:"UpdatedAt"`
	HasThumbnail bool   `json:"HasThumbnail"`
	HasImages    bool   `json:"HasImages"`
}

type wireMappack struct {
	MappackID     int       `json:"MappackId"`
	Name          string    `json:"Name"`
	Owner         *wireUser `json:"Owner"`
	TrackCount    int       `json:"TrackCount"`
	Description   string    `json:"Description"`
	DownloadCount int       `json:"DownloadCount"`
}

// toRecord converts a wire map into the display record, defaulting every
// absent nested structure.
func (w wireMap) toRecord() *model.MapRecord {
	rec := &model.MapRecord{
		ID:            w.MapID,
		Name:          w.Name,
		GbxMapName:    w.GbxMapName,
		Environment:   model.Environment(w.Environment),
		Difficulty:    model.Difficulty(w.Difficulty),
		VehicleName:   w.VehicleName,
		MapType:       w.MapType,
		TitlePack:     w.TitlePack,
		Mood:          w.Mood,
		LengthMS:      w.Length,
		AwardCount:    w.AwardCount,
		CommentCount:  w.CommentCount,
		DownloadCount: w.DownloadCount,
		ReplayCount:   w.ReplayCount,
		TrackValue:    w.TrackValue,
		UploadedAt:    w.UploadedAt,
		UpdatedAt:     w.UpdatedAt,
		HasThumbnail:  w.HasThumbnail,
		HasImages:     w.HasImages,
	}

	if w.Uploader != nil {
		rec.UploaderID = w.Uploader.UserID
		rec.UploaderName = w.Uploader.Name
	}
	if len(w.Authors) > 0 && w.Authors[0].User != nil {
		rec.AuthorLogin = w.Authors[0].User.Name
	}
	if w.OnlineWR != nil {
		rec.WorldRecordMS = w.OnlineWR.RecordTime
		if w.OnlineWR.User != nil {
			rec.WorldRecordHolder = w.OnlineWR.User.Name
		}
	}
	return rec
}

func (w wireMappack) toRecord() *model.MappackRecord {
	rec := &model.MappackRecord{
		ID:            w.MappackID,
		Name:          w.Name,
		MapCount:      w.TrackCount,
		Description:   w.Description,
		DownloadCount: w.DownloadCount,
	}
	if w.Owner != nil {
		rec.OwnerName = w.Owner.Name
	}
	return rec
}
