package checkins

import (
	"sort"
	"strings"
)

// CheckIn is one gym visit. Date and Time are what the front desk shows;
// Timestamp (epoch millis) is what histories sort on, so listings never
// need a composite index.
type CheckIn struct {
	ID        string `firestore:"-" json:"id"`
	MemberID  string `firestore:"memberId" json:"memberId"`
	Date      string `firestore:"date" json:"date"`
	Time      string `firestore:"time" json:"time"`
	Timestamp int64  `firestore:"timestamp" json:"timestamp"`
}

// UpdateCheckInInput is a partial patch; nil fields are left untouched.
type UpdateCheckInInput struct {
	MemberID  *string `json:"memberId,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Timestamp *int64  `json:"timestamp,omitempty"`
}

func (in *UpdateCheckInInput) Trim() {
	if in.MemberID != nil {
		v := strings.TrimSpace(*in.MemberID)
		*in.MemberID = v
	}
	if in.Date != nil {
		v := strings.TrimSpace(*in.Date)
		*in.Date = v
	}
	if in.Time != nil {
		v := strings.TrimSpace(*in.Time)
		*in.Time = v
	}
}

func sortNewestFirst(list []CheckIn) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Timestamp > list[j].Timestamp
	})
}
