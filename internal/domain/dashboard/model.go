package dashboard

import (
	"github.com/Sidraque/Gym-NR/internal/domain/checkins"
	"github.com/Sidraque/Gym-NR/internal/domain/members"
	"github.com/Sidraque/Gym-NR/internal/domain/trainers"
)

// Snapshot is the aggregate the dashboard renders: current counts and
// totals plus the previous-month figures for trend display. It is
// recomputed from scratch on every request.
type Snapshot struct {
	Members          []members.Member `json:"members"`
	MembersCount     int              `json:"membersCount"`
	MembersLastMonth int              `json:"membersLastMonth"`

	Trainers      []trainers.Trainer `json:"trainers"`
	TrainersCount int                `json:"trainersCount"`

	PaymentsAmount    float64 `json:"paymentsAmount"`
	PaymentsLastMonth float64 `json:"paymentsLastMonth"`

	CheckIns          []checkins.CheckIn `json:"checkIns"`
	CheckInsCount     int                `json:"checkInsCount"`
	CheckInsLastMonth int                `json:"checkInsLastMonth"`
}
