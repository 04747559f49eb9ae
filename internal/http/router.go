package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"

	"github.com/Sidraque/Gym-NR/internal/config"
	"github.com/Sidraque/Gym-NR/internal/domain/checkins"
	"github.com/Sidraque/Gym-NR/internal/domain/dashboard"
	"github.com/Sidraque/Gym-NR/internal/domain/members"
	"github.com/Sidraque/Gym-NR/internal/domain/payments"
	"github.com/Sidraque/Gym-NR/internal/domain/plans"
	"github.com/Sidraque/Gym-NR/internal/domain/trainers"
	"github.com/Sidraque/Gym-NR/internal/logging"
	"github.com/Sidraque/Gym-NR/internal/middleware"
)

type RouterDeps struct {
	Cfg          config.Config
	AuthClient   *auth.Client
	MembersSvc   *members.Service
	TrainersSvc  *trainers.Service
	PlansSvc     *plans.Service
	PaymentsSvc  *payments.Service
	CheckInsSvc  *checkins.Service
	DashboardSvc *dashboard.Service
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(logging.Requests())
	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// Protected routes
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, ok := middleware.GetAuthUser(r.Context())
			if !ok {
				Fail(w, 401, "unauthenticated")
				return
			}
			WriteJSON(w, 200, map[string]any{
				"uid":   au.UID,
				"email": au.Email,
			})
		})

		// ===== Member routes =====
		pr.Get("/v1/members", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.MembersSvc.List(r.Context(), r.URL.Query().Get("q"))
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"members": out})
		})

		pr.Post("/v1/members", func(w http.ResponseWriter, r *http.Request) {
			var in members.CreateMemberInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.MembersSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/members/{memberId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.MembersSvc.Get(r.Context(), chi.URLParam(r, "memberId"))
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/members/{memberId}", func(w http.ResponseWriter, r *http.Request) {
			var in members.UpdateMemberInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.MembersSvc.Update(r.Context(), chi.URLParam(r, "memberId"), in)
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/members/{memberId}", func(w http.ResponseWriter, r *http.Request) {
			memberId := chi.URLParam(r, "memberId")
			if err := d.MembersSvc.Delete(r.Context(), memberId); err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": memberId})
		})

		pr.Get("/v1/members/{memberId}/payments", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.PaymentsSvc.ListByMember(r.Context(), chi.URLParam(r, "memberId"))
			if err != nil {
				status, msg := mapPaymentsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"payments": out})
		})

		pr.Get("/v1/members/{memberId}/checkins", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.CheckInsSvc.ListByMember(r.Context(), chi.URLParam(r, "memberId"))
			if err != nil {
				status, msg := mapCheckInsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"checkIns": out})
		})

		// ===== Trainer routes =====
		pr.Get("/v1/trainers", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TrainersSvc.ListAll(r.Context())
			if err != nil {
				status, msg := mapTrainersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"trainers": out})
		})

		pr.Post("/v1/trainers", func(w http.ResponseWriter, r *http.Request) {
			var in trainers.CreateTrainerInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.TrainersSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapTrainersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/trainers/{trainerId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TrainersSvc.Get(r.Context(), chi.URLParam(r, "trainerId"))
			if err != nil {
				status, msg := mapTrainersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/trainers/{trainerId}", func(w http.ResponseWriter, r *http.Request) {
			var in trainers.UpdateTrainerInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.TrainersSvc.Update(r.Context(), chi.URLParam(r, "trainerId"), in)
			if err != nil {
				status, msg := mapTrainersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/trainers/{trainerId}", func(w http.ResponseWriter, r *http.Request) {
			trainerId := chi.URLParam(r, "trainerId")
			if err := d.TrainersSvc.Delete(r.Context(), trainerId); err != nil {
				status, msg := mapTrainersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": trainerId})
		})

		// ===== Plan routes =====
		pr.Get("/v1/plans", func(w http.ResponseWriter, r *http.Request) {
			activeOnly := r.URL.Query().Get("active") == "true"
			out, err := d.PlansSvc.List(r.Context(), activeOnly)
			if err != nil {
				status, msg := mapPlansError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"plans": out})
		})

		pr.Post("/v1/plans", func(w http.ResponseWriter, r *http.Request) {
			var in plans.CreatePlanInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.PlansSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapPlansError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/plans/{planId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.PlansSvc.Get(r.Context(), chi.URLParam(r, "planId"))
			if err != nil {
				status, msg := mapPlansError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/plans/{planId}", func(w http.ResponseWriter, r *http.Request) {
			var in plans.UpdatePlanInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.PlansSvc.Update(r.Context(), chi.URLParam(r, "planId"), in)
			if err != nil {
				status, msg := mapPlansError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/plans/{planId}", func(w http.ResponseWriter, r *http.Request) {
			planId := chi.URLParam(r, "planId")
			if err := d.PlansSvc.Delete(r.Context(), planId); err != nil {
				status, msg := mapPlansError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": planId})
		})

		// ===== Payment routes =====
		pr.Get("/v1/payments", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.PaymentsSvc.ListAll(r.Context())
			if err != nil {
				status, msg := mapPaymentsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"payments": out})
		})

		// Recording a payment also renews the member; see payments.Service.Record.
		pr.Post("/v1/payments", func(w http.ResponseWriter, r *http.Request) {
			var in payments.RecordPaymentInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.PaymentsSvc.Record(r.Context(), in)
			if err != nil {
				status, msg := mapPaymentsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/payments/upcoming", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.PaymentsSvc.Upcoming(r.Context())
			if err != nil {
				status, msg := mapPaymentsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"payments": out})
		})

		pr.Get("/v1/payments/total", func(w http.ResponseWriter, r *http.Request) {
			now := time.Now().UTC()
			year, month := now.Year(), int(now.Month())
			if v := r.URL.Query().Get("year"); v != "" {
				if n, err := strconv.Atoi(v); err == nil {
					year = n
				}
			}
			if v := r.URL.Query().Get("month"); v != "" {
				if n, err := strconv.Atoi(v); err == nil {
					month = n
				}
			}

			total, err := d.PaymentsSvc.TotalForMonth(r.Context(), year, month)
			if err != nil {
				status, msg := mapPaymentsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"year": year, "month": month, "total": total})
		})

		pr.Get("/v1/payments/{paymentId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.PaymentsSvc.Get(r.Context(), chi.URLParam(r, "paymentId"))
			if err != nil {
				status, msg := mapPaymentsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/payments/{paymentId}", func(w http.ResponseWriter, r *http.Request) {
			var in payments.UpdatePaymentInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.PaymentsSvc.Update(r.Context(), chi.URLParam(r, "paymentId"), in)
			if err != nil {
				status, msg := mapPaymentsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/payments/{paymentId}", func(w http.ResponseWriter, r *http.Request) {
			paymentId := chi.URLParam(r, "paymentId")
			if err := d.PaymentsSvc.Delete(r.Context(), paymentId); err != nil {
				status, msg := mapPaymentsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": paymentId})
		})

		// ===== Check-in routes =====
		pr.Get("/v1/checkins", func(w http.ResponseWriter, r *http.Request) {
			yearStr := r.URL.Query().Get("year")
			monthStr := r.URL.Query().Get("month")

			if yearStr != "" && monthStr != "" {
				year, err1 := strconv.Atoi(yearStr)
				month, err2 := strconv.Atoi(monthStr)
				if err1 != nil || err2 != nil {
					Fail(w, 400, "year and month must be numbers")
					return
				}
				out, err := d.CheckInsSvc.ListForMonth(r.Context(), year, month)
				if err != nil {
					status, msg := mapCheckInsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"checkIns": out})
				return
			}

			out, err := d.CheckInsSvc.ListAll(r.Context())
			if err != nil {
				status, msg := mapCheckInsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"checkIns": out})
		})

		pr.Post("/v1/checkins", func(w http.ResponseWriter, r *http.Request) {
			var in struct {
				MemberID string `json:"memberId"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.CheckInsSvc.Create(r.Context(), in.MemberID)
			if err != nil {
				status, msg := mapCheckInsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Put("/v1/checkins/{checkInId}", func(w http.ResponseWriter, r *http.Request) {
			var in checkins.UpdateCheckInInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.CheckInsSvc.Update(r.Context(), chi.URLParam(r, "checkInId"), in)
			if err != nil {
				status, msg := mapCheckInsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/checkins/{checkInId}", func(w http.ResponseWriter, r *http.Request) {
			checkInId := chi.URLParam(r, "checkInId")
			if err := d.CheckInsSvc.Delete(r.Context(), checkInId); err != nil {
				status, msg := mapCheckInsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": checkInId})
		})

		// ===== Dashboard =====
		pr.Get("/v1/dashboard", func(w http.ResponseWriter, r *http.Request) {
			snap, err := d.DashboardSvc.Snapshot(r.Context())
			if err != nil {
				Fail(w, 500, err.Error())
				return
			}
			WriteJSON(w, 200, snap)
		})
	})

	return r
}

func mapMembersError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case members.IsErrNotFound(err):
		return 404, err.Error()
	case members.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapTrainersError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case trainers.IsErrNotFound(err):
		return 404, err.Error()
	case trainers.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapPlansError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case plans.IsErrNotFound(err):
		return 404, err.Error()
	case plans.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapPaymentsError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case payments.IsErrNotFound(err):
		return 404, err.Error()
	case payments.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapCheckInsError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case checkins.IsErrNotFound(err):
		return 404, err.Error()
	case checkins.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}
