package service

import (
	"math"

	"github.com/fieldtrack/fieldtrack-backend/internal/report/domain"
)

// employeeAccumulator is the per-employee running state of the fold. One is
// created the first time a row for that employee is seen; it is finalized
// exactly once after the last row.
type employeeAccumulator struct {
	id       string
	name     string
	email    string
	sessions []domain.SessionDetail
	checkins int
	rawHours float64
	clients  map[string]struct{}
}

// buildDailySummary folds the ordered joined rows into the two-level report.
// Rows arrive ordered by employee name then check-in time; first-seen order
// is preserved in the breakdown. The computation is pure and request-scoped.
func buildDailySummary(params ReportParams, rows []domain.AttendanceRow) *domain.DailySummary {
	accumulators := make(map[string]*employeeAccumulator)
	order := make([]string, 0)

	team := domain.TeamSummary{}
	var teamRawHours float64

	for i := range rows {
		row := &rows[i]

		acc, ok := accumulators[row.EmployeeID]
		if !ok {
			acc = &employeeAccumulator{
				id:       row.EmployeeID,
				name:     row.EmployeeName,
				email:    row.EmployeeEmail,
				sessions: make([]domain.SessionDetail, 0),
				clients:  make(map[string]struct{}),
			}
			accumulators[row.EmployeeID] = acc
			order = append(order, row.EmployeeID)
			team.TotalEmployees++
		}

		if !row.HasCheckin() {
			continue
		}

		// Hours are defined only for closed sessions. Open sessions keep a
		// nil Hours field and contribute zero to the running sums; they are
		// never estimated to now in the report path.
		var hours *float64
		var rawHours float64
		if row.CheckoutTime != nil && row.CheckinTime != nil {
			rawHours = row.CheckoutTime.Sub(*row.CheckinTime).Hours()
			rounded := roundHours(rawHours)
			hours = &rounded
		}

		detail := domain.SessionDetail{
			CheckinID:    *row.CheckinID,
			ClientName:   row.ClientName,
			CheckinTime:  *row.CheckinTime,
			CheckoutTime: row.CheckoutTime,
			Hours:        hours,
			Distance:     row.Distance,
			Notes:        row.Notes,
		}

		acc.sessions = append(acc.sessions, detail)
		acc.checkins++
		acc.rawHours += rawHours
		if row.ClientID != nil {
			acc.clients[*row.ClientID] = struct{}{}
		}

		team.TotalCheckins++
		teamRawHours += rawHours
	}

	breakdown := make([]domain.EmployeeSummary, 0, len(order))
	for _, id := range order {
		acc := accumulators[id]
		clientsVisited := len(acc.clients)
		team.TotalClientsVisited += clientsVisited

		breakdown = append(breakdown, domain.EmployeeSummary{
			EmployeeID:        acc.id,
			EmployeeName:      acc.name,
			EmployeeEmail:     acc.email,
			TotalCheckins:     acc.checkins,
			TotalWorkingHours: roundHours(acc.rawHours),
			ClientsVisited:    clientsVisited,
			Checkins:          acc.sessions,
		})
	}

	team.TotalWorkingHours = roundHours(teamRawHours)

	return &domain.DailySummary{
		Date:              params.Date,
		EmployeeIDFilter:  params.EmployeeFilter,
		TeamSummary:       team,
		EmployeeBreakdown: breakdown,
	}
}

// roundHours rounds to two decimals, half-up at the third decimal digit
// (3.005 -> 3.01, 3.004 -> 3.00). The intermediate rounding to three
// decimals keeps values like 3.005, which binary floats store slightly
// below their nominal value, from rounding down at the second decimal.
func roundHours(h float64) float64 {
	h = math.Floor(h*1000+0.5) / 1000
	return math.Floor(h*100+0.5) / 100
}
