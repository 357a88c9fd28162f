package leave

import (
	"sort"
	"strconv"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/leave"
)

// GroupByYear buckets leave records by the year of their start date, newest
// year first. Used days count only approved leaves; records inside a bucket
// keep their input order.
func GroupByYear(leaves []leave.Leave) []leave.YearGroup {
	buckets := make(map[int]*leave.YearGroup)
	var years []int

	for _, l := range leaves {
		year := yearOf(l.StartDate)
		g, ok := buckets[year]
		if !ok {
			g = &leave.YearGroup{Year: year}
			buckets[year] = g
			years = append(years, year)
		}
		if l.Status == leave.StatusApproved {
			g.UsedDays += l.Days
		}
		g.Leaves = append(g.Leaves, leave.LeaveResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Type:      string(l.Type),
			StartDate: l.StartDate,
			EndDate:   l.EndDate,
			Days:      l.Days,
			Reason:    l.Reason,
			Status:    string(l.Status),
		})
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]leave.YearGroup, 0, len(years))
	for _, year := range years {
		groups = append(groups, *buckets[year])
	}
	return groups
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
