package report

import (
	"sort"
	"time"

	"github.com/ali44ashhad/contractor/internal/attendance"
	"github.com/ali44ashhad/contractor/internal/update"
	"github.com/ali44ashhad/contractor/internal/user"
)

type slot struct {
	morning *string
	evening *string
}

// buildGrid menyusun grid tanggal×anggota dari daftar update mentah.
// Rentang inklusif; hari tanpa update tetap muncul dengan slot null.
func buildGrid(members []user.User, updates []update.Update, from, to time.Time) ([]ReportMember, []ReportDay) {
	sort.Slice(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})

	memberRows := make([]ReportMember, len(members))
	for i, m := range members {
		memberRows[i] = ReportMember{
			UserID: m.ID.String(),
			Name:   m.Name,
			Role:   m.Role,
		}
	}

	// (dayKey, userID) -> slot
	slots := make(map[time.Time]map[string]slot)
	for _, u := range updates {
		day := attendance.DayKey(u.UpdateDate)
		if slots[day] == nil {
			slots[day] = make(map[string]slot)
		}
		entry := slots[day][u.PostedBy.String()]
		id := u.ID.String()
		if u.UpdateType == update.TypeMorning {
			entry.morning = &id
		} else {
			entry.evening = &id
		}
		slots[day][u.PostedBy.String()] = entry
	}

	var days []ReportDay
	for day := attendance.DayKey(from); !day.After(attendance.DayKey(to)); day = day.AddDate(0, 0, 1) {
		row := ReportDay{
			Date:    day.Format("2006-01-02"),
			Entries: make([]ReportEntry, len(memberRows)),
		}
		for i, m := range memberRows {
			entry := slots[day][m.UserID]
			row.Entries[i] = ReportEntry{
				UserID:          m.UserID,
				MorningUpdateID: entry.morning,
				EveningUpdateID: entry.evening,
				IsPresent:       entry.morning != nil && entry.evening != nil,
			}
		}
		days = append(days, row)
	}

	return memberRows, days
}
