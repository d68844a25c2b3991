package utils

import "time"

// Jakarta time (WIB, +07:00). Visit timestamps are stored as UTC epochs and
// only rendered in WIB for the reception views.
var jakartaLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}()

var indonesianDays = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

var indonesianMonths = map[time.Month]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsWIB converts an epoch value in seconds to Jakarta time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsWIB(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(jakartaLoc)
}

// FormatVisitTime renders "Senin, 2 Juni 2025 - 14:05", the long id-ID form
// the reception dashboard shows for schedule and history rows.
func FormatVisitTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(jakartaLoc)
	return indonesianDays[t.Weekday()] + ", " +
		t.Format("2 ") + indonesianMonths[t.Month()] + t.Format(" 2006 - 15:04")
}

// FormatCheckinNote renders the short "02/06/2025 14.05.33" form embedded in
// reception log notes.
func FormatCheckinNote(t time.Time) string {
	return t.In(jakartaLoc).Format("02/01/2006 15.04.05")
}
