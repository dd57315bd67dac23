package models

import "time"

// Booking is a reserved weekly slot with a teacher.
type Booking struct {
	ID        int64     `db:"id" json:"id"`
	TeacherID int64     `db:"teacher_id" json:"teacher_id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Weekday   string    `db:"weekday" json:"weekday"`
	Time      string    `db:"time" json:"time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Weekday pairs a schedule key with its display label.
type Weekday struct {
	Code  string
	Label string
}

// Weekdays lists schedule days in calendar order.
var Weekdays = []Weekday{
	{Code: "mon", Label: "Monday"},
	{Code: "tue", Label: "Tuesday"},
	{Code: "wed", Label: "Wednesday"},
	{Code: "thu", Label: "Thursday"},
	{Code: "fri", Label: "Friday"},
	{Code: "sat", Label: "Saturday"},
	{Code: "sun", Label: "Sunday"},
}

// LookupWeekday returns the weekday for a code such as "mon".
func LookupWeekday(code string) (Weekday, bool) {
	for _, d := range Weekdays {
		if d.Code == code {
			return d, true
		}
	}
	return Weekday{}, false
}
