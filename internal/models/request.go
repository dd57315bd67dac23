package models

import "time"

// Request is a contact submission asking to be matched with a teacher.
type Request struct {
	ID        int64     `db:"id" json:"id"`
	GoalID    int64     `db:"goal_id" json:"goal_id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Time      string    `db:"time" json:"time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RequestTime is a weekly study budget offered on the request form.
type RequestTime struct {
	Code  string
	Label string
}

// RequestTimes lists the selectable weekly budgets.
var RequestTimes = []RequestTime{
	{Code: "1-2", Label: "1-2 hours a week"},
	{Code: "3-5", Label: "3-5 hours a week"},
	{Code: "5-7", Label: "5-7 hours a week"},
	{Code: "7-10", Label: "7-10 hours a week"},
}

// LookupRequestTime returns the option for a code such as "3-5".
func LookupRequestTime(code string) (RequestTime, bool) {
	for _, rt := range RequestTimes {
		if rt.Code == code {
			return rt, true
		}
	}
	return RequestTime{}, false
}
