package models

// Goal is a learning objective used to group teachers.
type Goal struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Value string `db:"value" json:"value"`
}

// TeacherGoal is one row of the teacher_goals join with the goal expanded.
type TeacherGoal struct {
	TeacherID int64 `db:"teacher_id"`
	Goal
}
