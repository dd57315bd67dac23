// Package web embeds the HTML templates served by the site.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/jacksonrr3/tutor-booking/internal/models"
)

//go:embed templates/*.html
var files embed.FS

// FuncMap is available to every page template.
var FuncMap = template.FuncMap{
	"bookingURL": BookingURL,
	"goalURL":    GoalURL,
	"profileURL": ProfileURL,
	"slotLabel":  models.SlotLabel,
	"rating":     func(r float64) string { return fmt.Sprintf("%.1f", r) },
	"goalNames": func(goals []models.Goal) string {
		names := make([]string, 0, len(goals))
		for _, g := range goals {
			names = append(names, g.Value)
		}
		return strings.Join(names, ", ")
	},
}

// Templates parses every embedded page.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap).ParseFS(files, "templates/*.html")
}

// MustTemplates is Templates for process start-up and tests.
func MustTemplates() *template.Template {
	t, err := Templates()
	if err != nil {
		panic(err)
	}
	return t
}

// BookingURL links to the booking form for one slot, e.g. /booking/1/mon/10:00/.
func BookingURL(teacherID int64, day, slot string) string {
	return fmt.Sprintf("/booking/%d/%s/%s/", teacherID, url.PathEscape(day), models.SlotLabel(slot))
}

// GoalURL links to the teachers of a goal.
func GoalURL(goal string) string {
	return "/goals/" + url.PathEscape(goal) + "/"
}

// ProfileURL links to a teacher profile.
func ProfileURL(teacherID int64) string {
	return fmt.Sprintf("/profiles/%d/", teacherID)
}
