package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"index.html", "all.html", "goal.html", "profile.html", "request.html", "request_done.html", "booking.html", "booking_done.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestErrorTemplateRenders(t *testing.T) {
	tmpl := MustTemplates()
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "error.html", map[string]interface{}{
		"Title": "Not Found",
		"Data":  map[string]string{"Message": "teacher not found"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "teacher not found")
}

func TestURLHelpers(t *testing.T) {
	assert.Equal(t, "/booking/3/mon/10:00/", BookingURL(3, "mon", "10:00:00"))
	assert.Equal(t, "/goals/travel/", GoalURL("travel"))
	assert.Equal(t, "/profiles/7/", ProfileURL(7))
}
