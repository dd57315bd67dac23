package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacksonrr3/tutor-booking/pkg/config"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "tutors", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=tutors sslmode=disable", DSN(cfg))

	cfg.URL = "postgres://u:p@db/tutors"
	assert.Equal(t, "postgres://u:p@db/tutors", DSN(cfg))
}
