package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	"github.com/jacksonrr3/tutor-booking/internal/seed"
	"github.com/jacksonrr3/tutor-booking/migrations"
)

var (
	migrateFunc   = migrations.Run // mockable
	catalogueFunc = seed.Load      // mockable

	errHelp = errors.New("help provided")
)

type seedRunner interface {
	Run(ctx context.Context, catalogue *seed.Catalogue) error
}

type bookingLister interface {
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Booking, error)
}

type cacheFlusher interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type commandLine struct {
	db       *sql.DB
	seeder   seedRunner
	bookings bookingLister
	cache    cacheFlusher // nil when caching is disabled
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]     - run a goose command (up, down, status, version, redo, reset, up-to N, down-to N)")
	fmt.Fprintln(cli.out, "  seed                       - load the bundled goals and teachers")
	fmt.Fprintln(cli.out, "  bookings -teacher ID       - list bookings for a teacher")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	bookingsCmd := flag.NewFlagSet("bookings", flag.ContinueOnError)
	bookingsCmd.SetOutput(cli.out)
	bookingsTeacher := bookingsCmd.Int64("teacher", -1, "The teacher ID.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return migrateFunc(cli.db, args[2], args[3:]...)
	case "seed":
		catalogue, err := catalogueFunc()
		if err != nil {
			return err
		}
		if err := cli.seeder.Run(ctx, catalogue); err != nil {
			return err
		}
		if cli.cache != nil {
			if err := cli.cache.DeleteByPattern(ctx, "*"); err != nil {
				return fmt.Errorf("flush cache: %w", err)
			}
		}
		fmt.Fprintf(cli.out, "seeded %d goals and %d teachers\n", len(catalogue.Goals), len(catalogue.Teachers))
		return nil
	case "bookings":
		if err := bookingsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *bookingsTeacher < 0 {
			bookingsCmd.Usage()
			return errHelp
		}
		return cli.listBookings(ctx, *bookingsTeacher)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listBookings(ctx context.Context, teacherID int64) error {
	bookings, err := cli.bookings.ListByTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Fprintf(cli.out, "no bookings for teacher %d\n", teacherID)
		return nil
	}
	for _, b := range bookings {
		label := b.Weekday
		if day, ok := models.LookupWeekday(b.Weekday); ok {
			label = day.Label
		}
		fmt.Fprintf(cli.out, "%d\t%s %s\t%s\t%s\t%s\n", b.ID, label, models.SlotLabel(b.Time), b.Name, b.Phone, b.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
