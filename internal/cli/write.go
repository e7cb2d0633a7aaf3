package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dearfuture/letters/internal/letters"
)

// parseSchedule turns user input into a delivery date. Accepted forms:
//
//	+30d            — days from now
//	2027-06-01      — a calendar date (local midnight)
//	RFC 3339        — full timestamp
func parseSchedule(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "+") && strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(s, "+"), "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("bad day offset %q", s)
		}
		return now.AddDate(0, 0, days), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("cannot parse %q (want +Nd, YYYY-MM-DD or RFC 3339)", s)
}

// pickMood shows the catalog and reads a choice, by number or by value.
func (a *App) pickMood() (letters.Mood, error) {
	cat := letters.Catalog()
	for i, e := range cat {
		fmt.Printf("  %d. %s %s\n", i+1, e.Emoji, e.Label)
	}

	choice, err := GetSimpleText(a.reader, "- Pick a mood (number or name)", os.Stdout)
	if err != nil {
		return "", err
	}

	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(cat) {
		return cat[n-1].Value, nil
	}
	m := letters.Mood(strings.ToLower(choice))
	if letters.ValidMood(m) {
		return m, nil
	}
	return "", fmt.Errorf("unknown mood %q", choice)
}

// Write composes a new letter interactively and adds it to the collection.
func (a *App) Write(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "- Title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, err := GetMultiline(a.reader, "- Dear future self...", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	mood, err := a.pickMood()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	when, err := GetSimpleText(a.reader, "- Deliver on (+Nd, YYYY-MM-DD or RFC 3339)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	scheduled, err := parseSchedule(when, time.Now())
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	image, err := GetSimpleText(a.reader, "- Image URI (optional, Enter to skip)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	var caption string
	if image != "" {
		caption, err = GetSimpleText(a.reader, "- Caption (optional)", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
	}

	id, err := a.repo.Add(ctx, letters.Draft{
		Title:         title,
		Content:       content,
		Mood:          mood,
		ScheduledDate: scheduled,
		UserID:        a.userID,
		Image:         image,
		Caption:       caption,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	l, getErr := a.repo.GetByID(id)
	if getErr == nil && !l.IsDelivered {
		fmt.Printf("Sealed. It unlocks in %d day(s).\n", l.DaysUntilDeliveryAt(time.Now()))
	} else {
		fmt.Println("Saved. It is already deliverable.")
	}
	return nil
}
