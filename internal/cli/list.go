package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dearfuture/letters/internal/letters"
)

func describe(i int, l *letters.Letter) string {
	if l.IsDelivered {
		return fmt.Sprintf("%3d. [open]   %s (%s)", i+1, l.Title, l.Mood)
	}
	days := l.DaysUntilDeliveryAt(time.Now())
	return fmt.Sprintf("%3d. [sealed] %s (%s), %d day(s) left, %.0f%%",
		i+1, l.Title, l.Mood, days, l.Progress)
}

// List prints the user's letters in insertion order with their lock state.
func (a *App) List(ctx context.Context) error {
	ls := a.repo.ListByUser(a.userID)
	if len(ls) == 0 {
		fmt.Println("No letters yet. Try \"write\".")
		return nil
	}

	for i := range ls {
		fmt.Println(describe(i, &ls[i]))
	}
	return nil
}

// pickLetter lists the user's letters and reads a 1-based choice.
func (a *App) pickLetter(prompt string) (*letters.Letter, error) {
	ls := a.repo.ListByUser(a.userID)
	if len(ls) == 0 {
		fmt.Println("No letters yet.")
		return nil, nil
	}

	for i := range ls {
		fmt.Println(describe(i, &ls[i]))
	}

	choice, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(ls) {
		return nil, fmt.Errorf("no letter %q", choice)
	}
	return &ls[n-1], nil
}

// Read shows a letter's body, but only once it is delivered. A sealed
// letter is refused with its remaining countdown.
func (a *App) Read(ctx context.Context) error {
	l, err := a.pickLetter("- Which letter?")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if l == nil {
		return nil
	}

	if !l.IsDelivered {
		fmt.Printf("Still sealed: %d day(s) to go (%.0f%% of the wait behind you).\n",
			l.DaysUntilDeliveryAt(time.Now()), l.Progress)
		return nil
	}

	fmt.Printf("\n%s\nwritten %s, unlocked %s\n\n%s\n",
		l.Title,
		l.CreatedAt.Format("Jan 2, 2006"),
		l.ScheduledDate.Format("Jan 2, 2006"),
		l.Content)
	if l.Image != "" {
		fmt.Printf("\n[image] %s", l.Image)
		if l.Caption != "" {
			fmt.Printf(": %s", l.Caption)
		}
		fmt.Println()
	}
	return nil
}
