package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dearfuture/letters/internal/letters"
)

// Search finds the user's letters by case-insensitive substring over title,
// content and caption.
func (a *App) Search(ctx context.Context) error {
	q, err := GetSimpleText(a.reader, "- Search for", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ls := a.repo.Search(a.userID, q)
	if len(ls) == 0 {
		fmt.Println("Nothing matched.")
		return nil
	}
	for i := range ls {
		fmt.Println(describe(i, &ls[i]))
	}
	return nil
}

// ByMood lists the user's letters carrying one mood.
func (a *App) ByMood(ctx context.Context) error {
	mood, err := a.pickMood()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ls := a.repo.ListByMood(a.userID, mood)
	if len(ls) == 0 {
		fmt.Printf("No %s letters.\n", mood)
		return nil
	}
	for i := range ls {
		fmt.Println(describe(i, &ls[i]))
	}
	return nil
}

// Stats prints the user's collection summary.
func (a *App) Stats(ctx context.Context) error {
	s := a.repo.Stats(a.userID)

	fmt.Printf("Total: %d  Delivered: %d  Sealed: %d\n", s.Total, s.Delivered, s.Upcoming)
	if len(s.ByMood) == 0 {
		return nil
	}
	fmt.Println("By mood:")
	for _, e := range letters.Catalog() {
		if n := s.ByMood[e.Value]; n > 0 {
			fmt.Printf("  %s %-10s %d\n", e.Emoji, e.Label, n)
		}
	}
	return nil
}
