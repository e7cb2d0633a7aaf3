package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dearfuture/letters/internal/letters"
)

// Delete removes one of the user's letters. There is no undo.
func (a *App) Delete(ctx context.Context) error {
	l, err := a.pickLetter("- Delete which letter?")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if l == nil {
		return nil
	}

	if err := a.repo.Delete(ctx, l.ID); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Deleted %q.\n", l.Title)
	return nil
}

// Export writes the user's letters to a JSON file.
func (a *App) Export(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "- Export to file", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ls := a.repo.Export(a.userID)
	blob, err := letters.EncodeCollection(ls)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if err := os.WriteFile(path, blob, 0o660); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Exported %d letter(s) to %s.\n", len(ls), path)
	return nil
}

// Import bulk-loads letters from a previously exported JSON file.
func (a *App) Import(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "- Import from file", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	ls, err := letters.DecodeCollection(blob)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	n, err := a.repo.Import(ctx, ls)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Imported %d letter(s) (%d skipped).\n", n, len(ls)-n)
	return nil
}

// ClearAll wipes the whole collection, every user included, after an
// explicit confirmation.
func (a *App) ClearAll(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader,
		"- This deletes EVERY letter for EVERY user. Type \"yes\" to continue", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.repo.Clear(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("All letters removed.")
	return nil
}
