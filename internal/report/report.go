package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

// Render - writes the table of winning lines and a summary of which card to choose.
func Render(w io.Writer, fileID string, outcome *entity.Outcome) error {
	if _, err := fmt.Fprintf(w, "============ Squid Bingo Results | File %s ============\n\n", fileID); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := renderTable(w, outcome.Winners); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", Summary(outcome)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

func renderTable(w io.Writer, winners []entity.WinEvent) error {
	if _, err := fmt.Fprintln(w, "Table of results:"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\trow\tcolumn\tid")

	for i, win := range winners {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, formatIndex(win.Row), formatIndex(win.Column), win.ID)
	}

	return tw.Flush()
}

// Summary - describes the outcome for any number of winning cards.
func Summary(outcome *entity.Outcome) string {
	cards := outcome.WinningCards()

	var when string
	if outcome.Call != nil {
		when = fmt.Sprintf(" Bingo is called on number %d (call %d of %d).", *outcome.Call, outcome.Turn, outcome.CallCount)
	}

	switch len(cards) {
	case 0:
		return fmt.Sprintf("None of the %d cards can win with these %d calls. I'm afraid the player may have to die at sea.",
			outcome.CardCount, outcome.CallCount)
	case 1:
		return fmt.Sprintf("In order to beat this squid at bingo, the player must choose %s.%s", cards[0], when)
	default:
		if len(cards) == outcome.CardCount {
			return fmt.Sprintf("All %d cards win at the same time... Maybe the squid will let you go on a tie?%s", len(cards), when)
		}

		return fmt.Sprintf("In order to beat this squid at bingo, the player must choose either %s and hope the squid doesn't pick any of these!%s",
			joinChoices(cards), when)
	}
}

func joinChoices(cards []string) string {
	last := len(cards) - 1

	return strings.Join(cards[:last], ", ") + " or " + cards[last]
}

func formatIndex(index *int) string {
	if index == nil {
		return "-"
	}

	return fmt.Sprint(*index)
}
