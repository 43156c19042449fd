package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	red    *color.Color
	bold   *color.Color
}

// NewOutput creates a new Output formatter writing to stdout.
// Colour is used only when stdout is a terminal and noColor is false
func NewOutput(format string, noColor bool) *Output {
	return NewOutputTo(os.Stdout, format, !noColor && term.IsTerminal(int(os.Stdout.Fd())))
}

// NewOutputTo creates an Output writing to w
func NewOutputTo(w io.Writer, format string, useColor bool) *Output {
	o := &Output{
		format: format,
		w:      w,
		red:    color.New(color.FgRed),
		bold:   color.New(color.Bold),
	}
	if useColor {
		o.red.EnableColor()
		o.bold.EnableColor()
	} else {
		o.red.DisableColor()
		o.bold.DisableColor()
	}
	return o
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Table:
		o.printTable(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Card response type (matches API)
type Card struct {
	Code    string `json:"code,omitempty"`
	Display string `json:"display"`
	Hidden  bool   `json:"hidden,omitempty"`
}

// Hand response type
type Hand struct {
	Cards   []Card `json:"cards"`
	Score   *int   `json:"score"`
	Soft    bool   `json:"soft"`
	Bust    bool   `json:"bust"`
	Natural bool   `json:"natural"`
}

// Dealer response type
type Dealer struct {
	Name string `json:"name"`
	Hand Hand   `json:"hand"`
}

// Seat response type
type Seat struct {
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
	Bet     int64  `json:"bet"`
	Stake   int64  `json:"stake"`
	Hand    Hand   `json:"hand"`
	Status  string `json:"status"`
	Outcome string `json:"outcome,omitempty"`
	Payout  int64  `json:"payout"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Ties    int    `json:"ties"`
}

// SeatResult response type
type SeatResult struct {
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
	Cards   []Card `json:"cards"`
	Score   int    `json:"score"`
	Outcome string `json:"outcome"`
	Bet     int64  `json:"bet"`
	Payout  int64  `json:"payout"`
}

// RoundSummary response type
type RoundSummary struct {
	Round       int          `json:"round"`
	RoundID     string       `json:"round_id"`
	DealerCards []Card       `json:"dealer_cards"`
	DealerScore int          `json:"dealer_score"`
	Results     []SeatResult `json:"results"`
}

// Table response type
type Table struct {
	ID            string         `json:"id"`
	Phase         string         `json:"phase"`
	Round         int            `json:"round"`
	RoundID       string         `json:"round_id,omitempty"`
	ActingSeat    *int           `json:"acting_seat"`
	DeckRemaining int            `json:"deck_remaining"`
	Dealer        Dealer         `json:"dealer"`
	Seats         []Seat         `json:"seats"`
	History       []RoundSummary `json:"history"`
}

// HealthResult response type
type HealthResult struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
}

func (o *Output) printTable(t Table) {
	_, _ = fmt.Fprintf(o.w, "Table: %s\n", o.bold.Sprint(t.ID))
	_, _ = fmt.Fprintf(o.w, "Round: %d (%s)\n", t.Round, t.Phase)
	_, _ = fmt.Fprintf(o.w, "Cards left: %d\n", t.DeckRemaining)

	_, _ = fmt.Fprintf(o.w, "\n%s: %s\n", t.Dealer.Name, o.formatHand(t.Dealer.Hand))

	_, _ = fmt.Fprintln(o.w, "\nSeats:")
	for _, s := range t.Seats {
		marker := "  "
		if t.ActingSeat != nil && *t.ActingSeat == s.Seat {
			marker = "> "
		}
		_, _ = fmt.Fprintf(o.w, "%s[%d] %s - balance %d", marker, s.Seat, s.Name, s.Balance)
		if s.Stake > 0 {
			_, _ = fmt.Fprintf(o.w, ", stake %d", s.Stake)
		}
		_, _ = fmt.Fprintf(o.w, " (%s)\n", s.Status)
		if len(s.Hand.Cards) > 0 {
			_, _ = fmt.Fprintf(o.w, "      %s\n", o.formatHand(s.Hand))
		}
		if s.Outcome != "" {
			_, _ = fmt.Fprintf(o.w, "      %s, paid %d\n", s.Outcome, s.Payout)
		}
	}

	if len(t.History) > 0 {
		last := t.History[len(t.History)-1]
		_, _ = fmt.Fprintf(o.w, "\nLast round (%d): dealer %d\n", last.Round, last.DealerScore)
		for _, r := range last.Results {
			_, _ = fmt.Fprintf(o.w, "  [%d] %s: %s (%d), bet %d, paid %d\n",
				r.Seat, r.Name, r.Outcome, r.Score, r.Bet, r.Payout)
		}
	}
}

// formatHand renders cards with red suits coloured, followed by the score
func (o *Output) formatHand(h Hand) string {
	if len(h.Cards) == 0 {
		return "(no cards)"
	}

	cards := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		cards[i] = o.formatCard(c)
	}

	var score string
	switch {
	case h.Score == nil:
		score = "?"
	case h.Natural:
		score = fmt.Sprintf("%d blackjack", *h.Score)
	case h.Bust:
		score = fmt.Sprintf("%d bust", *h.Score)
	case h.Soft:
		score = fmt.Sprintf("soft %d", *h.Score)
	default:
		score = fmt.Sprintf("%d", *h.Score)
	}

	return fmt.Sprintf("%s  = %s", strings.Join(cards, " "), score)
}

func (o *Output) formatCard(c Card) string {
	if isRed(c) {
		return o.red.Sprint(c.Display)
	}
	return c.Display
}

// isRed reports whether the card is a heart or a diamond
func isRed(c Card) bool {
	if c.Hidden || c.Code == "" {
		return false
	}
	suit := c.Code[len(c.Code)-1]
	return suit == 'H' || suit == 'D'
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.Storage != "" {
		_, _ = fmt.Fprintf(o.w, "Storage: %s\n", h.Storage)
	}
}
