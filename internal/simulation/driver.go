package simulation

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/squid-bingo/internal/bingo"
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

// Driver plays the calls of a bingo file against its cards until the first call that produces a win.
type Driver struct {
	logger  *slog.Logger
	policy  bingo.MarkPolicy
	workers int
}

type Option func(*Driver)

func WithMarkPolicy(policy bingo.MarkPolicy) Option {
	return func(that *Driver) {
		that.policy = policy
	}
}

// WithWorkers - spreads marking and checking of the cards over n goroutines. n <= 1 plays sequentially.
func WithWorkers(n int) Option {
	return func(that *Driver) {
		that.workers = n
	}
}

func New(logger *slog.Logger, opts ...Option) *Driver {
	driver := &Driver{
		logger:  logger.With("component", "simulation"),
		policy:  bingo.MarkOncePerCell,
		workers: 1,
	}

	for _, opt := range opts {
		opt(driver)
	}

	return driver
}

// Play - applies every call to all cards, then checks all cards, and stops after the first call
// with at least one win. Wins of several cards on the same call are all returned together.
// Running out of calls without a win is a valid outcome with no winners.
func (that *Driver) Play(data *entity.BingoData) *entity.Outcome {
	cards := NewCards(data.Grids, that.policy)

	outcome := &entity.Outcome{
		Winners:   []entity.WinEvent{},
		CardCount: len(cards),
		CallCount: len(data.Calls),
	}

	for turn, call := range data.Calls {
		that.mark(cards, call)

		wins := that.check(cards)
		if len(wins) == 0 {
			continue
		}

		winningCall := call
		outcome.Winners = wins
		outcome.Call = &winningCall
		outcome.Turn = turn + 1

		that.logger.Debug("bingo", "call", call, "turn", turn+1, "wins", len(wins))

		break
	}

	return outcome
}

// NewCards - creates one card per grid, named "Card 1", "Card 2", ... in grid order.
func NewCards(grids []entity.Grid, policy bingo.MarkPolicy) []*bingo.Card {
	cards := make([]*bingo.Card, 0, len(grids))
	for i, grid := range grids {
		cards = append(cards, bingo.NewCard(grid, fmt.Sprintf("Card %d", i+1), policy))
	}

	return cards
}

func (that *Driver) mark(cards []*bingo.Card, call int) {
	if that.workers <= 1 {
		for _, card := range cards {
			card.Mark(call)
		}

		return
	}

	var group errgroup.Group
	group.SetLimit(that.workers)

	for _, card := range cards {
		group.Go(func() error {
			card.Mark(call)
			return nil
		})
	}

	// every card must be marked before any card is checked
	_ = group.Wait()
}

// check - collects the wins of all cards in card order.
func (that *Driver) check(cards []*bingo.Card) []entity.WinEvent {
	perCard := make([][]entity.WinEvent, len(cards))

	if that.workers <= 1 {
		for i, card := range cards {
			perCard[i] = card.CheckWin()
		}
	} else {
		var group errgroup.Group
		group.SetLimit(that.workers)

		for i, card := range cards {
			group.Go(func() error {
				perCard[i] = card.CheckWin()
				return nil
			})
		}

		_ = group.Wait()
	}

	var wins []entity.WinEvent
	for _, cardWins := range perCard {
		wins = append(wins, cardWins...)
	}

	return wins
}
