package settlement

import (
	"fmt"

	"github.com/mcoot/moonlight21/internal/model"
)

// Decide compares a player's hand with the dealer's final hand.
// Rules apply in order: player bust, dealer bust or player higher, equal, dealer higher
func Decide(player, dealer *model.Hand) model.Outcome {
	playerScore := player.Score()
	dealerScore := dealer.Score()

	switch {
	case playerScore > model.BlackjackScore:
		return model.OutcomeBust
	case dealerScore > model.BlackjackScore || playerScore > dealerScore:
		if player.IsNatural() {
			return model.OutcomeNatural
		}
		return model.OutcomeWin
	case playerScore == dealerScore:
		return model.OutcomePush
	default:
		return model.OutcomeLose
	}
}

// Apply moves money for the outcome and returns the amount credited to the balance
func Apply(account *model.Account, outcome model.Outcome) (int64, error) {
	switch outcome {
	case model.OutcomeWin, model.OutcomeNatural:
		return account.Win(outcome.Multiplier()), nil
	case model.OutcomePush:
		return account.Push(), nil
	case model.OutcomeLose, model.OutcomeBust:
		return account.Lose(), nil
	default:
		return 0, fmt.Errorf("unknown outcome %q", outcome)
	}
}
