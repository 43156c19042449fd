package testutil

import "github.com/mcoot/moonlight21/internal/model"

// ParseCards parses short card codes such as "AS" or "10H"
func ParseCards(codes ...string) ([]model.Card, error) {
	cards := make([]model.Card, 0, len(codes))
	for _, code := range codes {
		c, err := model.ParseCard(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
