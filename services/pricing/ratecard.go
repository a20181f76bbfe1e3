package pricing

import (
	"fmt"

	"travelin/internal/pkg/models"
)

// RateCardSet holds the static per-class pricing configuration. It is
// loaded once at process start and never mutated afterwards.
type RateCardSet struct {
	byClass map[string]models.RateCard
	ordered []models.RateCard
}

// NewRateCardSet validates and indexes a set of rate cards
func NewRateCardSet(cards []models.RateCard) (*RateCardSet, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("rate card set must not be empty")
	}

	byClass := make(map[string]models.RateCard, len(cards))
	for _, card := range cards {
		if card.ClassID == "" {
			return nil, fmt.Errorf("rate card is missing a class ID")
		}
		if _, exists := byClass[card.ClassID]; exists {
			return nil, fmt.Errorf("duplicate rate card class ID: %s", card.ClassID)
		}
		if card.BaseFare < 0 || card.PerKm < 0 || card.PerMinute < 0 {
			return nil, fmt.Errorf("rate card %s has a negative amount", card.ClassID)
		}
		if card.Capacity <= 0 {
			return nil, fmt.Errorf("rate card %s must have a positive capacity", card.ClassID)
		}
		byClass[card.ClassID] = card
	}

	return &RateCardSet{
		byClass: byClass,
		ordered: append([]models.RateCard(nil), cards...),
	}, nil
}

// Resolve returns the rate card for a vehicle class
func (s *RateCardSet) Resolve(classID string) (models.RateCard, bool) {
	card, ok := s.byClass[classID]
	return card, ok
}

// All returns the rate cards in their configured order
func (s *RateCardSet) All() []models.RateCard {
	return append([]models.RateCard(nil), s.ordered...)
}

// DefaultRateCards returns the production rate card set, in whole rupiah
func DefaultRateCards() []models.RateCard {
	return []models.RateCard{
		{
			ClassID:   "mpv-regular",
			Name:      "MPV Regular",
			BaseFare:  10000,
			PerKm:     5000,
			PerMinute: 500,
			Capacity:  4,
		},
		{
			ClassID:   "mpv-premium",
			Name:      "MPV Premium",
			BaseFare:  15000,
			PerKm:     7000,
			PerMinute: 700,
			Capacity:  6,
		},
		{
			ClassID:   "electric",
			Name:      "Electric Vehicle",
			BaseFare:  20000,
			PerKm:     8000,
			PerMinute: 800,
			Capacity:  4,
		},
	}
}
