package matches

import (
	"context"
	"time"
)

// Mutual is one reciprocal trade: the partner holds a spare copy of a card the
// user wants, and wants a card the user holds a spare copy of.
type Mutual struct {
	PartnerID      uint64 `json:"partnerID"`
	PartnerName    string `json:"partnerName"`
	IWantCardID    string `json:"iWant_cardID"`
	IWantName      string `json:"iWant_name"`
	TheyWantCardID string `json:"theyWant_cardID"`
	TheyWantName   string `json:"theyWant_name"`
	RarityRequired string `json:"rarityRequired"`
}

// Opportunity is another user wishing for a card the user holds spares of.
type Opportunity struct {
	OwnerID   uint64    `json:"ownerID"`
	OwnerName string    `json:"ownerName"`
	CardID    string    `json:"cardID"`
	CardName  string    `json:"cardName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Matches is read-only and computed fresh on every call.
type Matches interface {
	Mutual(ctx context.Context, userID uint64, sameRarity bool) ([]Mutual, error)
	Opportunities(ctx context.Context, userID uint64) ([]Opportunity, error)
}
