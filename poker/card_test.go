package poker

import (
	"encoding/json"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		rank  Rank
		suit  Suit
	}{
		{"As", Ace, Spades},
		{"Kh", King, Hearts},
		{"Qd", Queen, Diamonds},
		{"Jc", Jack, Clubs},
		{"Ts", Ten, Spades},
		{"9h", Nine, Hearts},
		{"2c", Two, Clubs},
		{"ad", Ace, Diamonds},
		{"tC", Ten, Clubs},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if err != nil {
				t.Fatalf("ParseCard(%q) returned error: %v", tt.input, err)
			}
			if card.Rank != tt.rank || card.Suit != tt.suit {
				t.Errorf("ParseCard(%q) = %v, want rank %v suit %v", tt.input, card, tt.rank, tt.suit)
			}
		})
	}
}

func TestParseCardErrors(t *testing.T) {
	for _, input := range []string{"", "A", "Asd", "Xs", "Ax", "1s", "s A"} {
		if _, err := ParseCard(input); err == nil {
			t.Errorf("ParseCard(%q) should have failed", input)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AsKs Qh, 2d")
	if err != nil {
		t.Fatalf("ParseCards returned error: %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}
	want := []Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Spades},
		{Rank: Queen, Suit: Hearts},
		{Rank: Two, Suit: Diamonds},
	}
	for i, card := range cards {
		if card != want[i] {
			t.Errorf("card %d = %v, want %v", i, card, want[i])
		}
	}
}

func TestParseCardsErrors(t *testing.T) {
	for _, input := range []string{"A", "AsK", "AsXh", "As1h"} {
		if _, err := ParseCards(input); err == nil {
			t.Errorf("ParseCards(%q) should have failed", input)
		}
	}
}

func TestCardStrings(t *testing.T) {
	card := NewCard(Ace, Spades)
	if card.String() != "A♠" {
		t.Errorf("String() = %q, want %q", card.String(), "A♠")
	}
	if card.Compact() != "As" {
		t.Errorf("Compact() = %q, want %q", card.Compact(), "As")
	}
}

func TestCardCompactRoundTrip(t *testing.T) {
	for _, card := range AllCards() {
		parsed, err := ParseCard(card.Compact())
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", card, err)
		}
		if parsed != card {
			t.Errorf("round trip of %v produced %v", card, parsed)
		}
	}
}

func TestCardValid(t *testing.T) {
	if !NewCard(Two, Clubs).Valid() {
		t.Error("2c should be valid")
	}
	for _, card := range []Card{{Rank: 1, Suit: Spades}, {Rank: 15, Suit: Hearts}, {Rank: Ace, Suit: 4}, {}} {
		if card.Valid() {
			t.Errorf("%+v should be invalid", card)
		}
	}
}

func TestAllCardsDistinct(t *testing.T) {
	cards := AllCards()
	if len(cards) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(cards))
	}

	var set CardSet
	for _, card := range cards {
		if set.Contains(card) {
			t.Errorf("duplicate card %v", card)
		}
		set.Add(card)
	}
}

func TestCardJSON(t *testing.T) {
	cards := MustParseCards("AsKh")
	data, err := json.Marshal(cards)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `["As","Kh"]` {
		t.Errorf("marshal = %s", data)
	}

	var decoded []Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != cards[0] || decoded[1] != cards[1] {
		t.Errorf("round trip mismatch: %v", decoded)
	}

	if err := json.Unmarshal([]byte(`["Xx"]`), &decoded); err == nil {
		t.Error("invalid card should fail to unmarshal")
	}
}

func TestCardSet(t *testing.T) {
	cards := MustParseCards("AsKh2c")
	set := NewCardSet(cards)

	for _, card := range cards {
		if !set.Contains(card) {
			t.Errorf("set should contain %v", card)
		}
	}
	if set.Contains(NewCard(Queen, Diamonds)) {
		t.Error("set should not contain Qd")
	}
}
