package poker

import (
	"testing"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cards
}

func TestEvaluate5Categories(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cards string
		want  HandType
	}{
		{"high card", "As Kh 9d 5c 2s", HighCard},
		{"pair", "As Ah 9d 5c 2s", Pair},
		{"two pair", "As Ah 9d 9c 2s", TwoPair},
		{"trips", "As Ah Ad 9c 2s", ThreeOfAKind},
		{"straight", "9s 8h 7d 6c 5s", Straight},
		{"wheel", "As 2h 3d 4c 5s", Straight},
		{"broadway", "As Kh Qd Jc Ts", Straight},
		{"flush", "As Ks 9s 5s 2s", Flush},
		{"full house", "As Ah Ad 9c 9s", FullHouse},
		{"quads", "As Ah Ad Ac 2s", FourOfAKind},
		{"straight flush", "9s 8s 7s 6s 5s", StraightFlush},
		{"steel wheel", "As 2s 3s 4s 5s", StraightFlush},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Evaluate5(mustCards(t, tc.cards)).Type(); got != tc.want {
				t.Errorf("type = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluate5Ordering(t *testing.T) {
	t.Parallel()

	// Each hand must beat the next one down.
	ordered := []string{
		"Ts 9s 8s 7s 6s", // straight flush
		"As Ah Ad Ac 2s", // quads
		"Ks Kh Kd 2c 2s", // full house
		"As Ks 9s 5s 2s", // flush
		"9s 8h 7d 6c 5s", // straight
		"6s 2h 3d 4c 5s", // wheel, lower straight
		"Qs Qh Qd 9c 2s", // trips
		"Qs Qh 9d 9c 2s", // two pair
		"Qs Qh 9d 5c 2s", // pair
		"Ah Kh 9d 5c 2s", // high card
	}
	for i := 0; i < len(ordered)-1; i++ {
		a := Evaluate5(mustCards(t, ordered[i]))
		b := Evaluate5(mustCards(t, ordered[i+1]))
		if CompareHands(a, b) <= 0 {
			t.Errorf("%q should beat %q (%v vs %v)", ordered[i], ordered[i+1], a.Type(), b.Type())
		}
	}
}

func TestEvaluate5Kickers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		stronger string
		weaker   string
	}{
		{"pair kicker", "As Ah Kd 5c 2s", "As Ah Qd 5c 2s"},
		{"two pair high", "As Ah 3d 3c 2s", "Ks Kh Qd Qc 2s"},
		{"flush second card", "As Ks 9s 5s 2s", "As Qs Js Ts 8s"},
		{"full house trips rank", "9s 9h 9d 2c 2s", "8s 8h 8d Ac As"},
		{"straight high card", "Ts 9h 8d 7c 6s", "9s 8h 7d 6c 5s"},
		{"wheel below six high", "6s 5h 4d 3c 2s", "5s 4h 3d 2c As"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := Evaluate5(mustCards(t, tc.stronger))
			b := Evaluate5(mustCards(t, tc.weaker))
			if CompareHands(a, b) <= 0 {
				t.Errorf("%q should beat %q", tc.stronger, tc.weaker)
			}
		})
	}
}

func TestEvaluate5Ties(t *testing.T) {
	t.Parallel()

	a := Evaluate5(mustCards(t, "As Kh 9d 5c 2s"))
	b := Evaluate5(mustCards(t, "Ad Ks 9c 5h 2d"))
	if CompareHands(a, b) != 0 {
		t.Errorf("suit-only difference should tie: %v vs %v", a, b)
	}
}

func TestEvaluate7PicksBestFive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cards string
		want  HandType
	}{
		{"flush hidden in seven", "As Ks 2d 9s 5s Jc 2s", Flush},
		{"board straight", "Ah 2h 9s 8d 7c 6s 5d", Straight},
		{"full house over two pair", "As Ah 9d 9c 9s Kc Kd", FullHouse},
		{"six cards", "As Ah Ad 9c 9s 2d", FullHouse},
		{"five cards pass through", "As Kh 9d 5c 2s", HighCard},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Evaluate7(mustCards(t, tc.cards)).Type(); got != tc.want {
				t.Errorf("type = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluate7EqualsBestEvaluate5(t *testing.T) {
	t.Parallel()

	cards := mustCards(t, "As Ks Qs Js Ts 2d 3c")
	got := Evaluate7(cards)
	want := Evaluate5(mustCards(t, "As Ks Qs Js Ts"))
	if got != want {
		t.Errorf("Evaluate7 = %v, want royal flush rank %v", got, want)
	}
}
