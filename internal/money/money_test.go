package money

import (
	"encoding/json"
	"testing"
)

func TestFromPoundsRounds(t *testing.T) {
	cases := []struct {
		pounds float64
		want   Pence
	}{
		{0, 0},
		{11.99, 1199},
		{0.20, 20},
		{5.00, 500},
		{1.005, 101},
	}

	for _, c := range cases {
		if got := FromPounds(c.pounds); got != c.want {
			t.Errorf("FromPounds(%v) = %d, want %d", c.pounds, got, c.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Pence(1199))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "11.99" {
		t.Fatalf("marshal = %s, want 11.99", b)
	}

	var p Pence
	if err := json.Unmarshal([]byte("5.2"), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 520 {
		t.Fatalf("unmarshal = %d, want 520", p)
	}
}

func TestMul(t *testing.T) {
	if got := Pence(1199).Mul(3); got != 3597 {
		t.Fatalf("Mul = %d, want 3597", got)
	}
}
