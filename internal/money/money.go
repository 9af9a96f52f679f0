package money

import (
	"fmt"
	"math"
	"strconv"
)

// Pence is a monetary amount in whole pence. All price arithmetic in the
// cart and pricing packages happens on this type so repeated add-on and
// quantity multiplications never drift the way float accumulation does.
type Pence int64

// FromPounds converts a decimal pound amount (as menu data carries it)
// into whole pence, rounding half away from zero.
func FromPounds(pounds float64) Pence {
	return Pence(math.Round(pounds * 100))
}

func (p Pence) Pounds() float64 {
	return float64(p) / 100
}

// Mul scales the amount by a quantity.
func (p Pence) Mul(qty int) Pence {
	return p * Pence(qty)
}

func (p Pence) String() string {
	return fmt.Sprintf("£%.2f", p.Pounds())
}

// MarshalJSON emits the amount in pounds to two decimal places, the shape
// the storefront and the upstream checkout endpoint exchange.
func (p Pence) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(p.Pounds(), 'f', 2, 64)), nil
}

func (p *Pence) UnmarshalJSON(b []byte) error {
	pounds, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid money amount %q", string(b))
	}
	*p = FromPounds(pounds)
	return nil
}
