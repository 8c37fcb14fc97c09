package booking

import "errors"

var ErrInvalidPricingMode = errors.New("invalid pricing mode")

type PricingMode string

const (
	// PricingSingleNight charges one night regardless of stay length. This
	// reproduces the behavior the system has always had; it is almost
	// certainly a defect, which is why it is a switch and not a constant.
	PricingSingleNight PricingMode = "single_night"
	PricingPerNight    PricingMode = "per_night"
)

func NewPricingMode(s string) (PricingMode, error) {
	mode := PricingMode(s)
	switch mode {
	case PricingSingleNight, PricingPerNight:
		return mode, nil
	default:
		return "", ErrInvalidPricingMode
	}
}

type Pricer struct {
	mode PricingMode
}

func NewPricer(mode PricingMode) *Pricer {
	return &Pricer{mode: mode}
}

func (p *Pricer) TotalFor(nightly Money, period StayPeriod) Money {
	if p.mode == PricingPerNight {
		return nightly.Mul(period.Nights())
	}
	return nightly
}
