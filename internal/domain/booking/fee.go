package booking

// DefaultSurchargeBasisPoints is the 2% transaction surcharge.
const DefaultSurchargeBasisPoints = 200

// Quote is an advisory estimate. The reservation API returns the amount that
// is actually charged.
type Quote struct {
	NightlyRate Money
	Nights      int
	Base        Money
	Surcharge   Money
	Total       Money
}

func (q Quote) IsZero() bool {
	return q.Base.IsZero() && q.Surcharge.IsZero() && q.Total.IsZero()
}

type FeeCalculator interface {
	Quote(nightlyRate Money, nights int) Quote
}

type DefaultFeeCalculator struct {
	SurchargeBasisPoints int64
}

func NewDefaultFeeCalculator() *DefaultFeeCalculator {
	return &DefaultFeeCalculator{
		SurchargeBasisPoints: DefaultSurchargeBasisPoints,
	}
}

// Quote returns an all-zero quote when nights <= 0 or the rate is negative;
// callers treat that as "not ready yet".
func (fc *DefaultFeeCalculator) Quote(nightlyRate Money, nights int) Quote {
	if nights <= 0 || nightlyRate.Minor() < 0 {
		return Quote{NightlyRate: nightlyRate, Nights: max(nights, 0)}
	}

	base := nightlyRate.Times(int64(nights))
	surcharge := base.BasisPoints(fc.SurchargeBasisPoints)

	return Quote{
		NightlyRate: nightlyRate,
		Nights:      nights,
		Base:        base,
		Surcharge:   surcharge,
		Total:       base.Add(surcharge),
	}
}

// CalculateQuote applies the default 2% surcharge.
func CalculateQuote(nightlyRate Money, nights int) Quote {
	return NewDefaultFeeCalculator().Quote(nightlyRate, nights)
}
