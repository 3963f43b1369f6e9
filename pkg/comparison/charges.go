package comparison

import "github.com/shopspring/decimal"

// Charge percentages applied on the base purchase price.
var (
	stampDutyRate    = decimal.NewFromFloat(0.05)
	registrationRate = decimal.NewFromFloat(0.01)
	documentRate     = decimal.NewFromFloat(0.01)
	otherRate        = decimal.NewFromFloat(0.02)
)

// ChargeBreakdown itemizes the statutory and transaction charges on a
// property purchase.
type ChargeBreakdown struct {
	StampDuty        float64 `json:"stampDuty" yaml:"stampDuty"`
	Registration     float64 `json:"registration" yaml:"registration"`
	DocumentHandling float64 `json:"documentHandling" yaml:"documentHandling"`
	Other            float64 `json:"other" yaml:"other"`
	Total            float64 `json:"total" yaml:"total"`
}

// Charges computes the purchase charges on a base price: stamp duty 5%,
// registration 1%, document handling 1%, and 2% for GST and sundries.
// Decimal arithmetic keeps the components and the total consistent after
// rounding.
func Charges(basePrice float64) ChargeBreakdown {
	base := decimal.NewFromFloat(basePrice)

	stamp := base.Mul(stampDutyRate).Round(0)
	registration := base.Mul(registrationRate).Round(0)
	document := base.Mul(documentRate).Round(0)
	other := base.Mul(otherRate).Round(0)
	total := stamp.Add(registration).Add(document).Add(other)

	return ChargeBreakdown{
		StampDuty:        stamp.InexactFloat64(),
		Registration:     registration.InexactFloat64(),
		DocumentHandling: document.InexactFloat64(),
		Other:            other.InexactFloat64(),
		Total:            total.InexactFloat64(),
	}
}
