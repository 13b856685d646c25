// Package payments holds the payment method catalog and fee arithmetic
// used when a bill moves to paid or scheduled. Fees are computed with
// decimal arithmetic so percentage-based fees round to exact cents.
package payments

import "github.com/shopspring/decimal"

// Method describes one way a bill can be paid.
type Method struct {
	ID             string
	Name           string
	Description    string
	ProcessingTime string
}

// Methods is the fixed catalog, in display order.
var Methods = []Method{
	{
		ID:             "ach",
		Name:           "ACH Transfer",
		Description:    "Direct bank transfer (1-2 business days)",
		ProcessingTime: "1-2 business days",
	},
	{
		ID:             "wire",
		Name:           "Wire Transfer",
		Description:    "Fast domestic wire (same day)",
		ProcessingTime: "Same day",
	},
	{
		ID:             "credit",
		Name:           "Credit Card",
		Description:    "Credit/debit card payment",
		ProcessingTime: "Instant",
	},
	{
		ID:             "check",
		Name:           "Check",
		Description:    "Mailed check payment (3-5 business days)",
		ProcessingTime: "3-5 business days",
	},
}

// ByID returns the method with the given id.
func ByID(id string) (Method, bool) {
	for _, m := range Methods {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}

var (
	wireFee     = decimal.NewFromInt(25)
	checkFee    = decimal.NewFromInt(5)
	creditRate  = decimal.NewFromFloat(0.029)
	creditFlat  = decimal.NewFromFloat(0.30)
	centsDigits = int32(2)
)

// Fee returns the processing fee for paying amount via the given method.
// ACH is free; wire and check are flat; credit is 2.9% of the amount
// rounded to cents plus 0.30. Unknown methods are free.
func Fee(methodID string, amount float64) decimal.Decimal {
	switch methodID {
	case "wire":
		return wireFee
	case "check":
		return checkFee
	case "credit":
		pct := decimal.NewFromFloat(amount).Mul(creditRate).Round(centsDigits)
		return pct.Add(creditFlat)
	}
	return decimal.Zero
}

// TotalWithFee returns amount plus the method's fee.
func TotalWithFee(methodID string, amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Add(Fee(methodID, amount))
}
