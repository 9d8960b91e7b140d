package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Request carries one cost estimation: the currently selected category,
// facility, duration and people count plus the enabled extras. Requests are
// transient and rebuilt on every recomputation.
type Request struct {
	Category       string `json:"category"`
	Facility       string `json:"facility"`
	Duration       int    `json:"duration"`
	People         int    `json:"people"`
	Projector      bool   `json:"projector"`
	Catering       bool   `json:"catering"`
	CateringPeople int    `json:"cateringPeople"`
	Internet       bool   `json:"internet"`
}

// Result is the computed cost breakdown. A zero total with an empty breakdown
// is the "no selection" sentinel; callers must render it distinctly from a
// real zero-cost booking.
type Result struct {
	Base      decimal.Decimal `json:"-"`
	Extras    decimal.Decimal `json:"-"`
	Total     decimal.Decimal `json:"-"`
	Breakdown []string        `json:"breakdown"`
	Bookable  bool            `json:"bookable"`
	Reason    string          `json:"reason,omitempty"`
}

// Amounts as fixed-point strings, for JSON consumers.
func (r Result) BaseString() string   { return r.Base.StringFixed(2) }
func (r Result) ExtrasString() string { return r.Extras.StringFixed(2) }
func (r Result) TotalString() string  { return r.Total.StringFixed(2) }

func rand2(v decimal.Decimal) string { return "R" + v.StringFixed(2) }

// Compute resolves a request against the price table.
//
// An unset category or facility, or a non-positive duration, yields the
// sentinel result. An unknown category/facility combination contributes no
// base cost and no base line; it is not an error. The total is bookable
// unless it is zero for any category other than Incubated SMMEs, the one
// tier with a legitimate free allocation.
func Compute(req Request) Result {
	if req.Category == "" || req.Facility == "" || req.Duration <= 0 {
		return Result{
			Base: decimal.Zero, Extras: decimal.Zero, Total: decimal.Zero,
			Bookable: false,
			Reason:   "Select a category and facility to get a price.",
		}
	}

	people := req.People
	if people <= 0 {
		people = 1
	}

	var breakdown []string
	base := decimal.Zero

	if price, ok := Lookup(req.Category, req.Facility); ok {
		duration := decimal.NewFromInt(int64(req.Duration))
		if IsPerPerson(req.Facility) {
			base = price.Mul(duration).Mul(decimal.NewFromInt(int64(people)))
			breakdown = append(breakdown, fmt.Sprintf("Base: %s x %d people x %d %s = %s",
				rand2(price), people, req.Duration, DurationLabel(req.Facility), rand2(base)))
		} else {
			base = price.Mul(duration)
			breakdown = append(breakdown, fmt.Sprintf("Base: %s x %d %s = %s",
				rand2(price), req.Duration, DurationLabel(req.Facility), rand2(base)))
		}
	}

	extrasTotal := decimal.Zero
	if req.Projector {
		p := extras[ExtraProjector]
		extrasTotal = extrasTotal.Add(p)
		breakdown = append(breakdown, fmt.Sprintf("Projector: %s", rand2(p)))
	}
	if req.Catering {
		catered := req.CateringPeople
		if catered <= 0 {
			catered = 1
		}
		p := extras[ExtraCatering]
		cost := p.Mul(decimal.NewFromInt(int64(catered)))
		extrasTotal = extrasTotal.Add(cost)
		breakdown = append(breakdown, fmt.Sprintf("Catering: %s x %d = %s", rand2(p), catered, rand2(cost)))
	}
	if req.Internet {
		p := extras[ExtraInternet]
		extrasTotal = extrasTotal.Add(p)
		breakdown = append(breakdown, fmt.Sprintf("Internet: %s", rand2(p)))
	}

	total := base.Add(extrasTotal)

	res := Result{Base: base, Extras: extrasTotal, Total: total, Breakdown: breakdown, Bookable: true}
	if total.IsZero() && req.Category != CategoryIncubatedSMMEs {
		res.Bookable = false
		res.Reason = "No rate is defined for this selection."
	}
	return res
}

// SummaryLines renders the booking summary block for a computed result:
// the selection, the enabled extras, the breakdown and the total. Empty for
// the sentinel state.
func SummaryLines(req Request, res Result) []string {
	if req.Category == "" || req.Facility == "" || req.Duration <= 0 {
		return nil
	}
	people := req.People
	if people <= 0 {
		people = 1
	}

	lines := []string{
		fmt.Sprintf("Category: %s", req.Category),
		fmt.Sprintf("Facility: %s", req.Facility),
		fmt.Sprintf("Duration: %d %s", req.Duration, DurationLabel(req.Facility)),
	}
	if IsPerPerson(req.Facility) {
		lines = append(lines, fmt.Sprintf("People: %d", people))
	}
	if req.Projector {
		lines = append(lines, "Projector: Yes")
	}
	if req.Catering {
		catered := req.CateringPeople
		if catered <= 0 {
			catered = 1
		}
		lines = append(lines, fmt.Sprintf("Catering: Yes (%d people)", catered))
	}
	if req.Internet {
		lines = append(lines, "Internet: Yes")
	}
	lines = append(lines, res.Breakdown...)
	lines = append(lines, fmt.Sprintf("Total Cost: %s", rand2(res.Total)))
	return lines
}
