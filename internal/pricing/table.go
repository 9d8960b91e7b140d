package pricing

import "github.com/shopspring/decimal"

// Client categories, in menu order.
const (
	CategoryCorporates     = "Corporates"
	CategoryIndustrialists = "Industrialists"
	CategoryGovernment     = "Government"
	CategoryAcademia       = "Academia"
	CategoryNGOs           = "NGOs/CBOs"
	CategoryGeneralSMMEs   = "General SMMEs"
	CategoryIncubatedSMMEs = "Incubated SMMEs"
)

// Bookable facilities and service items, in menu order.
const (
	FacilityOffice       = "Office"
	FacilityHotDeskDay   = "Hot-Desk-Day"
	FacilityHotDeskMonth = "Hot-Desk-Month"
	FacilityBoardRoom    = "Board Room"
	FacilityMeetingRoom  = "Meeting Room"
	FacilityAuditorium   = "Auditorium"
	FacilityPCLabs       = "PC Labs"
	FacilityMakerspace   = "Makerspace"
	ServicePrinting      = "Printing"
	ServiceBinding       = "Binding"
)

// Extra services.
const (
	ExtraProjector = "Projector"
	ExtraCatering  = "Catering"
	ExtraInternet  = "Internet"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// priceTable maps category -> facility -> unit price in rand. Incubated SMMEs
// legitimately price most facilities at zero; a zero here is a real free tier,
// not an absent entry.
var priceTable = map[string]map[string]decimal.Decimal{
	CategoryCorporates: {
		FacilityOffice:       d("8000"),
		FacilityHotDeskDay:   d("90"),
		FacilityHotDeskMonth: d("1600"),
		FacilityBoardRoom:    d("1800"),
		FacilityMeetingRoom:  d("35"),
		FacilityAuditorium:   d("50"),
		FacilityPCLabs:       d("100"),
		FacilityMakerspace:   d("180"),
		ServicePrinting:      d("2"),
		ServiceBinding:       d("30"),
	},
	CategoryIndustrialists: {
		FacilityOffice:       d("7000"),
		FacilityHotDeskDay:   d("80"),
		FacilityHotDeskMonth: d("1500"),
		FacilityBoardRoom:    d("60"),
		FacilityMeetingRoom:  d("30"),
		FacilityAuditorium:   d("3300"),
		FacilityPCLabs:       d("90"),
		FacilityMakerspace:   d("170"),
		ServicePrinting:      d("2"),
		ServiceBinding:       d("28"),
	},
	CategoryGovernment: {
		FacilityOffice:       d("6000"),
		FacilityHotDeskDay:   d("70"),
		FacilityHotDeskMonth: d("1400"),
		FacilityBoardRoom:    d("50"),
		FacilityMeetingRoom:  d("25"),
		FacilityAuditorium:   d("30"),
		FacilityPCLabs:       d("80"),
		FacilityMakerspace:   d("160"),
		ServicePrinting:      d("1.50"),
		ServiceBinding:       d("25"),
	},
	CategoryAcademia: {
		FacilityOffice:       d("4000"),
		FacilityHotDeskDay:   d("60"),
		FacilityHotDeskMonth: d("1300"),
		FacilityBoardRoom:    d("40"),
		FacilityMeetingRoom:  d("20"),
		FacilityAuditorium:   d("25"),
		FacilityPCLabs:       d("80"),
		FacilityMakerspace:   d("150"),
		ServicePrinting:      d("1"),
		ServiceBinding:       d("20"),
	},
	CategoryNGOs: {
		FacilityOffice:       d("3000"),
		FacilityHotDeskDay:   d("50"),
		FacilityHotDeskMonth: d("1000"),
		FacilityBoardRoom:    d("30"),
		FacilityMeetingRoom:  d("15"),
		FacilityAuditorium:   d("20"),
		FacilityPCLabs:       d("60"),
		FacilityMakerspace:   d("120"),
		ServicePrinting:      d("1"),
		ServiceBinding:       d("18"),
	},
	CategoryGeneralSMMEs: {
		FacilityOffice:       d("2500"),
		FacilityHotDeskDay:   d("40"),
		FacilityHotDeskMonth: d("1000"),
		FacilityBoardRoom:    d("30"),
		FacilityMeetingRoom:  d("15"),
		FacilityAuditorium:   d("20"),
		FacilityPCLabs:       d("60"),
		FacilityMakerspace:   d("100"),
		ServicePrinting:      d("1"),
		ServiceBinding:       d("18"),
	},
	CategoryIncubatedSMMEs: {
		FacilityOffice:       d("0"),
		FacilityHotDeskDay:   d("0"),
		FacilityHotDeskMonth: d("0"),
		FacilityBoardRoom:    d("0"),
		FacilityMeetingRoom:  d("0"),
		FacilityAuditorium:   d("10"),
		FacilityPCLabs:       d("0"),
		FacilityMakerspace:   d("0"),
		ServicePrinting:      d("0.50"),
		ServiceBinding:       d("10"),
	},
}

// extras maps an extra service to its unit price. Catering is additionally
// scaled by the number of catered people.
var extras = map[string]decimal.Decimal{
	ExtraProjector: d("100"),
	ExtraCatering:  d("50"),
	ExtraInternet:  d("30"),
}

// durationLabels maps a facility to the unit its duration is measured in.
var durationLabels = map[string]string{
	FacilityOffice:       "Months",
	FacilityHotDeskDay:   "Days",
	FacilityHotDeskMonth: "Months",
	FacilityBoardRoom:    "Hours",
	FacilityMeetingRoom:  "Hours",
	FacilityAuditorium:   "Hours",
	FacilityPCLabs:       "Hours",
	FacilityMakerspace:   "Hours",
	ServicePrinting:      "Pages",
	ServiceBinding:       "Units",
}

// perPersonFacilities are priced per person in addition to per duration unit.
// Whether people count applies is a property of the facility, never of the
// category.
var perPersonFacilities = map[string]bool{
	FacilityBoardRoom:   true,
	FacilityMeetingRoom: true,
	FacilityPCLabs:      true,
	FacilityMakerspace:  true,
}

// Lookup resolves the unit price for a category and facility. The second
// return value distinguishes an absent entry from a legitimate zero price.
func Lookup(category, facility string) (decimal.Decimal, bool) {
	row, ok := priceTable[category]
	if !ok {
		return decimal.Zero, false
	}
	price, ok := row[facility]
	return price, ok
}

// DurationLabel returns the unit-of-measure label for a facility.
func DurationLabel(facility string) string {
	if label, ok := durationLabels[facility]; ok {
		return label
	}
	return "Units"
}

// IsPerPerson reports whether a facility is priced per person.
func IsPerPerson(facility string) bool {
	return perPersonFacilities[facility]
}

// Categories returns the known categories in menu order.
func Categories() []string {
	return []string{
		CategoryCorporates, CategoryIndustrialists, CategoryGovernment,
		CategoryAcademia, CategoryNGOs, CategoryGeneralSMMEs, CategoryIncubatedSMMEs,
	}
}

// Facilities returns the known facilities and services in menu order.
func Facilities() []string {
	return []string{
		FacilityOffice, FacilityHotDeskDay, FacilityHotDeskMonth,
		FacilityBoardRoom, FacilityMeetingRoom, FacilityAuditorium,
		FacilityPCLabs, FacilityMakerspace, ServicePrinting, ServiceBinding,
	}
}

// Catalog is the static pricing configuration in a JSON-friendly shape, used
// by the pricing endpoint.
type Catalog struct {
	Categories     []string                     `json:"categories"`
	Facilities     []string                     `json:"facilities"`
	Prices         map[string]map[string]string `json:"prices"`
	Extras         map[string]string            `json:"extras"`
	DurationLabels map[string]string            `json:"durationLabels"`
	PerPerson      []string                     `json:"perPerson"`
}

// BuildCatalog renders the compiled-in configuration for API consumers.
func BuildCatalog() Catalog {
	prices := make(map[string]map[string]string, len(priceTable))
	for _, cat := range Categories() {
		row := make(map[string]string, len(priceTable[cat]))
		for fac, p := range priceTable[cat] {
			row[fac] = p.StringFixed(2)
		}
		prices[cat] = row
	}
	ex := make(map[string]string, len(extras))
	for name, p := range extras {
		ex[name] = p.StringFixed(2)
	}
	labels := make(map[string]string, len(durationLabels))
	for fac, l := range durationLabels {
		labels[fac] = l
	}
	perPerson := make([]string, 0, len(perPersonFacilities))
	for _, fac := range Facilities() {
		if perPersonFacilities[fac] {
			perPerson = append(perPerson, fac)
		}
	}
	return Catalog{
		Categories:     Categories(),
		Facilities:     Facilities(),
		Prices:         prices,
		Extras:         ex,
		DurationLabels: labels,
		PerPerson:      perPerson,
	}
}
