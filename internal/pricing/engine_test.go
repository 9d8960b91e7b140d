package pricing

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBaseCostForEveryCategoryAndFacility(t *testing.T) {
	const duration = 3
	const people = 4

	for _, category := range Categories() {
		for _, facility := range Facilities() {
			t.Run(category+"/"+facility, func(t *testing.T) {
				price, ok := Lookup(category, facility)
				require.True(t, ok, "every category must price every facility")

				res := Compute(Request{Category: category, Facility: facility, Duration: duration, People: people})

				expected := price.Mul(decimal.NewFromInt(duration))
				if IsPerPerson(facility) {
					expected = expected.Mul(decimal.NewFromInt(people))
				}
				assert.True(t, expected.Equal(res.Base), "base: want %s, got %s", expected, res.Base)
				assert.True(t, expected.Equal(res.Total))
			})
		}
	}
}

func TestComputeNoSelectionSentinel(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
	}{
		{"no category", Request{Facility: FacilityBoardRoom, Duration: 2}},
		{"no facility", Request{Category: CategoryCorporates, Duration: 2}},
		{"zero duration", Request{Category: CategoryCorporates, Facility: FacilityBoardRoom, Duration: 0}},
		{"negative duration", Request{Category: CategoryCorporates, Facility: FacilityBoardRoom, Duration: -1}},
		{
			// Extras must not leak into the sentinel state.
			"extras enabled but nothing selected",
			Request{Duration: 2, Projector: true, Catering: true, CateringPeople: 10, Internet: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Compute(tc.req)
			assert.True(t, res.Total.IsZero())
			assert.Empty(t, res.Breakdown)
			assert.False(t, res.Bookable)
			assert.NotEmpty(t, res.Reason)
			assert.Empty(t, SummaryLines(tc.req, res))
		})
	}
}

func TestComputeUnknownFacilityIsSilentZero(t *testing.T) {
	res := Compute(Request{Category: CategoryCorporates, Facility: "Rooftop", Duration: 2, Internet: true})

	// No base line, but the extra still contributes; the zero-cost gate does
	// not apply because the total is nonzero.
	assert.True(t, res.Base.IsZero())
	require.Len(t, res.Breakdown, 1)
	assert.Equal(t, "Internet: R30.00", res.Breakdown[0])
	assert.True(t, res.Total.Equal(decimal.NewFromInt(30)))
	assert.True(t, res.Bookable)

	// Without the extra the total is zero and the selection is not bookable.
	bare := Compute(Request{Category: CategoryCorporates, Facility: "Rooftop", Duration: 2})
	assert.True(t, bare.Total.IsZero())
	assert.Empty(t, bare.Breakdown)
	assert.False(t, bare.Bookable)
}

func TestComputeZeroCostGating(t *testing.T) {
	// Incubated SMMEs price most facilities at zero; that is a real free tier.
	free := Compute(Request{Category: CategoryIncubatedSMMEs, Facility: FacilityOffice, Duration: 1})
	assert.True(t, free.Total.IsZero())
	assert.True(t, free.Bookable)
	assert.Empty(t, free.Reason)

	// The same zero total in any other category blocks submission.
	blocked := Compute(Request{Category: CategoryGovernment, Facility: "Rooftop", Duration: 1})
	assert.True(t, blocked.Total.IsZero())
	assert.False(t, blocked.Bookable)
	assert.NotEmpty(t, blocked.Reason)
}

func TestComputeCateringScalesLinearly(t *testing.T) {
	base := Request{Category: CategoryCorporates, Facility: FacilityAuditorium, Duration: 1}

	for _, people := range []int{1, 2, 7, 25} {
		req := base
		req.Catering = true
		req.CateringPeople = people
		res := Compute(req)

		expected := decimal.NewFromInt(int64(50 * people))
		assert.True(t, expected.Equal(res.Extras), "catering for %d people", people)
		assert.Contains(t, res.Breakdown, fmt.Sprintf("Catering: R50.00 x %d = R%d.00", people, 50*people))
	}

	// Disabling catering removes the line and the contribution entirely.
	with := base
	with.Catering = true
	with.CateringPeople = 10
	without := Compute(base)
	assert.True(t, Compute(base).Total.Equal(without.Total))
	assert.NotEqual(t, Compute(with).Total, without.Total)
	for _, line := range without.Breakdown {
		assert.NotContains(t, line, "Catering")
	}
}

func TestComputeExtrasOrderAndFlatPricing(t *testing.T) {
	res := Compute(Request{
		Category: CategoryAcademia, Facility: FacilityAuditorium, Duration: 2,
		Projector: true, Catering: true, CateringPeople: 3, Internet: true,
	})

	require.Len(t, res.Breakdown, 4)
	assert.Equal(t, "Base: R25.00 x 2 Hours = R50.00", res.Breakdown[0])
	assert.Equal(t, "Projector: R100.00", res.Breakdown[1])
	assert.Equal(t, "Catering: R50.00 x 3 = R150.00", res.Breakdown[2])
	assert.Equal(t, "Internet: R30.00", res.Breakdown[3])
	assert.Equal(t, "330.00", res.TotalString())
}

func TestComputeCorporateBoardRoomExample(t *testing.T) {
	req := Request{
		Category: CategoryCorporates, Facility: FacilityBoardRoom,
		Duration: 2, People: 3,
	}
	res := Compute(req)
	assert.Equal(t, "10800.00", res.BaseString())

	req.Projector = true
	req.Internet = true
	res = Compute(req)
	assert.Equal(t, "10930.00", res.TotalString())
	assert.True(t, res.Bookable)
	require.Len(t, res.Breakdown, 3)
	assert.Equal(t, "Base: R1800.00 x 3 people x 2 Hours = R10800.00", res.Breakdown[0])
}

func TestSummaryLines(t *testing.T) {
	req := Request{
		Category: CategoryCorporates, Facility: FacilityBoardRoom,
		Duration: 2, People: 3, Catering: true, CateringPeople: 5,
	}
	res := Compute(req)
	lines := SummaryLines(req, res)

	require.NotEmpty(t, lines)
	assert.Equal(t, "Category: Corporates", lines[0])
	assert.Equal(t, "Facility: Board Room", lines[1])
	assert.Equal(t, "Duration: 2 Hours", lines[2])
	assert.Equal(t, "People: 3", lines[3])
	assert.Equal(t, "Catering: Yes (5 people)", lines[4])
	assert.Equal(t, "Total Cost: R"+res.TotalString(), lines[len(lines)-1])
}

func TestSummaryOmitsPeopleForNonPerPersonFacility(t *testing.T) {
	req := Request{Category: CategoryGovernment, Facility: FacilityOffice, Duration: 1, People: 6}
	lines := SummaryLines(req, Compute(req))

	for _, line := range lines {
		assert.NotContains(t, line, "People:")
	}
}

func TestDurationLabels(t *testing.T) {
	assert.Equal(t, "Months", DurationLabel(FacilityOffice))
	assert.Equal(t, "Days", DurationLabel(FacilityHotDeskDay))
	assert.Equal(t, "Hours", DurationLabel(FacilityBoardRoom))
	assert.Equal(t, "Pages", DurationLabel(ServicePrinting))
	assert.Equal(t, "Units", DurationLabel("something unknown"))
}

func TestLookupDistinguishesAbsentFromZero(t *testing.T) {
	price, ok := Lookup(CategoryIncubatedSMMEs, FacilityPCLabs)
	assert.True(t, ok)
	assert.True(t, price.IsZero())

	_, ok = Lookup(CategoryIncubatedSMMEs, "Rooftop")
	assert.False(t, ok)
	_, ok = Lookup("Tourists", FacilityPCLabs)
	assert.False(t, ok)
}
