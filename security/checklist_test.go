package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digimons/facility-engine/security"
)

// =============================================================================
// ITEM SETS
// =============================================================================

func TestItemsFor_EveryAreaHasAShape(t *testing.T) {
	for _, area := range security.Areas() {
		assert.NotEmpty(t, security.ItemsFor(area), string(area))
	}
}

func TestItemsFor_BuildingNightRound(t *testing.T) {
	items := security.ItemsFor(security.AreaBuilding)

	assert.Len(t, items, 4)
	assert.Equal(t, "lightsOut", items[0].ID)
	for _, item := range items {
		assert.False(t, item.Done)
	}
}

func TestChecklist_FillsTicksFromTheLog(t *testing.T) {
	// GIVEN a front-post patrol with two of three items ticked
	l := security.Log{
		Area:                  security.AreaFrontPost,
		VisitorIdentification: true,
		VehicleCheck:          true,
	}

	// WHEN the checklist is resolved
	items := l.Checklist()

	// THEN the ticks line up with the area's item set
	ticks := make(map[string]bool, len(items))
	for _, item := range items {
		ticks[item.ID] = item.Done
	}
	assert.True(t, ticks["visitorIdentification"])
	assert.False(t, ticks["baggageCheck"])
	assert.True(t, ticks["vehicleCheck"])
}

func TestSetItem_RoundTripsThroughChecklist(t *testing.T) {
	var l security.Log
	l.Area = security.AreaPTSP
	l.SetItem("ptspVisitorCheck", true)
	l.SetItem("ptspVisitorOrder", true)
	l.SetItem("ptspVisitorOrder", false)

	items := l.Checklist()

	ticks := make(map[string]bool, len(items))
	for _, item := range items {
		ticks[item.ID] = item.Done
	}
	assert.True(t, ticks["ptspVisitorCheck"])
	assert.False(t, ticks["ptspAccessWatch"])
	assert.False(t, ticks["ptspVisitorOrder"])
}

func TestSetItem_UnknownIDIsIgnored(t *testing.T) {
	var l security.Log
	l.SetItem("cctvRecording", true)

	assert.Equal(t, security.Log{}, l)
}

// =============================================================================
// SHIFT RULES
// =============================================================================

func TestAreasForShift_NightIsBuildingOnly(t *testing.T) {
	assert.Equal(t, []security.Area{security.AreaBuilding}, security.AreasForShift(security.ShiftNight))
}

func TestAreasForShift_DayShiftsSkipTheBuildingRound(t *testing.T) {
	for _, shift := range []security.Shift{security.ShiftMorning, security.ShiftDay} {
		areas := security.AreasForShift(shift)
		assert.Len(t, areas, 3, string(shift))
		assert.NotContains(t, areas, security.AreaBuilding, string(shift))
	}
}
