package cleaning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimons/facility-engine/cleaning"
	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// ROOM TABLE
// =============================================================================

func TestRooms_CanonicalOrderAndCount(t *testing.T) {
	rooms := cleaning.Rooms()

	assert.Len(t, rooms, 39)
	assert.Equal(t, "Ruang Sidang 1", rooms[0])
	assert.Equal(t, "Tangga Umum", rooms[len(rooms)-1])
}

func TestRoomsOnFloor_PartitionsTheTable(t *testing.T) {
	floor1 := cleaning.RoomsOnFloor(1)
	floor2 := cleaning.RoomsOnFloor(2)

	assert.Len(t, floor1, 22)
	assert.Len(t, floor2, 17)
	assert.Equal(t, len(cleaning.Rooms()), len(floor1)+len(floor2))
}

func TestLookup_KnownRoom(t *testing.T) {
	a, err := cleaning.Lookup("Ruang PTSP")

	require.NoError(t, err)
	assert.Equal(t, "Rafli", a.PIC)
	assert.Equal(t, 1, a.Floor)
	assert.True(t, a.HasGallon)
	assert.False(t, a.HasPrivateToilet)
}

func TestLookup_UnknownRoom(t *testing.T) {
	_, err := cleaning.Lookup("Ruang Rahasia")

	assert.ErrorIs(t, err, record.ErrUnknownLocation)
}

func TestStaff_RosterFromRoomTable(t *testing.T) {
	assert.Equal(t, []string{"Yudo", "Rafli", "Sinta", "Ravi"}, cleaning.Staff())
}

// =============================================================================
// CHECKLIST SHAPES
// =============================================================================

func taskIDs(tasks []cleaning.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func TestChecklistFor_EveryRoomHasAShape(t *testing.T) {
	// Classification over the room table is total: no known room may fall
	// through without a checklist.
	for _, room := range cleaning.Rooms() {
		tasks, err := cleaning.ChecklistFor(room)
		require.NoError(t, err, room)
		assert.NotEmpty(t, tasks, room)
	}
}

func TestChecklistFor_ToiletRoomsGetToiletTasks(t *testing.T) {
	tasks, err := cleaning.ChecklistFor("Toilet Disabilitas PTSP")

	require.NoError(t, err)
	assert.Contains(t, taskIDs(tasks), "kloset")
	assert.NotContains(t, taskIDs(tasks), "meja")
}

func TestChecklistFor_CorridorGetsReducedGeneralTasks(t *testing.T) {
	tasks, err := cleaning.ChecklistFor("Corridor Kanan")

	require.NoError(t, err)
	assert.Len(t, tasks, 4)
	assert.NotContains(t, taskIDs(tasks), "meja")
}

func TestChecklistFor_RooftopHasItsOwnShape(t *testing.T) {
	tasks, err := cleaning.ChecklistFor("Rooftop")

	require.NoError(t, err)
	ids := taskIDs(tasks)
	assert.Contains(t, ids, "kulkas_rt")
	assert.Contains(t, ids, "galon_rt")
	assert.NotContains(t, ids, "lantai")
}

func TestChecklistFor_StandardRoomExtensions(t *testing.T) {
	// GIVEN a standard room flagged with both extensions
	tasks, err := cleaning.ChecklistFor("Ruang Ketua")

	// THEN the gallon and private-toilet tasks are appended after the
	// standard set
	require.NoError(t, err)
	ids := taskIDs(tasks)
	assert.Contains(t, ids, "galon_std")
	assert.Contains(t, ids, "toilet_pribadi")
	assert.Len(t, tasks, 9)
}

func TestChecklistFor_PlainStandardRoom(t *testing.T) {
	tasks, err := cleaning.ChecklistFor("Mediasi")

	require.NoError(t, err)
	assert.Len(t, tasks, 7)
	assert.NotContains(t, taskIDs(tasks), "galon_std")
}

func TestChecklistFor_KolamSwapsDeskForChairs(t *testing.T) {
	tasks, err := cleaning.ChecklistFor("Kolam")

	require.NoError(t, err)
	var label string
	for _, task := range tasks {
		if task.ID == "meja" {
			label = task.Label
		}
	}
	assert.Equal(t, "Kursi sudah dilap", label)
}

func TestChecklistFor_UnknownRoom(t *testing.T) {
	_, err := cleaning.ChecklistFor("Gudang Belakang")

	assert.ErrorIs(t, err, record.ErrUnknownLocation)
}
