/*
Package cleaning implements the daily room-cleaning checklist.

PURPOSE:
  Every room in the building is cleaned and checked once per day. The room
  table below is the single source of truth for which rooms exist, who is
  responsible for each, and what checklist shape applies. Submissions may
  only reference rooms from this table; the complaint form's free-text
  location is the one deliberate exception, handled elsewhere.

CHECKLIST SHAPES:
  The applicable task set is a pure function of the room name:
    - toilet-type rooms get the toilet checklist
    - corridor/stair areas get a reduced general checklist
    - the rooftop break area gets its own checklist
    - every other room gets the standard checklist, extended with a
      water-gallon task and/or a private-toilet task per static room flags
  Classification is deterministic and total: every known room maps to
  exactly one shape.

SEE ALSO:
  - tracker.go: Same-day completion tracking
  - recap.go: Monthly matrix projection
*/
package cleaning

import (
	"strings"

	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// ROOM TABLE - Static assignment of rooms to responsible staff
// =============================================================================

type Assignment struct {
	PIC   string // responsible cleaning staff member
	Floor int    // 1 or 2

	// Checklist extensions for standard rooms.
	HasGallon        bool // room keeps a water-gallon dispenser
	HasPrivateToilet bool // room has its own toilet
}

type roomEntry struct {
	Name string
	Assignment
}

// roomTable preserves the building's canonical room order: floor 1 by
// Yudo then Rafli, floor 2 by Sinta then Ravi.
var roomTable = []roomEntry{
	// Yudo (floor 1)
	{"Ruang Sidang 1", Assignment{PIC: "Yudo", Floor: 1}},
	{"Sidang 2", Assignment{PIC: "Yudo", Floor: 1}},
	{"Sidang 3", Assignment{PIC: "Yudo", Floor: 1}},
	{"Mediasi", Assignment{PIC: "Yudo", Floor: 1}},
	{"Tunggu Sidang", Assignment{PIC: "Yudo", Floor: 1, HasGallon: true}},
	{"Kolam", Assignment{PIC: "Yudo", Floor: 1}},
	{"Bermain Anak", Assignment{PIC: "Yudo", Floor: 1}},
	{"Laktasi", Assignment{PIC: "Yudo", Floor: 1}},
	{"Toilet Wanita Tunggu Sidang", Assignment{PIC: "Yudo", Floor: 1}},
	{"Toilet Pria Tunggu Sidang", Assignment{PIC: "Yudo", Floor: 1}},
	{"Toilet Disabilitas Tunggu Sidang", Assignment{PIC: "Yudo", Floor: 1}},

	// Rafli (floor 1)
	{"Ruang PTSP", Assignment{PIC: "Rafli", Floor: 1, HasGallon: true}},
	{"Resepsionis", Assignment{PIC: "Rafli", Floor: 1}},
	{"Tamu Terbuka", Assignment{PIC: "Rafli", Floor: 1}},
	{"Kepaniteraan", Assignment{PIC: "Rafli", Floor: 1, HasGallon: true}},
	{"Panitera", Assignment{PIC: "Rafli", Floor: 1, HasGallon: true, HasPrivateToilet: true}},
	{"Arsip Perkara", Assignment{PIC: "Rafli", Floor: 1}},
	{"Server", Assignment{PIC: "Rafli", Floor: 1}},
	{"Toilet Pria & Wanita PSTP", Assignment{PIC: "Rafli", Floor: 1}},
	{"Toilet Disabilitas PTSP", Assignment{PIC: "Rafli", Floor: 1}},
	{"Toilet Resepsionis", Assignment{PIC: "Rafli", Floor: 1}},
	{"Toilet Pria Pegawai Lt.1", Assignment{PIC: "Rafli", Floor: 1}},

	// Sinta (floor 2)
	{"Ruang Ketua", Assignment{PIC: "Sinta", Floor: 2, HasGallon: true, HasPrivateToilet: true}},
	{"Wakil Ketua", Assignment{PIC: "Sinta", Floor: 2, HasGallon: true, HasPrivateToilet: true}},
	{"Sekretaris", Assignment{PIC: "Sinta", Floor: 2, HasGallon: true, HasPrivateToilet: true}},
	{"Media Center", Assignment{PIC: "Sinta", Floor: 2}},
	{"Perpustakaan", Assignment{PIC: "Sinta", Floor: 2}},
	{"Ajudan", Assignment{PIC: "Sinta", Floor: 2}},
	{"ZI", Assignment{PIC: "Sinta", Floor: 2}},
	{"Corridor Kanan", Assignment{PIC: "Sinta", Floor: 2}},
	{"Toilet Pegawai Wanita Lt.2", Assignment{PIC: "Sinta", Floor: 2}},

	// Ravi (floor 2)
	{"Ruang Hakim 1", Assignment{PIC: "Ravi", Floor: 2, HasGallon: true, HasPrivateToilet: true}},
	{"Hakim 2", Assignment{PIC: "Ravi", Floor: 2, HasPrivateToilet: true}},
	{"Kesekretariatan", Assignment{PIC: "Ravi", Floor: 2, HasGallon: true}},
	{"Jurusita", Assignment{PIC: "Ravi", Floor: 2}},
	{"Panitera Pengganti", Assignment{PIC: "Ravi", Floor: 2, HasGallon: true}},
	{"Corridor Kiri", Assignment{PIC: "Ravi", Floor: 2}},
	{"Rooftop", Assignment{PIC: "Ravi", Floor: 2}},
	{"Tangga Umum", Assignment{PIC: "Ravi", Floor: 2}},
}

var roomIndex = func() map[string]Assignment {
	m := make(map[string]Assignment, len(roomTable))
	for _, e := range roomTable {
		m[e.Name] = e.Assignment
	}
	return m
}()

// Lookup resolves a room name to its assignment. Unknown names fail with
// ErrUnknownLocation; callers must reject the operation rather than guess an
// owner.
func Lookup(room string) (Assignment, error) {
	a, ok := roomIndex[room]
	if !ok {
		return Assignment{}, record.ErrUnknownLocation
	}
	return a, nil
}

// Rooms returns every known room name in canonical order.
func Rooms() []string {
	out := make([]string, len(roomTable))
	for i, e := range roomTable {
		out[i] = e.Name
	}
	return out
}

// RoomsOnFloor returns the rooms of one floor, canonical order preserved.
func RoomsOnFloor(floor int) []string {
	var out []string
	for _, e := range roomTable {
		if e.Floor == floor {
			out = append(out, e.Name)
		}
	}
	return out
}

// Staff returns the cleaning staff roster taken from the room table.
func Staff() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range roomTable {
		if !seen[e.PIC] {
			seen[e.PIC] = true
			out = append(out, e.PIC)
		}
	}
	return out
}

// =============================================================================
// CHECKLIST SHAPES
// =============================================================================

type Task struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var standardTasks = []Task{
	{"lantai", "Lantai sudah disapu dan dipel"},
	{"langit", "Langit-langit bersih dari sawang laba-laba"},
	{"tata_ruang", "Tata ruang dan barang sudah rapi"},
	{"sampah", "Tempat sampah dikosongkan"},
	{"meja", "Meja sudah dilap"},
	{"kaca", "Kaca pintu & jendela dibersihkan (1x seminggu)"},
	{"pengharum", "Ruangan sudah diberi pengharum"},
}

var toiletTasks = []Task{
	{"lantai_toilet", "Lantai Bersih & Tidak Licin"},
	{"kloset", "Kloset/Urinal Bersih (Tidak Berkerak)"},
	{"wastafel", "Wastafel & Cermin Bersih"},
	{"stok", "Air/Sabun/Tisu Tersedia Cukup"},
	{"bak_air", "Bak penampung air bersih"},
	{"pengharum_toilet", "Toilet diberi pengharum/kamper"},
	{"sampah_toilet", "Tempat sampah sudah dikosongkan"},
}

var generalAreaTasks = []Task{
	{"lantai", "Lantai sudah disapu dan dipel"},
	{"langit", "Langit-langit bersih dari sawang laba-laba"},
	{"sampah", "Tempat sampah dikosongkan"},
	{"pengharum", "Sudah diberi pengharum"},
}

var rooftopTasks = []Task{
	{"lantai_rt", "Lantai sudah disapu dan bersih"},
	{"meja_kursi_rt", "Meja dan kursi sudah dilap"},
	{"sampah_rt", "Tempat sampah dikosongkan"},
	{"tata_barang_rt", "Barang-barang tertata rapi"},
	{"cucian_rt", "Piring dan gelas kotor sudah dicuci"},
	{"kulkas_rt", "Kulkas bersih"},
	{"galon_rt", "Galon sudah terisi"},
}

var gallonTask = Task{"galon_std", "Galon ada/sudah terisi"}
var privateToiletTask = Task{"toilet_pribadi", "Toilet sudah dibersihkan"}

func isToiletRoom(room string) bool {
	return strings.Contains(strings.ToLower(room), "toilet")
}

func isGeneralArea(room string) bool {
	lower := strings.ToLower(room)
	return (strings.Contains(lower, "corridor") || strings.Contains(lower, "tangga")) &&
		!strings.Contains(lower, "rooftop")
}

// ChecklistFor returns the task set applicable to a room. The result is a
// fresh slice the caller may keep.
func ChecklistFor(room string) ([]Task, error) {
	if _, err := Lookup(room); err != nil {
		return nil, err
	}
	switch {
	case room == "Rooftop":
		return append([]Task(nil), rooftopTasks...), nil
	case isToiletRoom(room):
		return append([]Task(nil), toiletTasks...), nil
	case isGeneralArea(room):
		return append([]Task(nil), generalAreaTasks...), nil
	}

	tasks := append([]Task(nil), standardTasks...)
	if room == "Kolam" {
		// The pool area has chairs, not desks.
		for i := range tasks {
			if tasks[i].ID == "meja" {
				tasks[i].Label = "Kursi sudah dilap"
			}
		}
	}
	a := roomIndex[room]
	if a.HasGallon {
		tasks = append(tasks, gallonTask)
	}
	if a.HasPrivateToilet {
		tasks = append(tasks, privateToiletTask)
	}
	return tasks, nil
}
