package security

// =============================================================================
// PER-AREA CHECKLIST ITEM SETS
// =============================================================================

// Item is one checklist line of an area, paired with whether the officer
// ticked it on a given log.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// ItemsFor returns the checklist shape of an area with all items unticked.
func ItemsFor(area Area) []Item {
	switch area {
	case AreaCourtWait:
		return []Item{
			{ID: "courtroomSterile", Label: "Sterilisasi Ruang Sidang (Barang Berbahaya)"},
			{ID: "visitorOrder", Label: "Pengaturan Pengunjung Sidang (No Kegaduhan)"},
			{ID: "partyScreening", Label: "Pemeriksaan Pihak (Identitas, Kartu, Barang)"},
			{ID: "restrictedAccess", Label: "Pengamanan Akses ke Area Terbatas"},
		}
	case AreaFrontPost:
		return []Item{
			{ID: "visitorIdentification", Label: "Identifikasi Pengunjung"},
			{ID: "baggageCheck", Label: "Pemeriksaan Barang Bawaan"},
			{ID: "vehicleCheck", Label: "Pemeriksaan Kendaraan"},
		}
	case AreaPTSP:
		return []Item{
			{ID: "ptspVisitorCheck", Label: "Pemeriksaan Pengunjung (Barang/Kartu)"},
			{ID: "ptspAccessWatch", Label: "Pengawasan Akses Pihak"},
			{ID: "ptspVisitorOrder", Label: "Pengaturan Pengunjung (Tertib)"},
		}
	case AreaBuilding:
		return []Item{
			{ID: "lightsOut", Label: "Lampu Padam Sesuai Jadwal"},
			{ID: "electronicsOff", Label: "Perangkat Elektronik Non-Server Off"},
			{ID: "gatePadlocked", Label: "Pagar & Pintu Terkunci Gembok"},
			{ID: "floodlightsOn", Label: "Lampu Luar/Sorot Menyala"},
		}
	}
	return nil
}

// Checklist returns the area's items with the log's ticks filled in.
func (l Log) Checklist() []Item {
	items := ItemsFor(l.Area)
	for i := range items {
		items[i].Done = l.itemDone(items[i].ID)
	}
	return items
}

func (l Log) itemDone(id string) bool {
	switch id {
	case "lightsOut":
		return l.LightsOut
	case "electronicsOff":
		return l.ElectronicsOff
	case "gatePadlocked":
		return l.GatePadlocked
	case "doorsLocked":
		return l.DoorsLocked
	case "floodlightsOn":
		return l.FloodlightsOn
	case "courtroomSterile":
		return l.CourtroomSterile
	case "visitorOrder":
		return l.VisitorOrder
	case "partyScreening":
		return l.PartyScreening
	case "restrictedAccess":
		return l.RestrictedAccess
	case "visitorIdentification":
		return l.VisitorIdentification
	case "baggageCheck":
		return l.BaggageCheck
	case "vehicleCheck":
		return l.VehicleCheck
	case "ptspVisitorCheck":
		return l.PTSPVisitorCheck
	case "ptspAccessWatch":
		return l.PTSPAccessWatch
	case "ptspVisitorOrder":
		return l.PTSPVisitorOrder
	}
	return false
}

// SetItem ticks or unticks a checklist field by its item id. Unknown ids
// are ignored so stale frontend payloads cannot fail a patrol report.
func (l *Log) SetItem(id string, done bool) {
	switch id {
	case "lightsOut":
		l.LightsOut = done
	case "electronicsOff":
		l.ElectronicsOff = done
	case "gatePadlocked":
		l.GatePadlocked = done
	case "doorsLocked":
		l.DoorsLocked = done
	case "floodlightsOn":
		l.FloodlightsOn = done
	case "courtroomSterile":
		l.CourtroomSterile = done
	case "visitorOrder":
		l.VisitorOrder = done
	case "partyScreening":
		l.PartyScreening = done
	case "restrictedAccess":
		l.RestrictedAccess = done
	case "visitorIdentification":
		l.VisitorIdentification = done
	case "baggageCheck":
		l.BaggageCheck = done
	case "vehicleCheck":
		l.VehicleCheck = done
	case "ptspVisitorCheck":
		l.PTSPVisitorCheck = done
	case "ptspAccessWatch":
		l.PTSPAccessWatch = done
	case "ptspVisitorOrder":
		l.PTSPVisitorOrder = done
	}
}

// AreasForShift returns the areas patrollable on a shift: the night shift
// only does the whole-building round, day shifts cover everything else.
func AreasForShift(shift Shift) []Area {
	var out []Area
	for _, a := range Areas() {
		if areaOnShift(a, shift) {
			out = append(out, a)
		}
	}
	return out
}

func areaOnShift(area Area, shift Shift) bool {
	if shift == ShiftNight {
		return area == AreaBuilding
	}
	return area != AreaBuilding
}
