package models

// Well-known directory identifiers. These mirror the directory's reference
// data so the UI can render labels before (or without) a lookup round trip.
const (
	ConnectionTypeJ1772    = 1
	ConnectionTypeCHAdeMO  = 2
	ConnectionTypeCCSType1 = 32
	ConnectionTypeCCSType2 = 33
	ConnectionTypeTeslaNA  = 30
	ConnectionTypeType2    = 25

	LevelLowAC    = 1
	LevelMediumAC = 2
	LevelDCFast   = 3

	StatusOperational       = 50
	StatusPartlyOperational = 75
	StatusNotOperational    = 100
	StatusUnknown           = 0
	StatusPlanned           = 150
)

// FallbackConnectionTypes is served when the directory lookup is unreachable.
var FallbackConnectionTypes = []ConnectionType{
	{ID: ConnectionTypeJ1772, Title: "Type 1 (J1772)", FormalName: "SAE J1772-2009"},
	{ID: ConnectionTypeCHAdeMO, Title: "CHAdeMO", FormalName: "IEC 62196-3 Configuration AA"},
	{ID: ConnectionTypeType2, Title: "Type 2 (Socket Only)", FormalName: "IEC 62196-2"},
	{ID: ConnectionTypeTeslaNA, Title: "Tesla (Proprietary)", FormalName: "NACS"},
	{ID: ConnectionTypeCCSType1, Title: "CCS (Type 1)", FormalName: "IEC 62196-3 Configuration EE"},
	{ID: ConnectionTypeCCSType2, Title: "CCS (Type 2)", FormalName: "IEC 62196-3 Configuration FF"},
}

// FallbackChargerLevels mirrors the directory's level table.
var FallbackChargerLevels = []ChargerLevel{
	{ID: LevelLowAC, Title: "Level 1 : Low (Under 2kW)", Comments: "Standard domestic outlet"},
	{ID: LevelMediumAC, Title: "Level 2 : Medium (Over 2kW)", Comments: "Typical public AC charging"},
	{ID: LevelDCFast, Title: "Level 3 : High (Over 40kW)", Comments: "DC fast charging", IsFastChargeCapable: true},
}

// FallbackStatusTypes mirrors the directory's status table.
var FallbackStatusTypes = []StatusType{
	{ID: StatusUnknown, Title: "Unknown"},
	{ID: StatusOperational, Title: "Operational", IsOperational: true, IsUserSelectable: true},
	{ID: StatusPartlyOperational, Title: "Partly Operational (Mixed)", IsOperational: true},
	{ID: StatusNotOperational, Title: "Not Operational", IsUserSelectable: true},
	{ID: StatusPlanned, Title: "Planned For Future Date"},
}

// ConnectionTypeLabel returns the display label for a connection type id,
// falling back to "Unknown" for ids outside the table.
func ConnectionTypeLabel(id int) string {
	for _, ct := range FallbackConnectionTypes {
		if ct.ID == id {
			return ct.Title
		}
	}
	return "Unknown"
}

// LevelLabel returns the display label for a charger level id.
func LevelLabel(id int) string {
	for _, lvl := range FallbackChargerLevels {
		if lvl.ID == id {
			return lvl.Title
		}
	}
	return "Unknown"
}

// StatusLabel returns the display label for a status type id.
func StatusLabel(id int) string {
	for _, st := range FallbackStatusTypes {
		if st.ID == id {
			return st.Title
		}
	}
	return "Unknown"
}
