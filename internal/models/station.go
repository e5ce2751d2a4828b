package models

// ChargingStation is a point-of-interest record from the station directory.
// The directory owns every field except the client-side flags at the bottom;
// those are attached locally and never written back.
type ChargingStation struct {
	ID                   int          `json:"ID"`
	UUID                 string       `json:"UUID"`
	AddressInfo          AddressInfo  `json:"AddressInfo"`
	Connections          []Connection `json:"Connections"`
	OperatorID           *int         `json:"OperatorID,omitempty"`
	OperatorInfo         *Operator    `json:"OperatorInfo,omitempty"`
	UsageType            *UsageType   `json:"UsageType,omitempty"`
	StatusType           *StatusType  `json:"StatusType,omitempty"`
	NumberOfPoints       int          `json:"NumberOfPoints"`
	GeneralComments      string       `json:"GeneralComments,omitempty"`
	DateCreated          string       `json:"DateCreated"`
	DateLastStatusUpdate string       `json:"DateLastStatusUpdate,omitempty"`

	// Client-side only, never sent by the directory.
	Distance       float64 `json:"Distance,omitempty"`
	IsFavorite     bool    `json:"IsFavorite,omitempty"`
	RecentlyViewed bool    `json:"RecentlyViewed,omitempty"`
}

// AddressInfo is the directory's address/location block.
type AddressInfo struct {
	Title            string   `json:"Title"`
	AddressLine1     string   `json:"AddressLine1,omitempty"`
	AddressLine2     string   `json:"AddressLine2,omitempty"`
	Town             string   `json:"Town,omitempty"`
	StateOrProvince  string   `json:"StateOrProvince,omitempty"`
	Postcode         string   `json:"Postcode,omitempty"`
	Country          *Country `json:"Country,omitempty"`
	Latitude         float64  `json:"Latitude"`
	Longitude        float64  `json:"Longitude"`
	ContactTelephone string   `json:"ContactTelephone1,omitempty"`
	AccessComments   string   `json:"AccessComments,omitempty"`
}

// Connection is one physical plug at a station.
type Connection struct {
	ID               int             `json:"ID"`
	ConnectionTypeID int             `json:"ConnectionTypeID"`
	ConnectionType   *ConnectionType `json:"ConnectionType,omitempty"`
	LevelID          *int            `json:"LevelID,omitempty"`
	Level            *ChargerLevel   `json:"Level,omitempty"`
	PowerKW          *float64        `json:"PowerKW,omitempty"`
	CurrentTypeID    *int            `json:"CurrentTypeID,omitempty"`
	StatusTypeID     *int            `json:"StatusTypeID,omitempty"`
	StatusType       *StatusType     `json:"StatusType,omitempty"`
	Quantity         int             `json:"Quantity,omitempty"`
}

// ConnectionType is a plug standard (CCS, CHAdeMO, J1772, ...).
type ConnectionType struct {
	ID             int    `json:"ID"`
	Title          string `json:"Title"`
	FormalName     string `json:"FormalName,omitempty"`
	IsDiscontinued bool   `json:"IsDiscontinued,omitempty"`
	IsObsolete     bool   `json:"IsObsolete,omitempty"`
}

// ChargerLevel is the AC/DC power tier of a connection.
type ChargerLevel struct {
	ID                  int    `json:"ID"`
	Title               string `json:"Title"`
	Comments            string `json:"Comments,omitempty"`
	IsFastChargeCapable bool   `json:"IsFastChargeCapable"`
}

// StatusType is the operational status of a station or connection.
type StatusType struct {
	ID               int    `json:"ID"`
	Title            string `json:"Title"`
	IsOperational    bool   `json:"IsOperational"`
	IsUserSelectable bool   `json:"IsUserSelectable,omitempty"`
}

// Operator is a charging network reference.
type Operator struct {
	ID           int    `json:"ID"`
	Title        string `json:"Title"`
	WebsiteURL   string `json:"WebsiteURL,omitempty"`
	ContactEmail string `json:"ContactEmail,omitempty"`
	PhonePrimary string `json:"PhonePrimaryContact,omitempty"`
}

// UsageType describes who may use a station (public, private, membership).
type UsageType struct {
	ID                   int    `json:"ID"`
	Title                string `json:"Title"`
	IsPayAtLocation      *bool  `json:"IsPayAtLocation,omitempty"`
	IsMembershipRequired *bool  `json:"IsMembershipRequired,omitempty"`
	IsAccessKeyRequired  *bool  `json:"IsAccessKeyRequired,omitempty"`
}

// Country is a directory country reference.
type Country struct {
	ID            int    `json:"ID"`
	ISOCode       string `json:"ISOCode"`
	Title         string `json:"Title"`
	ContinentCode string `json:"ContinentCode,omitempty"`
}

// SearchFilters is the value object translated 1:1 into directory query
// parameters. Nil / zero values mean "not set".
type SearchFilters struct {
	Latitude          *float64
	Longitude         *float64
	RadiusMiles       *float64
	ConnectionTypeIDs []int
	LevelIDs          []int
	StatusTypeIDs     []int
	OperatorIDs       []int
	UsageTypeID       *int
	MinPowerKW        *float64
	MaxPowerKW        *float64
	CountryCode       string
	MaxResults        int
	OpenDataOnly      bool
	IncludeComments   bool
}
