package domain

// RateType classifies how a rate amount is quoted.
type RateType string

const (
	RateHourly  RateType = "hourly"
	RateDaily   RateType = "daily"
	RateMonthly RateType = "monthly"
)

// Rate is a value object pairing a rate type with a positive amount in JPY.
type Rate struct {
	Type   RateType `json:"type" bson:"type"`
	Amount int      `json:"amount" bson:"amount"`
}

// Consultant is a service provider listed in the directory.
//
// CreatedAt is a date string (YYYY-MM-DD) so that lexicographic comparison
// doubles as chronological ordering.
type Consultant struct {
	ID                   string   `json:"id" bson:"id"`
	Name                 string   `json:"name" bson:"name"`
	ExperienceYears      int      `json:"experience_years" bson:"experience_years"`
	PreferredRate        Rate     `json:"preferred_rate" bson:"preferred_rate"`
	PreferredUtilization int      `json:"preferred_utilization" bson:"preferred_utilization"`
	BaseLocation         string   `json:"base_location" bson:"base_location"`
	Remote               bool     `json:"remote" bson:"remote"`
	Skills               []string `json:"skills" bson:"skills"`
	Industries           []string `json:"industries" bson:"industries"`
	AvailableFrom        string   `json:"available_from" bson:"available_from"`
	EngagementLength     string   `json:"engagement_length" bson:"engagement_length"`
	Bio                  string   `json:"bio" bson:"bio"`
	Contact              string   `json:"contact" bson:"contact"`
	CreatedAt            string   `json:"created_at" bson:"created_at"`
}

// EntityID satisfies ports.Entity.
func (c Consultant) EntityID() string { return c.ID }
