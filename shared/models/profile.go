package models

// UserProfile is the personal-information record edited on the profile screen
type UserProfile struct {
	Name             string `json:"name" mapstructure:"name"`
	Email            string `json:"email" mapstructure:"email"`
	Phone            string `json:"phone" mapstructure:"phone"`
	IDCard           string `json:"idCard" mapstructure:"idCard"`
	Address          string `json:"address" mapstructure:"address"`
	Company          string `json:"company" mapstructure:"company"`
	BirthDate        string `json:"birthDate" mapstructure:"birthDate"`
	Gender           string `json:"gender" mapstructure:"gender"`
	Occupation       string `json:"occupation" mapstructure:"occupation"`
	EmergencyContact string `json:"emergencyContact" mapstructure:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone" mapstructure:"emergencyPhone"`
}

// Membership is the read-only loyalty summary shown beside the profile
type Membership struct {
	Level        string `json:"level"`
	TotalFlights int    `json:"totalFlights"`
	TotalMiles   int    `json:"totalMiles"`
	MemberSince  string `json:"memberSince"`
}
