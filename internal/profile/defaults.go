package profile

import "github.com/cx-tal-miterani/bluesky-booking/shared/models"

// DemoProfile is the record every session starts with.
func DemoProfile() models.UserProfile {
	return models.UserProfile{
		Name:             "Zhang San",
		Email:            "admin@example.com",
		Phone:            "138****8888",
		IDCard:           "110101199001011234",
		Address:          "1 Jianguomenwai Avenue, Chaoyang District, Beijing",
		Company:          "Beijing Technology Co., Ltd.",
		BirthDate:        "1990-01-01",
		Gender:           "male",
		Occupation:       "Software Engineer",
		EmergencyContact: "Li Si",
		EmergencyPhone:   "139****9999",
	}
}

func DemoMembership() models.Membership {
	return models.Membership{
		Level:        "VIP",
		TotalFlights: 12,
		TotalMiles:   25680,
		MemberSince:  "2020-03-15",
	}
}
