package repository

import "activity-signup-service/internal/model"

// SeedCatalog возвращает исходный каталог занятий, с которым стартует сервис.
// Каждый вызов отдаёт новую копию.
func SeedCatalog() model.Catalog {
	return model.Catalog{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice drills and compete against other schools",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		"Soccer Club": {
			Description:     "Train together and play friendly matches",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"lucas@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Rehearse and perform plays for the school community",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"ava@mergington.edu"},
		},
		"Art Workshop": {
			Description:     "Explore painting, drawing and sculpture",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"mia@mergington.edu"},
		},
	}
}
