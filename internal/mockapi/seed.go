package mockapi

import "github.com/thenoetrevino/hireboard/internal/models"

func avatar(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}

// SeedBoard returns the demo pipeline used by the simulated backend and
// the seed command
func SeedBoard() models.Board {
	b := models.NewBoard()
	b[models.ColumnNew] = []models.Candidate{
		{ID: "c1", Name: "Alice Johnson", Role: "Frontend Dev", Score: 85, AvatarURL: avatar("Alice"), Email: "alice.j@example.com", AppliedDate: "2024-02-14", MatchSummary: "Strong React skills, good cultural fit."},
		{ID: "c2", Name: "Bob Smith", Role: "Backend Dev", Score: 72, AvatarURL: avatar("Bob"), Email: "bob.smith@example.com", AppliedDate: "2024-02-13", MatchSummary: "Good SQL knowledge, lacks some Python experience."},
		{ID: "c3", Name: "Charlie Brown", Role: "Fullstack Dev", Score: 90, AvatarURL: avatar("Charlie"), Email: "charlie.b@example.com", AppliedDate: "2024-02-12", MatchSummary: "Versatile developer with strong portfolio."},
		{ID: "c10", Name: "Jack Daniels", Role: "DevOps Engineer", Score: 65, AvatarURL: avatar("Jack"), Email: "jack.d@example.com", AppliedDate: "2024-02-10", MatchSummary: "Intermediate DevOps skills, learning fast."},
	}
	b[models.ColumnScreening] = []models.Candidate{
		{ID: "c4", Name: "Diana Prince", Role: "Product Manager", Score: 88, AvatarURL: avatar("Diana"), Email: "diana.p@example.com", AppliedDate: "2024-02-14", MatchSummary: "Great leadership potential and product vision."},
		{ID: "c5", Name: "Evan Wright", Role: "Designer", Score: 78, AvatarURL: avatar("Evan"), Email: "evan.w@example.com", AppliedDate: "2024-02-11", MatchSummary: "Solid design fundamentals, needs more mobile experience."},
	}
	b[models.ColumnInterview] = []models.Candidate{
		{ID: "c6", Name: "Fiona Gallagher", Role: "HR Specialist", Score: 92, AvatarURL: avatar("Fiona"), Email: "fiona.g@example.com", AppliedDate: "2024-02-09", MatchSummary: "Excellent communication and empathy."},
	}
	b[models.ColumnOffer] = []models.Candidate{
		{ID: "c7", Name: "George Martin", Role: "Tech Lead", Score: 95, AvatarURL: avatar("George"), Email: "george.m@example.com", AppliedDate: "2024-02-05", MatchSummary: "Perfect match for Tech Lead role."},
	}
	b[models.ColumnRejected] = []models.Candidate{
		{ID: "c8", Name: "Hannah Abbott", Role: "Intern", Score: 45, AvatarURL: avatar("Hannah"), Email: "hannah.a@example.com", AppliedDate: "2024-02-15", MatchSummary: "Too junior for current openings."},
	}
	return b
}
