package service

import "github.com/campusevents/campus-events/internal/domain"

// seedEvents is the fixed catalog compiled into the binary. Seed ids are
// small decimal tokens reserved for this list; user-created ids come from
// nextID and cannot collide with them.
var seedEvents = []domain.Event{
	{
		ID:          "1",
		Title:       "Machine Learning Workshop",
		Description: "Learn the fundamentals of machine learning with hands-on projects using Python and TensorFlow. Perfect for beginners and intermediate students.",
		Date:        "2025-01-25T14:00:00Z",
		Location:    "Engineering Building - Room 101",
		Category:    domain.CategoryAcademic,
		Image:       "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   45,
		Price:       0,
		Tags:        []string{"Tech", "AI", "Python", "Workshop"},
	},
	{
		ID:          "2",
		Title:       "Winter Formal Dance",
		Description: "Join us for an elegant evening of music, dancing, and celebration. Dress code: formal attire. Refreshments will be provided.",
		Date:        "2025-01-30T19:00:00Z",
		Location:    "Student Union Ballroom",
		Category:    domain.CategorySocial,
		Image:       "https://images.pexels.com/photos/1190298/pexels-photo-1190298.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   120,
		Price:       25,
		Tags:        []string{"Dance", "Formal", "Music", "Social"},
	},
	{
		ID:          "3",
		Title:       "Basketball vs Riverside University",
		Description: "Home game against our conference rivals. Come support the team! Student tickets available with ID.",
		Date:        "2025-01-28T18:00:00Z",
		Location:    "Campus Arena",
		Category:    domain.CategorySports,
		Image:       "https://images.pexels.com/photos/358042/pexels-photo-358042.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   200,
		Price:       5,
		Tags:        []string{"Basketball", "Sports", "Competition", "Team Spirit"},
	},
	{
		ID:          "4",
		Title:       "Photography Club Exhibition",
		Description: "Showcasing stunning work from our talented photography club members. Voting for peoples choice award.",
		Date:        "2025-01-26T16:00:00Z",
		Location:    "Art Gallery - Main Campus",
		Category:    domain.CategoryClubs,
		Image:       "https://images.pexels.com/photos/1181346/pexels-photo-1181346.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   35,
		Price:       0,
		Tags:        []string{"Photography", "Art", "Exhibition", "Creative"},
	},
	{
		ID:          "5",
		Title:       "Tech Career Fair 2025",
		Description: "Meet with top tech companies and startups. Bring your resume and dress professionally. Great networking opportunities.",
		Date:        "2025-01-29T10:00:00Z",
		Location:    "Conference Center",
		Category:    domain.CategoryCareer,
		Image:       "https://images.pexels.com/photos/3183197/pexels-photo-3183197.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   300,
		Price:       0,
		Tags:        []string{"Career", "Networking", "Technology", "Jobs"},
	},
	{
		ID:          "6",
		Title:       "Study Abroad Information Session",
		Description: "Learn about exciting study abroad opportunities for the summer and fall semesters. Financial aid information available.",
		Date:        "2025-01-27T15:00:00Z",
		Location:    "International Center - Room 205",
		Category:    domain.CategoryAcademic,
		Image:       "https://images.pexels.com/photos/1708936/pexels-photo-1708936.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   60,
		Price:       0,
		Tags:        []string{"Study Abroad", "Travel", "International", "Education"},
	},
	{
		ID:          "7",
		Title:       "Open Mic Night",
		Description: "Share your talent! Poetry, music, comedy - all welcome. Sign up starts at 7 PM, performances begin at 8 PM.",
		Date:        "2025-01-31T19:00:00Z",
		Location:    "Campus Coffee House",
		Category:    domain.CategorySocial,
		Image:       "https://images.pexels.com/photos/164746/pexels-photo-164746.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   80,
		Price:       0,
		Tags:        []string{"Music", "Poetry", "Performance", "Open Mic"},
	},
	{
		ID:          "8",
		Title:       "Intramural Soccer Tournament",
		Description: "Register your team for the spring intramural soccer tournament. All skill levels welcome. Prizes for winners!",
		Date:        "2025-02-01T13:00:00Z",
		Location:    "Athletic Fields",
		Category:    domain.CategorySports,
		Image:       "https://images.pexels.com/photos/114296/pexels-photo-114296.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   150,
		Price:       10,
		Tags:        []string{"Soccer", "Tournament", "Intramural", "Team Sports"},
	},
	{
		ID:          "9",
		Title:       "Robotics Club Demo Day",
		Description: "See amazing robots built by our engineering students. Interactive demonstrations and Q&A sessions with club members.",
		Date:        "2025-02-02T14:00:00Z",
		Location:    "Engineering Lab Building",
		Category:    domain.CategoryClubs,
		Image:       "https://images.pexels.com/photos/2599244/pexels-photo-2599244.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   70,
		Price:       0,
		Tags:        []string{"Robotics", "Engineering", "Technology", "Demo"},
	},
	{
		ID:          "10",
		Title:       "Graduate School Application Workshop",
		Description: "Get help with your graduate school applications. Personal statement reviews, recommendation letter guidance, and more.",
		Date:        "2025-02-03T13:00:00Z",
		Location:    "Career Services Center",
		Category:    domain.CategoryCareer,
		Image:       "https://images.pexels.com/photos/1438081/pexels-photo-1438081.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   40,
		Price:       0,
		Tags:        []string{"Graduate School", "Applications", "Career", "Workshop"},
	},
	{
		ID:          "11",
		Title:       "Sustainability Fair",
		Description: "Learn about environmental initiatives on campus and in the community. Eco-friendly vendors and sustainability workshops.",
		Date:        "2025-02-04T11:00:00Z",
		Location:    "Quad - Main Campus",
		Category:    domain.CategoryAcademic,
		Image:       "https://images.pexels.com/photos/1108572/pexels-photo-1108572.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   90,
		Price:       0,
		Tags:        []string{"Sustainability", "Environment", "Green", "Community"},
	},
	{
		ID:          "12",
		Title:       "Game Night Extravaganza",
		Description: "Board games, video games, and card games! Bring your friends or make new ones. Snacks and prizes provided.",
		Date:        "2025-02-05T18:00:00Z",
		Location:    "Student Recreation Center",
		Category:    domain.CategorySocial,
		Image:       "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg?auto=compress&cs=tinysrgb&w=800",
		Attendees:   110,
		Price:       5,
		Tags:        []string{"Games", "Social", "Board Games", "Video Games"},
	},
}
