package assessment

// Career paths in canonical order. Score ties resolve in this order, and the
// scoring matrix columns below are aligned to the question index.
var careerPaths = []string{"science", "commerce", "arts", "vocational"}

var questions = []Question{
	{
		ID:       1,
		Question: "Which subject do you enjoy the most?",
		Options: []Option{
			{Value: "science", Label: "Science and experiments"},
			{Value: "business", Label: "Business and money matters"},
			{Value: "arts", Label: "Languages, history and society"},
			{Value: "hands-on", Label: "Making and fixing things"},
		},
	},
	{
		ID:       2,
		Question: "How do you prefer to learn new things?",
		Options: []Option{
			{Value: "practical", Label: "Doing practicals and experiments"},
			{Value: "numbers", Label: "Working with numbers and data"},
			{Value: "stories", Label: "Reading stories and discussions"},
			{Value: "building", Label: "Building something with my hands"},
		},
	},
	{
		ID:       3,
		Question: "Which activity would you pick on a free afternoon?",
		Options: []Option{
			{Value: "lab", Label: "Trying a science experiment"},
			{Value: "trading", Label: "Running a small stall or trade"},
			{Value: "painting", Label: "Painting, music or writing"},
			{Value: "repairing", Label: "Repairing a gadget or cycle"},
		},
	},
	{
		ID:       4,
		Question: "How do you usually think through a topic?",
		Options: []Option{
			{Value: "visual", Label: "With diagrams and models"},
			{Value: "money", Label: "In terms of costs and profits"},
			{Value: "creative", Label: "Through imagination and feelings"},
			{Value: "technical", Label: "Step by step, like a manual"},
		},
	},
	{
		ID:       5,
		Question: "How do you approach a difficult problem?",
		Options: []Option{
			{Value: "logical", Label: "Break it down logically"},
			{Value: "strategic", Label: "Plan a strategy and negotiate"},
			{Value: "intuitive", Label: "Follow my intuition"},
			{Value: "mechanical", Label: "Take it apart and see how it works"},
		},
	},
	{
		ID:       6,
		Question: "What excites you most about the future?",
		Options: []Option{
			{Value: "discovery", Label: "Discovering something new"},
			{Value: "markets", Label: "Markets and growing a business"},
			{Value: "expression", Label: "Expressing ideas to the world"},
			{Value: "crafting", Label: "Mastering a craft"},
		},
	},
	{
		ID:       7,
		Question: "Which workplace appeals to you?",
		Options: []Option{
			{Value: "science", Label: "A laboratory or research centre"},
			{Value: "office", Label: "A corporate office"},
			{Value: "studio", Label: "A studio or stage"},
			{Value: "workshop", Label: "A workshop or site"},
		},
	},
	{
		ID:       8,
		Question: "What is your long-term ambition?",
		Options: []Option{
			{Value: "research", Label: "Research and higher studies"},
			{Value: "entrepreneurship", Label: "Starting my own company"},
			{Value: "performing", Label: "Creating or performing"},
			{Value: "trade", Label: "Becoming a skilled professional"},
		},
	},
}

// scoringMatrix maps each path to the answer value, per question position,
// that awards it one point.
var scoringMatrix = map[string][]string{
	"science":    {"science", "practical", "lab", "visual", "logical", "discovery", "science", "research"},
	"commerce":   {"business", "numbers", "trading", "money", "strategic", "markets", "office", "entrepreneurship"},
	"arts":       {"arts", "stories", "painting", "creative", "intuitive", "expression", "studio", "performing"},
	"vocational": {"hands-on", "building", "repairing", "technical", "mechanical", "crafting", "workshop", "trade"},
}

var pathDetails = map[string]PathDetails{
	"science": {
		Name:         "Science",
		Subjects:     []string{"Physics", "Chemistry", "Biology", "Mathematics"},
		Careers:      []string{"Engineer", "Doctor", "Research Scientist", "Data Scientist"},
		Institutions: []string{"IIT", "AIIMS", "IISc", "NIT"},
	},
	"commerce": {
		Name:         "Commerce",
		Subjects:     []string{"Accountancy", "Business Studies", "Economics", "Mathematics"},
		Careers:      []string{"Chartered Accountant", "Investment Banker", "Entrepreneur", "Company Secretary"},
		Institutions: []string{"SRCC", "NMIMS", "Christ University", "ICAI"},
	},
	"arts": {
		Name:         "Arts",
		Subjects:     []string{"History", "Political Science", "Psychology", "Literature"},
		Careers:      []string{"Civil Servant", "Journalist", "Lawyer", "Designer"},
		Institutions: []string{"JNU", "Delhi University", "NLU", "NID"},
	},
	"vocational": {
		Name:         "Vocational",
		Subjects:     []string{"Trade Skills", "Applied Technology", "Workshop Practice", "Business Basics"},
		Careers:      []string{"Electrician", "Automotive Technician", "Chef", "Fashion Designer"},
		Institutions: []string{"ITI", "Polytechnic", "NSDC Centres", "Craft Institutes"},
	},
}
