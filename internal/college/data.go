package college

// Static catalog, split by the class after which the institution admits.

var collegesAfterTenth = []College{
	{
		ID: 1, Name: "Government Polytechnic Pune", Location: "Pune",
		Type: TypeGovernment, AdmitsAfter: "10th",
		Courses: []string{"Diploma in Computer Engineering", "Diploma in Mechanical Engineering", "Diploma in Civil Engineering"},
		Website: "https://www.gppune.ac.in",
	},
	{
		ID: 2, Name: "Industrial Training Institute Aundh", Location: "Pune",
		Type: TypeGovernment, AdmitsAfter: "10th",
		Courses: []string{"Electrician", "Fitter", "Welder", "Mechanic Motor Vehicle"},
	},
	{
		ID: 3, Name: "Fergusson College Junior Wing", Location: "Pune",
		Type: TypePrivate, AdmitsAfter: "10th",
		Courses: []string{"Science (11th-12th)", "Commerce (11th-12th)", "Arts (11th-12th)"},
		Website: "https://www.fergusson.edu",
	},
	{
		ID: 4, Name: "Government Polytechnic Mumbai", Location: "Mumbai",
		Type: TypeGovernment, AdmitsAfter: "10th",
		Courses: []string{"Diploma in Electronics", "Diploma in Information Technology", "Diploma in Chemical Engineering"},
	},
	{
		ID: 5, Name: "St. Xavier's College Junior Wing", Location: "Mumbai",
		Type: TypePrivate, AdmitsAfter: "10th",
		Courses: []string{"Science (11th-12th)", "Arts (11th-12th)"},
		Website: "https://xaviers.edu",
	},
	{
		ID: 6, Name: "Government ITI Nashik", Location: "Nashik",
		Type: TypeGovernment, AdmitsAfter: "10th",
		Courses: []string{"Electrician", "Turner", "Computer Operator and Programming Assistant"},
	},
}

var collegesAfterTwelfth = []College{
	{
		ID: 101, Name: "College of Engineering Pune", Location: "Pune",
		Type: TypeGovernment, AdmitsAfter: "12th",
		Courses: []string{"B.Tech Computer Engineering", "B.Tech Mechanical Engineering", "B.Tech Electrical Engineering"},
		Website: "https://www.coep.org.in",
	},
	{
		ID: 102, Name: "Symbiosis College of Arts and Commerce", Location: "Pune",
		Type: TypePrivate, AdmitsAfter: "12th",
		Courses: []string{"B.A.", "B.Com", "B.A. Economics"},
		Website: "https://www.symbiosiscollege.edu.in",
	},
	{
		ID: 103, Name: "Grant Medical College", Location: "Mumbai",
		Type: TypeGovernment, AdmitsAfter: "12th",
		Courses: []string{"MBBS", "B.Sc Nursing"},
	},
	{
		ID: 104, Name: "Narsee Monjee College of Commerce", Location: "Mumbai",
		Type: TypePrivate, AdmitsAfter: "12th",
		Courses: []string{"B.Com", "BMS", "B.A.F."},
		Website: "https://www.nmcollege.in",
	},
	{
		ID: 105, Name: "HPT Arts and RYK Science College", Location: "Nashik",
		Type: TypePrivate, AdmitsAfter: "12th",
		Courses: []string{"B.Sc", "B.A.", "M.Sc"},
	},
	{
		ID: 106, Name: "Government Law College Mumbai", Location: "Mumbai",
		Type: TypeGovernment, AdmitsAfter: "12th",
		Courses: []string{"LL.B", "B.L.S. LL.B"},
	},
}
