// Package subjects holds the static JAMB subject catalog. Subjects are
// compiled in rather than persisted: the set changes only with a release.
package subjects

import "strings"

type Subject struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	QuestionCount int      `json:"questionCount"`
	Duration      int      `json:"duration"` // minutes
	Sections      []string `json:"sections"`
}

var catalog = []Subject{
	{
		Code:          "ENG",
		Name:          "Use of English",
		QuestionCount: 60,
		Duration:      60,
		Sections: []string{
			"Comprehension Passages",
			"Antonyms and Synonyms",
			"Sentence Completion",
			"Oral English",
			"Lexis and Structure",
		},
	},
	{
		Code:          "MTH",
		Name:          "Mathematics",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Number and Numeration",
			"Algebra",
			"Geometry/Trigonometry",
			"Calculus",
			"Statistics",
		},
	},
	{
		Code:          "PHY",
		Name:          "Physics",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Mechanics",
			"Thermal Physics",
			"Waves and Optics",
			"Electricity and Magnetism",
			"Modern Physics",
		},
	},
	{
		Code:          "CHM",
		Name:          "Chemistry",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Physical Chemistry",
			"Inorganic Chemistry",
			"Organic Chemistry",
			"Environmental Chemistry",
			"Analytical Chemistry",
		},
	},
	{
		Code:          "BIO",
		Name:          "Biology",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Cell Biology",
			"Plant Biology",
			"Animal Biology",
			"Ecology",
			"Genetics and Evolution",
		},
	},
	{
		Code:          "ECO",
		Name:          "Economics",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Basic Economic Concepts",
			"Microeconomics",
			"Macroeconomics",
			"International Trade",
			"Economic Development",
		},
	},
	{
		Code:          "ACC",
		Name:          "Accounting",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Financial Accounting",
			"Cost Accounting",
			"Management Accounting",
			"Government Accounting",
			"Auditing",
		},
	},
	{
		Code:          "COM",
		Name:          "Commerce",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Trade",
			"Business Organizations",
			"Finance",
			"Marketing",
			"Business Communication",
		},
	},
	{
		Code:          "LIT",
		Name:          "Literature in English",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"African Prose",
			"Non-African Prose",
			"African Drama",
			"Non-African Drama",
			"Poetry",
		},
	},
	{
		Code:          "GOV",
		Name:          "Government",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Political Theory",
			"Nigerian Government",
			"International Relations",
			"Public Administration",
			"Political Parties",
		},
	},
	{
		Code:          "HIS",
		Name:          "History",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Nigerian History Pre-1800",
			"Nigerian History 1800-1960",
			"Nigerian History Post-1960",
			"African History",
			"World History",
		},
	},
	{
		Code:          "GEO",
		Name:          "Geography",
		QuestionCount: 40,
		Duration:      60,
		Sections: []string{
			"Physical Geography",
			"Human Geography",
			"Regional Geography",
			"Map Reading",
			"GIS and Remote Sensing",
		},
	},
}

// All returns every subject in catalog order.
func All() []Subject {
	out := make([]Subject, len(catalog))
	copy(out, catalog)
	return out
}

// ByCode looks up a subject by its 3-letter code, case-insensitively.
func ByCode(code string) (Subject, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range catalog {
		if s.Code == code {
			return s, true
		}
	}
	return Subject{}, false
}
