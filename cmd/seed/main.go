// Seeds the question bank with a starter set of verified questions so a
// fresh database can serve practice sessions immediately.
package main

import (
	"log"

	"github.com/mitchell1972/examCoachNG/internal/config"
	"github.com/mitchell1972/examCoachNG/internal/database"
	"github.com/mitchell1972/examCoachNG/internal/models"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	seeded := 0
	for _, q := range sampleQuestions() {
		var count int64
		db.Model(&models.Question{}).
			Where("subject_code = ? AND stem = ?", q.SubjectCode, q.Stem).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&q).Error; err != nil {
			log.Fatalf("failed to seed question (%s): %v", q.SubjectCode, err)
		}
		seeded++
	}

	var total int64
	db.Model(&models.Question{}).Count(&total)
	log.Printf("seeded %d new questions, %d total in bank", seeded, total)
}

func intPtr(n int) *int { return &n }

func sampleQuestions() []models.Question {
	return []models.Question{
		{
			SubjectCode:   "MTH",
			Section:       "Algebra",
			Year:          intPtr(2022),
			Stem:          "If 2x + 3 = 11, what is the value of x?",
			OptionA:       "2",
			OptionB:       "3",
			OptionC:       "4",
			OptionD:       "5",
			CorrectOption: "C",
			Explanation:   "2x = 11 - 3 = 8, so x = 4.",
			Difficulty:    1,
			Tags:          []string{"linear-equations"},
			Verified:      true,
		},
		{
			SubjectCode:   "MTH",
			Section:       "Number and Numeration",
			Year:          intPtr(2021),
			Stem:          "Convert 101101 in base 2 to base 10.",
			OptionA:       "43",
			OptionB:       "45",
			OptionC:       "47",
			OptionD:       "53",
			CorrectOption: "B",
			Explanation:   "32 + 8 + 4 + 1 = 45.",
			Difficulty:    2,
			Tags:          []string{"number-bases"},
			Verified:      true,
		},
		{
			SubjectCode:   "MTH",
			Section:       "Statistics",
			Year:          intPtr(2023),
			Stem:          "The mean of 4, 7, 9, and x is 8. Find x.",
			OptionA:       "10",
			OptionB:       "11",
			OptionC:       "12",
			OptionD:       "13",
			CorrectOption: "C",
			Explanation:   "Sum must be 32; 32 - 20 = 12.",
			Difficulty:    2,
			Tags:          []string{"mean"},
			Verified:      true,
		},
		{
			SubjectCode:   "ENG",
			Section:       "Antonyms and Synonyms",
			Year:          intPtr(2022),
			Stem:          "Choose the word nearest in meaning to 'candid'.",
			OptionA:       "Secretive",
			OptionB:       "Frank",
			OptionC:       "Rude",
			OptionD:       "Careful",
			CorrectOption: "B",
			Explanation:   "Candid means frank or forthright.",
			Difficulty:    2,
			Tags:          []string{"synonyms"},
			Verified:      true,
		},
		{
			SubjectCode:   "ENG",
			Section:       "Lexis and Structure",
			Year:          intPtr(2021),
			Stem:          "Neither of the boys ___ present at the meeting.",
			OptionA:       "were",
			OptionB:       "are",
			OptionC:       "was",
			OptionD:       "have been",
			CorrectOption: "C",
			Explanation:   "'Neither' takes a singular verb.",
			Difficulty:    2,
			Tags:          []string{"concord"},
			Verified:      true,
		},
		{
			SubjectCode:   "PHY",
			Section:       "Mechanics",
			Year:          intPtr(2022),
			Stem:          "A body moves with uniform velocity when its acceleration is",
			OptionA:       "increasing",
			OptionB:       "decreasing",
			OptionC:       "constant",
			OptionD:       "zero",
			CorrectOption: "D",
			Explanation:   "Uniform velocity means no change in velocity, so acceleration is zero.",
			Difficulty:    1,
			Tags:          []string{"kinematics"},
			Verified:      true,
		},
		{
			SubjectCode:   "PHY",
			Section:       "Electricity and Magnetism",
			Year:          intPtr(2023),
			Stem:          "The unit of electrical resistance is the",
			OptionA:       "volt",
			OptionB:       "ohm",
			OptionC:       "ampere",
			OptionD:       "watt",
			CorrectOption: "B",
			Difficulty:    1,
			Tags:          []string{"units"},
			Verified:      true,
		},
		{
			SubjectCode:   "BIO",
			Section:       "Cell Biology",
			Year:          intPtr(2022),
			Stem:          "The basic structural and functional unit of life is the",
			OptionA:       "tissue",
			OptionB:       "organ",
			OptionC:       "cell",
			OptionD:       "organelle",
			CorrectOption: "C",
			Explanation:   "The cell is the smallest structural and functional unit of all living organisms.",
			Difficulty:    1,
			Tags:          []string{"cells"},
			Verified:      true,
		},
		{
			SubjectCode:   "BIO",
			Section:       "Genetics and Evolution",
			Year:          intPtr(2021),
			Stem:          "The physical expression of an organism's genes is called its",
			OptionA:       "genotype",
			OptionB:       "phenotype",
			OptionC:       "allele",
			OptionD:       "chromosome",
			CorrectOption: "B",
			Difficulty:    2,
			Tags:          []string{"genetics"},
			Verified:      true,
		},
		{
			SubjectCode:   "CHM",
			Section:       "Physical Chemistry",
			Year:          intPtr(2023),
			Stem:          "The number of moles in 36 g of water (H2O = 18) is",
			OptionA:       "1",
			OptionB:       "2",
			OptionC:       "3",
			OptionD:       "4",
			CorrectOption: "B",
			Explanation:   "36 / 18 = 2 moles.",
			Difficulty:    1,
			Tags:          []string{"mole-concept"},
			Verified:      true,
		},
	}
}
