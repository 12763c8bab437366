package assessment

import "strings"

type QuestionType string

const (
	FreeText       QuestionType = "text"
	MultipleChoice QuestionType = "multiple-choice"
)

type Question struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
}

// Bucket is a closed set of question families. Every category resolves to
// exactly one bucket; BucketGeneric is the fallback.
type Bucket string

const (
	BucketCooking  Bucket = "cooking"
	BucketCrafts   Bucket = "crafts"
	BucketTutoring Bucket = "tutoring"
	BucketGeneric  Bucket = "generic"
)

// Question ids every set starts with. Both are required by verification.
const (
	QuestionExperience = "experience"
	QuestionEducation  = "education"
)

var ProficiencyLevels = []string{"Beginner", "Intermediate", "Advanced", "Expert"}

var commonQuestions = []Question{
	{ID: QuestionExperience, Question: "How many years of experience do you have with this skill?", Type: FreeText},
	{ID: QuestionEducation, Question: "Do you have any formal education or training in this area?", Type: FreeText},
}

// bucketKeywords is checked in order; the first bucket with a keyword
// contained in the category wins.
var bucketKeywords = []struct {
	bucket   Bucket
	keywords []string
}{
	{BucketCooking, []string{"cooking", "baking"}},
	{BucketCrafts, []string{"crafts", "handmade"}},
	{BucketTutoring, []string{"tutoring", "teaching"}},
}

var bucketQuestions = map[Bucket][]Question{
	BucketCooking: {
		{ID: "techniques", Question: "What cooking or baking techniques are you most comfortable with?", Type: FreeText},
		{ID: "specialty", Question: "What dishes or baked goods are your specialty?", Type: FreeText},
		{ID: "dietary", Question: "Can you accommodate dietary restrictions (vegan, gluten-free, allergies)?", Type: FreeText},
	},
	BucketCrafts: {
		{ID: "materials", Question: "Which materials do you usually work with?", Type: FreeText},
		{ID: "techniques", Question: "Which crafting techniques have you mastered?", Type: FreeText},
		{ID: "portfolio", Question: "Describe a few pieces you have made or sold.", Type: FreeText},
	},
	BucketTutoring: {
		{ID: "subjects", Question: "Which subjects and levels do you teach?", Type: FreeText},
		{ID: "methodology", Question: "How do you structure a lesson and track progress?", Type: FreeText},
		{ID: "certification", Question: "Do you hold any teaching certifications?", Type: FreeText},
	},
	BucketGeneric: {
		{ID: "proficiency", Question: "How would you rate your proficiency in this skill?", Type: MultipleChoice, Options: ProficiencyLevels},
		{ID: "description", Question: "Describe your experience with this skill.", Type: FreeText},
		{ID: "examples", Question: "Share examples or references of your work.", Type: FreeText},
	},
}

// BucketFor resolves a free-text category, case-insensitively.
func BucketFor(category string) Bucket {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return BucketGeneric
	}
	for _, b := range bucketKeywords {
		for _, kw := range b.keywords {
			if strings.Contains(c, kw) {
				return b.bucket
			}
		}
	}
	return BucketGeneric
}

// QuestionsFor returns the ordered question set for category: the common
// questions first, then the bucket's own. The result is a fresh slice.
func QuestionsFor(category string) []Question {
	specific := bucketQuestions[BucketFor(category)]
	out := make([]Question, 0, len(commonQuestions)+len(specific))
	for _, q := range commonQuestions {
		out = append(out, q.clone())
	}
	for _, q := range specific {
		out = append(out, q.clone())
	}
	return out
}

// RequiredQuestionIDs lists the answers verification cannot proceed without.
func RequiredQuestionIDs() []string {
	return []string{QuestionExperience, QuestionEducation}
}

func (q Question) clone() Question {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return q
}
