package repository

import (
	"math/rand/v2"
	"strings"

	"quizowl/internal/models"
)

// QuestionBank is the static, ordered table of quiz questions
type QuestionBank struct {
	questions []models.QuizQuestion
	byID      map[string]int
}

// NewQuestionBank creates a question bank over the given questions
func NewQuestionBank(questions []models.QuizQuestion) *QuestionBank {
	bank := &QuestionBank{
		questions: make([]models.QuizQuestion, len(questions)),
		byID:      make(map[string]int, len(questions)),
	}
	copy(bank.questions, questions)
	for i, q := range bank.questions {
		bank.byID[q.ID] = i
	}
	return bank
}

// NewDefaultQuestionBank creates a question bank with the built-in questions
func NewDefaultQuestionBank() *QuestionBank {
	return NewQuestionBank(defaultQuestions)
}

// All returns every question in bank order
func (b *QuestionBank) All() []models.QuizQuestion {
	out := make([]models.QuizQuestion, len(b.questions))
	copy(out, b.questions)
	return out
}

// Get returns the question with the given ID
func (b *QuestionBank) Get(id string) (models.QuizQuestion, bool) {
	i, ok := b.byID[id]
	if !ok {
		return models.QuizQuestion{}, false
	}
	return b.questions[i], true
}

// BySubject returns the questions of one subject in bank order
func (b *QuestionBank) BySubject(subject models.Subject) []models.QuizQuestion {
	var out []models.QuizQuestion
	for _, q := range b.questions {
		if q.Subject == subject {
			out = append(out, q)
		}
	}
	return out
}

// ForTopic returns the questions for a quiz topic. The topic is a subject name
// (any case) or "mix", which returns the whole bank in shuffled order.
// Unknown topics yield no questions.
func (b *QuestionBank) ForTopic(topic string) []models.QuizQuestion {
	if strings.EqualFold(strings.TrimSpace(topic), models.TopicMix) {
		out := b.All()
		rand.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
		return out
	}
	subject, ok := models.ParseSubject(topic)
	if !ok {
		return nil
	}
	return b.BySubject(subject)
}

var defaultQuestions = []models.QuizQuestion{
	{
		ID:            "1",
		Subject:       models.SubjectMaths,
		Question:      "What is 5 + 3?",
		Options:       [4]string{"6", "7", "8", "9"},
		CorrectAnswer: 2,
		Explanation:   "When you add 5 and 3 together, you get 8.",
	},
	{
		ID:            "2",
		Subject:       models.SubjectMaths,
		Question:      "What is 12 - 4?",
		Options:       [4]string{"6", "7", "8", "9"},
		CorrectAnswer: 2,
		Explanation:   "When you subtract 4 from 12, you get 8.",
	},
	{
		ID:            "3",
		Subject:       models.SubjectMaths,
		Question:      "What is 7 × 2?",
		Options:       [4]string{"12", "14", "16", "18"},
		CorrectAnswer: 1,
		Explanation:   "7 multiplied by 2 equals 14.",
	},
	{
		ID:            "4",
		Subject:       models.SubjectMaths,
		Question:      "What is 20 ÷ 4?",
		Options:       [4]string{"4", "5", "6", "7"},
		CorrectAnswer: 1,
		Explanation:   "20 divided by 4 equals 5.",
	},
	{
		ID:            "5",
		Subject:       models.SubjectMaths,
		Question:      "What is 9 + 6?",
		Options:       [4]string{"13", "14", "15", "16"},
		CorrectAnswer: 2,
		Explanation:   "When you add 9 and 6, you get 15.",
	},
	{
		ID:            "6",
		Subject:       models.SubjectMaths,
		Question:      "What is 18 - 9?",
		Options:       [4]string{"7", "8", "9", "10"},
		CorrectAnswer: 2,
		Explanation:   "When you subtract 9 from 18, you get 9.",
	},
	{
		ID:            "7",
		Subject:       models.SubjectMaths,
		Question:      "What is 6 × 3?",
		Options:       [4]string{"15", "16", "17", "18"},
		CorrectAnswer: 3,
		Explanation:   "6 multiplied by 3 equals 18.",
	},
	{
		ID:            "8",
		Subject:       models.SubjectMaths,
		Question:      "What is 25 ÷ 5?",
		Options:       [4]string{"3", "4", "5", "6"},
		CorrectAnswer: 2,
		Explanation:   "25 divided by 5 equals 5.",
	},
	{
		ID:            "m9",
		Subject:       models.SubjectMaths,
		Question:      "What is 8 + 7?",
		Options:       [4]string{"14", "15", "16", "17"},
		CorrectAnswer: 1,
		Explanation:   "When you add 8 and 7, you get 15.",
	},
	{
		ID:            "m10",
		Subject:       models.SubjectMaths,
		Question:      "What is 16 - 7?",
		Options:       [4]string{"7", "8", "9", "10"},
		CorrectAnswer: 2,
		Explanation:   "When you subtract 7 from 16, you get 9.",
	},
	{
		ID:            "m11",
		Subject:       models.SubjectMaths,
		Question:      "What is 4 × 5?",
		Options:       [4]string{"15", "20", "25", "30"},
		CorrectAnswer: 1,
		Explanation:   "4 multiplied by 5 equals 20.",
	},
	{
		ID:            "m12",
		Subject:       models.SubjectMaths,
		Question:      "What is 36 ÷ 6?",
		Options:       [4]string{"4", "5", "6", "7"},
		CorrectAnswer: 2,
		Explanation:   "36 divided by 6 equals 6.",
	},
	{
		ID:            "m13",
		Subject:       models.SubjectMaths,
		Question:      "What is 11 + 9?",
		Options:       [4]string{"18", "19", "20", "21"},
		CorrectAnswer: 2,
		Explanation:   "When you add 11 and 9, you get 20.",
	},
	{
		ID:            "m14",
		Subject:       models.SubjectMaths,
		Question:      "What is 24 - 8?",
		Options:       [4]string{"14", "15", "16", "17"},
		CorrectAnswer: 2,
		Explanation:   "When you subtract 8 from 24, you get 16.",
	},
	{
		ID:            "m15",
		Subject:       models.SubjectMaths,
		Question:      "What is 9 × 4?",
		Options:       [4]string{"32", "34", "36", "38"},
		CorrectAnswer: 2,
		Explanation:   "9 multiplied by 4 equals 36.",
	},
	{
		ID:            "m16",
		Subject:       models.SubjectMaths,
		Question:      "What is 42 ÷ 7?",
		Options:       [4]string{"5", "6", "7", "8"},
		CorrectAnswer: 1,
		Explanation:   "42 divided by 7 equals 6.",
	},
	{
		ID:            "m17",
		Subject:       models.SubjectMaths,
		Question:      "What is 13 + 8?",
		Options:       [4]string{"19", "20", "21", "22"},
		CorrectAnswer: 2,
		Explanation:   "When you add 13 and 8, you get 21.",
	},
	{
		ID:            "m18",
		Subject:       models.SubjectMaths,
		Question:      "What is 30 - 12?",
		Options:       [4]string{"16", "17", "18", "19"},
		CorrectAnswer: 2,
		Explanation:   "When you subtract 12 from 30, you get 18.",
	},
	{
		ID:            "m19",
		Subject:       models.SubjectMaths,
		Question:      "What is 8 × 6?",
		Options:       [4]string{"42", "44", "46", "48"},
		CorrectAnswer: 3,
		Explanation:   "8 multiplied by 6 equals 48.",
	},
	{
		ID:            "m20",
		Subject:       models.SubjectMaths,
		Question:      "What is 56 ÷ 8?",
		Options:       [4]string{"6", "7", "8", "9"},
		CorrectAnswer: 1,
		Explanation:   "56 divided by 8 equals 7.",
	},
	{
		ID:            "9",
		Subject:       models.SubjectEnglish,
		Question:      "Which word is a noun?",
		Options:       [4]string{"Run", "Happy", "Book", "Quickly"},
		CorrectAnswer: 2,
		Explanation:   "A noun is a person, place, or thing. \"Book\" is a thing.",
	},
	{
		ID:            "10",
		Subject:       models.SubjectEnglish,
		Question:      "Which word is a verb?",
		Options:       [4]string{"Cat", "Jump", "Blue", "Tall"},
		CorrectAnswer: 1,
		Explanation:   "A verb is an action word. \"Jump\" is an action.",
	},
	{
		ID:            "11",
		Subject:       models.SubjectEnglish,
		Question:      "What is the plural of \"child\"?",
		Options:       [4]string{"Childs", "Children", "Childes", "Childrens"},
		CorrectAnswer: 1,
		Explanation:   "The plural of \"child\" is \"children\".",
	},
	{
		ID:            "12",
		Subject:       models.SubjectEnglish,
		Question:      "Which word is an adjective?",
		Options:       [4]string{"Run", "Beautiful", "Table", "Swim"},
		CorrectAnswer: 1,
		Explanation:   "An adjective describes a noun. \"Beautiful\" describes something.",
	},
	{
		ID:            "13",
		Subject:       models.SubjectEnglish,
		Question:      "What is the opposite of \"hot\"?",
		Options:       [4]string{"Warm", "Cold", "Cool", "Freezing"},
		CorrectAnswer: 1,
		Explanation:   "The opposite of \"hot\" is \"cold\".",
	},
	{
		ID:            "14",
		Subject:       models.SubjectEnglish,
		Question:      "Which sentence is correct?",
		Options:       [4]string{"She go to school", "She goes to school", "She going to school", "She gone to school"},
		CorrectAnswer: 1,
		Explanation:   "The correct form is \"She goes to school\".",
	},
	{
		ID:            "e7",
		Subject:       models.SubjectEnglish,
		Question:      "What is the past tense of \"run\"?",
		Options:       [4]string{"Runned", "Ran", "Running", "Runs"},
		CorrectAnswer: 1,
		Explanation:   "The past tense of \"run\" is \"ran\".",
	},
	{
		ID:            "e8",
		Subject:       models.SubjectEnglish,
		Question:      "Which word rhymes with \"cat\"?",
		Options:       [4]string{"Dog", "Hat", "House", "Tree"},
		CorrectAnswer: 1,
		Explanation:   "\"Hat\" rhymes with \"cat\" because they both end in \"-at\".",
	},
	{
		ID:            "e9",
		Subject:       models.SubjectEnglish,
		Question:      "What is a synonym for \"happy\"?",
		Options:       [4]string{"Sad", "Joyful", "Angry", "Tired"},
		CorrectAnswer: 1,
		Explanation:   "\"Joyful\" means the same as \"happy\".",
	},
	{
		ID:            "e10",
		Subject:       models.SubjectEnglish,
		Question:      "Which word is a pronoun?",
		Options:       [4]string{"Book", "Run", "She", "Beautiful"},
		CorrectAnswer: 2,
		Explanation:   "A pronoun replaces a noun. \"She\" is a pronoun.",
	},
	{
		ID:            "e11",
		Subject:       models.SubjectEnglish,
		Question:      "What is the plural of \"box\"?",
		Options:       [4]string{"Boxs", "Boxes", "Boxies", "Boxen"},
		CorrectAnswer: 1,
		Explanation:   "The plural of \"box\" is \"boxes\".",
	},
	{
		ID:            "e12",
		Subject:       models.SubjectEnglish,
		Question:      "Which word is an adverb?",
		Options:       [4]string{"Quick", "Quickly", "Quickness", "Quicker"},
		CorrectAnswer: 1,
		Explanation:   "An adverb describes how something is done. \"Quickly\" is an adverb.",
	},
	{
		ID:            "e13",
		Subject:       models.SubjectEnglish,
		Question:      "What is the opposite of \"big\"?",
		Options:       [4]string{"Large", "Huge", "Small", "Tiny"},
		CorrectAnswer: 2,
		Explanation:   "The opposite of \"big\" is \"small\".",
	},
	{
		ID:            "e14",
		Subject:       models.SubjectEnglish,
		Question:      "Which sentence has correct punctuation?",
		Options:       [4]string{"How are you", "How are you.", "How are you?", "How are you!"},
		CorrectAnswer: 2,
		Explanation:   "Questions should end with a question mark.",
	},
	{
		ID:            "e15",
		Subject:       models.SubjectEnglish,
		Question:      "What is a compound word?",
		Options:       [4]string{"Running", "Sunshine", "Beautiful", "Quickly"},
		CorrectAnswer: 1,
		Explanation:   "\"Sunshine\" is made of two words: \"sun\" and \"shine\".",
	},
	{
		ID:            "e16",
		Subject:       models.SubjectEnglish,
		Question:      "Which word means the same as \"start\"?",
		Options:       [4]string{"End", "Begin", "Finish", "Stop"},
		CorrectAnswer: 1,
		Explanation:   "\"Begin\" means the same as \"start\".",
	},
	{
		ID:            "e17",
		Subject:       models.SubjectEnglish,
		Question:      "What is the plural of \"mouse\"?",
		Options:       [4]string{"Mouses", "Mice", "Mices", "Mousies"},
		CorrectAnswer: 1,
		Explanation:   "The plural of \"mouse\" is \"mice\".",
	},
	{
		ID:            "e18",
		Subject:       models.SubjectEnglish,
		Question:      "Which word is a preposition?",
		Options:       [4]string{"Under", "Jump", "Happy", "Book"},
		CorrectAnswer: 0,
		Explanation:   "A preposition shows position or direction. \"Under\" is a preposition.",
	},
	{
		ID:            "e19",
		Subject:       models.SubjectEnglish,
		Question:      "What is the past tense of \"eat\"?",
		Options:       [4]string{"Eated", "Ate", "Eating", "Eats"},
		CorrectAnswer: 1,
		Explanation:   "The past tense of \"eat\" is \"ate\".",
	},
	{
		ID:            "e20",
		Subject:       models.SubjectEnglish,
		Question:      "Which word is a conjunction?",
		Options:       [4]string{"Run", "And", "Beautiful", "Quickly"},
		CorrectAnswer: 1,
		Explanation:   "A conjunction connects words or sentences. \"And\" is a conjunction.",
	},
	{
		ID:            "15",
		Subject:       models.SubjectScience,
		Question:      "What do plants need to grow?",
		Options:       [4]string{"Only water", "Only sunlight", "Water and sunlight", "Nothing"},
		CorrectAnswer: 2,
		Explanation:   "Plants need both water and sunlight to grow through photosynthesis.",
	},
	{
		ID:            "16",
		Subject:       models.SubjectScience,
		Question:      "How many legs does a spider have?",
		Options:       [4]string{"6", "8", "10", "12"},
		CorrectAnswer: 1,
		Explanation:   "Spiders have 8 legs.",
	},
	{
		ID:            "17",
		Subject:       models.SubjectScience,
		Question:      "What is the largest planet in our solar system?",
		Options:       [4]string{"Earth", "Mars", "Jupiter", "Saturn"},
		CorrectAnswer: 2,
		Explanation:   "Jupiter is the largest planet in our solar system.",
	},
	{
		ID:            "18",
		Subject:       models.SubjectScience,
		Question:      "What do we call animals that eat only plants?",
		Options:       [4]string{"Carnivores", "Herbivores", "Omnivores", "Insectivores"},
		CorrectAnswer: 1,
		Explanation:   "Animals that eat only plants are called herbivores.",
	},
	{
		ID:            "19",
		Subject:       models.SubjectScience,
		Question:      "What is the center of our solar system?",
		Options:       [4]string{"Earth", "Moon", "Sun", "Mars"},
		CorrectAnswer: 2,
		Explanation:   "The Sun is at the center of our solar system.",
	},
	{
		ID:            "20",
		Subject:       models.SubjectScience,
		Question:      "What is water made of?",
		Options:       [4]string{"Hydrogen only", "Oxygen only", "Hydrogen and Oxygen", "Carbon and Oxygen"},
		CorrectAnswer: 2,
		Explanation:   "Water (H2O) is made of hydrogen and oxygen.",
	},
	{
		ID:            "s7",
		Subject:       models.SubjectScience,
		Question:      "What gas do humans breathe in?",
		Options:       [4]string{"Carbon dioxide", "Oxygen", "Nitrogen", "Helium"},
		CorrectAnswer: 1,
		Explanation:   "Humans breathe in oxygen to survive.",
	},
	{
		ID:            "s8",
		Subject:       models.SubjectScience,
		Question:      "What is the boiling point of water?",
		Options:       [4]string{"50°C", "100°C", "150°C", "200°C"},
		CorrectAnswer: 1,
		Explanation:   "Water boils at 100°C (212°F) at sea level.",
	},
	{
		ID:            "s9",
		Subject:       models.SubjectScience,
		Question:      "How many bones does an adult human have?",
		Options:       [4]string{"106", "206", "306", "406"},
		CorrectAnswer: 1,
		Explanation:   "An adult human has 206 bones in their body.",
	},
	{
		ID:            "s10",
		Subject:       models.SubjectScience,
		Question:      "What force keeps us on the ground?",
		Options:       [4]string{"Magnetism", "Gravity", "Friction", "Electricity"},
		CorrectAnswer: 1,
		Explanation:   "Gravity is the force that keeps us on the ground.",
	},
	{
		ID:            "s11",
		Subject:       models.SubjectScience,
		Question:      "What is the fastest land animal?",
		Options:       [4]string{"Lion", "Cheetah", "Horse", "Tiger"},
		CorrectAnswer: 1,
		Explanation:   "The cheetah is the fastest land animal.",
	},
	{
		ID:            "s12",
		Subject:       models.SubjectScience,
		Question:      "What do bees make?",
		Options:       [4]string{"Milk", "Honey", "Butter", "Cheese"},
		CorrectAnswer: 1,
		Explanation:   "Bees make honey from nectar.",
	},
	{
		ID:            "s13",
		Subject:       models.SubjectScience,
		Question:      "What part of the plant makes food?",
		Options:       [4]string{"Roots", "Leaves", "Stem", "Flowers"},
		CorrectAnswer: 1,
		Explanation:   "Leaves make food for the plant through photosynthesis.",
	},
	{
		ID:            "s14",
		Subject:       models.SubjectScience,
		Question:      "What is the hardest natural substance?",
		Options:       [4]string{"Gold", "Iron", "Diamond", "Silver"},
		CorrectAnswer: 2,
		Explanation:   "Diamond is the hardest natural substance.",
	},
	{
		ID:            "s15",
		Subject:       models.SubjectScience,
		Question:      "How many hearts does an octopus have?",
		Options:       [4]string{"1", "2", "3", "4"},
		CorrectAnswer: 2,
		Explanation:   "An octopus has three hearts.",
	},
	{
		ID:            "s16",
		Subject:       models.SubjectScience,
		Question:      "What is the main source of energy for Earth?",
		Options:       [4]string{"Moon", "Sun", "Stars", "Wind"},
		CorrectAnswer: 1,
		Explanation:   "The Sun is the main source of energy for Earth.",
	},
	{
		ID:            "s17",
		Subject:       models.SubjectScience,
		Question:      "What do we call baby frogs?",
		Options:       [4]string{"Kittens", "Puppies", "Tadpoles", "Cubs"},
		CorrectAnswer: 2,
		Explanation:   "Baby frogs are called tadpoles.",
	},
	{
		ID:            "s18",
		Subject:       models.SubjectScience,
		Question:      "What is the closest planet to the Sun?",
		Options:       [4]string{"Venus", "Earth", "Mercury", "Mars"},
		CorrectAnswer: 2,
		Explanation:   "Mercury is the closest planet to the Sun.",
	},
	{
		ID:            "s19",
		Subject:       models.SubjectScience,
		Question:      "What do we call animals that eat both plants and meat?",
		Options:       [4]string{"Carnivores", "Herbivores", "Omnivores", "Insectivores"},
		CorrectAnswer: 2,
		Explanation:   "Animals that eat both plants and meat are called omnivores.",
	},
	{
		ID:            "s20",
		Subject:       models.SubjectScience,
		Question:      "How many legs does an insect have?",
		Options:       [4]string{"4", "6", "8", "10"},
		CorrectAnswer: 1,
		Explanation:   "All insects have 6 legs.",
	},
}
