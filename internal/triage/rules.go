package triage

// conditionRule maps symptom keywords to a predicted condition. Matching is
// plain substring containment on the lowercased input, so short keywords
// like "see" or "red" fire on any text containing them. Rule order is part
// of the contract: on a tie the earlier rule wins.
type conditionRule struct {
	Keywords       []string
	Prediction     string
	Specialist     string
	Recommendation string
}

var conditionRules = []conditionRule{
	{
		Keywords:       []string{"headache", "migraine", "light", "sensitivity", "nausea", "dizzy"},
		Prediction:     "Migraine",
		Specialist:     "Neurologist",
		Recommendation: "Rest in a dark, quiet room. Stay hydrated and avoid screens.",
	},
	{
		Keywords:       []string{"fever", "cold", "cough", "runny", "sneeze", "throat", "congestion"},
		Prediction:     "Viral Infection / Flu",
		Specialist:     "General Physician",
		Recommendation: "Rest, drink plenty of fluids, and monitor temperature. Isolate if contagious.",
	},
	{
		Keywords:       []string{"chest", "pain", "heart", "breath", "pressure", "tight"},
		Prediction:     "Potential Cardiac Issue",
		Specialist:     "Cardiologist",
		Recommendation: "Seek immediate medical attention if pain is severe. Consult a cardiologist.",
	},
	{
		Keywords:       []string{"skin", "rash", "itch", "redness", "dry", "bump"},
		Prediction:     "Dermatitis / Skin Allergy",
		Specialist:     "Dermatologist",
		Recommendation: "Avoid irritants, keep area clean and moisturized. Do not scratch.",
	},
	{
		Keywords:       []string{"stomach", "pain", "digest", "acid", "bloat", "vomit", "diarrhea"},
		Prediction:     "Gastritis / Indigestion",
		Specialist:     "Gastroenterologist",
		Recommendation: "Avoid spicy/oily foods, eat smaller meals, and stay hydrated.",
	},
	{
		Keywords:       []string{"joint", "pain", "knee", "back", "stiff", "bone", "muscle"},
		Prediction:     "Arthritis / Muscular Strain",
		Specialist:     "Orthopedist",
		Recommendation: "Rest affected area, apply ice/heat as needed. Avoid heavy lifting.",
	},
	{
		Keywords:       []string{"tooth", "gum", "pain", "mouth", "bleed", "sensitive"},
		Prediction:     "Dental Issue",
		Specialist:     "Dentist",
		Recommendation: "Rinse with warm salt water and schedule a dental visit.",
	},
	{
		Keywords:       []string{"vision", "eye", "blur", "see", "red", "watery"},
		Prediction:     "Vision / Eye Strain",
		Specialist:     "Ophthalmologist",
		Recommendation: "Rest eyes, follow the 20-20-20 rule. Avoid rubbing eyes.",
	},
	{
		Keywords:       []string{"ear", "hear", "pain", "ring", "wax"},
		Prediction:     "Ear Infection / Tinnitus",
		Specialist:     "ENT Specialist",
		Recommendation: "Keep ear dry, do not insert objects. Consult an ENT if pain persists.",
	},
	{
		Keywords:       []string{"sad", "anxiety", "depress", "mood", "sleep", "worry", "panic"},
		Prediction:     "Anxiety / Stress",
		Specialist:     "Psychiatrist",
		Recommendation: "Practice deep breathing and relaxation techniques. Talk to a professional.",
	},
}

const (
	fallbackPrediction     = "General Symptoms"
	fallbackSpecialist     = "General Physician"
	fallbackRecommendation = "Your symptoms are nonspecific. Please consult a General Physician for a complete checkup."
)
