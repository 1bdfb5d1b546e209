package services

// SurveyQuestionCount is the fixed size of the lifestyle survey. Form
// fields and stored answer keys are "q1".."q30".
const SurveyQuestionCount = 30

// SurveyQuestions is the deployment question list, in the order clients
// see them and in the order they appear in the architect's report.
var SurveyQuestions = []string{
	// 1. Personal Background & Daily Life
	"What does a typical weekday look like for you from morning to night?",
	"How do you usually spend your weekends?",
	"How many hours a day do you spend at home versus outside?",
	"Do you prefer a quiet, calm environment or a lively, energetic atmosphere?",
	"Who do you usually spend most of your time with at home (alone, family, friends, pets)?",
	// 2. Emotional & Sensory Preferences
	"Which three places in the world have made you feel happiest or most inspired?",
	"Which three places have made you feel uncomfortable or unhappy?",
	"What smells instantly make you feel relaxed?",
	"What sounds do you find calming, and which do you dislike?",
	"Do you enjoy the sight and smell of plants, flowers, and greenery around you?",
	// 3. Visual Style & Color
	"What are your top three favorite colors?",
	"Are there any colors you absolutely dislike or avoid?",
	"Do you prefer light, airy spaces or dark, cozy ones?",
	"When you imagine your dream home, is it modern, classic, rustic, bohemian, or something else?",
	"Do you like symmetry and clean lines, or do you enjoy organic and irregular shapes?",
	// 4. Functional Lifestyle Needs
	"Which room in your home do you use the most, and why?",
	"Which room in your current home do you feel is “missing” or could be better designed?",
	"How often do you cook at home?",
	"Do you host guests often? If yes, what kind of gatherings?",
	"Would you like to have a garden, terrace plants, or indoor greenery as part of your home?",
	// 5. Hobbies & Leisure
	"What are your main hobbies or activities in your free time?",
	"Do you prefer indoor or outdoor activities?",
	"If you could add one leisure space to your home (library, art studio, home theater, garden, gym), what would it be?",
	"Do you collect anything or have items that need special display or storage?",
	"When traveling, do you choose destinations with a lot of natural scenery, parks, or green spaces?",
	// 6. Personality & Social Preferences
	"Do you feel more energized by socializing or by spending time alone?",
	"Are you more spontaneous or more of a planner?",
	"Do you enjoy bold, statement-making spaces or subtle, timeless designs?",
	"Do you feel more inspired in nature-rich environments or in urban/city settings?",
	// 7. Future Aspirations
	"If money and space were no limit, what would your ideal home look and feel like, and how much of it would be surrounded by greenery or nature?",
}
