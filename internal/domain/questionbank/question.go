package questionbank

// Text holds the two parallel language variants of a string:
// Primary is Spanish (the exam language), Localized is Russian.
type Text struct {
	Primary   string `json:"primary"`
	Localized string `json:"localized"`
}

// Option is one answer choice. The label is the option's identity:
// grading compares labels, never texts.
type Option struct {
	Label string `json:"label"`
	Text  Text   `json:"text"`
}

// Question is one immutable record of the exam bank. Binary questions
// carry two options (a, b), multiple-choice questions three (a, b, c).
type Question struct {
	ID           int      `json:"id"`
	Prompt       Text     `json:"prompt"`
	Options      []Option `json:"options"`
	CorrectLabel string   `json:"correctLabel"`
}

// Option returns the option carrying the given label, if any.
func (q *Question) Option(label string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Label == label {
			return opt, true
		}
	}
	return Option{}, false
}

// sectionRange is the inclusive id range of one exam task.
type sectionRange struct {
	Lo, Hi int
}

// The five fixed CCSE task sections. The thousands digit of a question
// id is its section number.
var sectionRanges = map[int]sectionRange{
	1: {1001, 1120},
	2: {2001, 2036},
	3: {3001, 3024},
	4: {4001, 4036},
	5: {5001, 5084},
}

var sectionTitles = map[int]Text{
	1: {
		Primary:   "TAREA 1: Gobierno, legislación y participación ciudadana",
		Localized: "РАЗДЕЛ 1: Государственное управление, законодательство и участие граждан",
	},
	2: {
		Primary:   "TAREA 2: Derechos y deberes fundamentales",
		Localized: "РАЗДЕЛ 2: Основные права и обязанности",
	},
	3: {
		Primary:   "TAREA 3: Organización territorial de España. Geografía física y política",
		Localized: "РАЗДЕЛ 3: Территориальная организация Испании. Физическая и политическая география",
	},
	4: {
		Primary:   "TAREA 4: Cultura e historia de España",
		Localized: "РАЗДЕЛ 4: Культура и история Испании",
	},
	5: {
		Primary:   "TAREA 5: Sociedad española",
		Localized: "РАЗДЕЛ 5: Испанское общество",
	},
}

// SectionOf returns the section number encoded in a question id.
func SectionOf(id int) int {
	return id / 1000
}

// SectionTitle returns the bilingual title of a section.
func SectionTitle(section int) (Text, bool) {
	t, ok := sectionTitles[section]
	return t, ok
}

// SectionNumbers returns all known section numbers in ascending order.
func SectionNumbers() []int {
	return []int{1, 2, 3, 4, 5}
}
