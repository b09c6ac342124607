package questionbank_test

import (
	"strings"
	"testing"

	"github.com/ccse-trainer/backend/internal/domain/questionbank"
)

func makeQuestion(id int, correct string, optionCount int) questionbank.Question {
	labels := []string{"a", "b", "c"}
	q := questionbank.Question{
		ID:           id,
		Prompt:       questionbank.Text{Primary: "Pregunta", Localized: "Вопрос"},
		CorrectLabel: correct,
	}
	for i := 0; i < optionCount; i++ {
		q.Options = append(q.Options, questionbank.Option{
			Label: labels[i],
			Text:  questionbank.Text{Primary: "Opción " + labels[i], Localized: "Вариант " + labels[i]},
		})
	}
	return q
}

func TestNew_IndexesBySection(t *testing.T) {
	bank, err := questionbank.New([]questionbank.Question{
		makeQuestion(1001, "a", 3),
		makeQuestion(1002, "b", 3),
		makeQuestion(2001, "a", 2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bank.Len() != 3 {
		t.Errorf("expected 3 questions, got %d", bank.Len())
	}

	ids := bank.SectionIDs(1)
	if len(ids) != 2 || ids[0] != 1001 || ids[1] != 1002 {
		t.Errorf("expected section 1 ids [1001 1002], got %v", ids)
	}

	if ids := bank.SectionIDs(3); len(ids) != 0 {
		t.Errorf("expected empty section 3, got %v", ids)
	}
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := questionbank.New([]questionbank.Question{
		makeQuestion(1001, "a", 3),
		makeQuestion(1001, "b", 3),
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate id error, got %v", err)
	}
}

func TestNew_RejectsIDOutsideSectionRanges(t *testing.T) {
	for _, id := range []int{999, 1121, 6001, 2500} {
		_, err := questionbank.New([]questionbank.Question{makeQuestion(id, "a", 3)})
		if err == nil {
			t.Errorf("expected error for id %d outside section ranges", id)
		}
	}
}

func TestNew_RejectsCorrectLabelWithoutOption(t *testing.T) {
	_, err := questionbank.New([]questionbank.Question{makeQuestion(1001, "c", 2)})
	if err == nil {
		t.Error("expected error when correct label matches no option")
	}
}

func TestNew_RejectsWrongOptionCount(t *testing.T) {
	for _, n := range []int{0, 1} {
		_, err := questionbank.New([]questionbank.Question{makeQuestion(1001, "a", n)})
		if err == nil {
			t.Errorf("expected error for %d options", n)
		}
	}
}

func TestNew_RejectsOutOfOrderLabels(t *testing.T) {
	q := makeQuestion(1001, "a", 3)
	q.Options[0].Label, q.Options[1].Label = "b", "a"

	_, err := questionbank.New([]questionbank.Question{q})
	if err == nil {
		t.Error("expected error for labels not drawn in order from a, b, c")
	}
}

func TestLoad_DecodesExternalFormat(t *testing.T) {
	const payload = `[
		{"id": 5001,
		 "prompt": {"primary": "El flamenco es…", "localized": "Фламенко — это…"},
		 "options": [
			{"label": "a", "text": {"primary": "un baile.", "localized": "танец."}},
			{"label": "b", "text": {"primary": "un plato.", "localized": "блюдо."}}
		 ],
		 "correctLabel": "a"}
	]`

	bank, err := questionbank.Load(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, ok := bank.Question(5001)
	if !ok {
		t.Fatal("expected question 5001 to be present")
	}
	if q.CorrectLabel != "a" {
		t.Errorf("expected correct label a, got %q", q.CorrectLabel)
	}
	if q.Options[1].Text.Localized != "блюдо." {
		t.Errorf("unexpected localized option text: %q", q.Options[1].Text.Localized)
	}

	if label, _ := bank.CorrectLabel(5001); label != "a" {
		t.Errorf("expected answer key a, got %q", label)
	}
}

func TestSectionOf(t *testing.T) {
	cases := map[int]int{1001: 1, 1120: 1, 2036: 2, 3024: 3, 4001: 4, 5084: 5}
	for id, want := range cases {
		if got := questionbank.SectionOf(id); got != want {
			t.Errorf("SectionOf(%d) = %d, want %d", id, got, want)
		}
	}
}

func TestSectionTitle_Bilingual(t *testing.T) {
	title, ok := questionbank.SectionTitle(1)
	if !ok {
		t.Fatal("expected a title for section 1")
	}
	if !strings.HasPrefix(title.Primary, "TAREA 1") {
		t.Errorf("unexpected primary title: %q", title.Primary)
	}
	if !strings.HasPrefix(title.Localized, "РАЗДЕЛ 1") {
		t.Errorf("unexpected localized title: %q", title.Localized)
	}

	if _, ok := questionbank.SectionTitle(9); ok {
		t.Error("expected no title for unknown section")
	}
}
