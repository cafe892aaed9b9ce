package models

// Question is a single parsed question/answer record. Options is reserved
// for multiple-choice banks; the text parser leaves it empty.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options"`
}
