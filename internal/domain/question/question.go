package question

import "errors"

// Question is a single prompt/answer pair from the imported bank.
// Questions are created by the ingestion layer and never mutated afterwards;
// the practice engine only reads them.
type Question struct {
	ID       string
	Text     string
	Answer   string
	Category string // optional, "" when the source file carries none
}

func (q Question) Validate() error {
	if q.ID == "" {
		return errors.New("question id cannot be empty")
	}
	if q.Text == "" {
		return errors.New("question text cannot be empty")
	}
	if q.Answer == "" {
		return errors.New("answer text cannot be empty")
	}
	return nil
}
