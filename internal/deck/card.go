package deck

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Iron-Ham/flashdeck/internal/errors"
)

// Difficulty grades a card.
type Difficulty string

// Difficulty levels
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns the levels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	return string(d)
}

// Label returns the upper-case tag shown next to a card ("EASY").
func (d Difficulty) Label() string {
	return strings.ToUpper(string(d))
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// ParseDifficulty accepts a level name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", errors.NewValidationError(fmt.Sprintf("unknown difficulty %q", s)).
			WithField("difficulty").
			WithValue(s)
	}
	return d, nil
}

// DifficultyFromSelector maps the menu's selector codes to a level:
// "1" easy, "2" medium, "3" hard. Anything else is medium.
func DifficultyFromSelector(selector string) Difficulty {
	switch strings.TrimSpace(selector) {
	case "1":
		return Easy
	case "3":
		return Hard
	default:
		return Medium
	}
}

// Card is one question/answer pair.
type Card struct {
	Question   string     `json:"question" validate:"required"`
	Answer     string     `json:"answer" validate:"required"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

var validate = validator.New()

// Validate checks the card's struct tags and reports the first failing field
// as a ValidationError.
func (c Card) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		msg := fmt.Sprintf("%s is required", field)
		if fe.Tag() == "oneof" {
			msg = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
		}
		return errors.NewValidationError(msg).
			WithField(field).
			WithValue(fe.Value()).
			WithCause(err)
	}
	return errors.NewValidationError("invalid card").WithCause(err)
}
