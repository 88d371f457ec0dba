/*
Package validate implements the client-side, advisory input validators.

Every check is a pure function returning a typed Issue keyed by a closed Field
enum; nothing here talks to the network. The server remains the sole authority
on account creation, so these validators only shape inline form feedback.
*/
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field is the closed set of form fields a validation issue can point at.
type Field string

const (
	FieldEmail           Field = "email"
	FieldName            Field = "name"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldComment         Field = "comment"
	FieldRating          Field = "rating"
	FieldFoodTypes       Field = "foodTypes"
	FieldLocation        Field = "location"
)

// Issue is a single field-scoped validation failure.
type Issue struct {
	Field   Field
	Message string
}

const (
	// NameMinLength and NameMaxLength bound the display name.
	NameMinLength = 3
	NameMaxLength = 50

	// CommentMaxLength bounds a review comment.
	CommentMaxLength = 250

	// MaxFoodTypes bounds the onboarding cuisine selection.
	MaxFoodTypes = 10
)

// nameRegex accepts letters, spaces, apostrophes, and Spanish accented vowels.
var nameRegex = regexp.MustCompile(`^[a-zA-Z\s'áéíóúñÁÉÍÓÚÑ]+$`)

// checker performs the tag-based field checks (format/required).
var checker = validator.New()

// Email checks presence and format of an email address.
func Email(email string) *Issue {
	if strings.TrimSpace(email) == "" {
		return &Issue{Field: FieldEmail, Message: "Email is required."}
	}

	if err := checker.Var(email, "email"); err != nil {
		return &Issue{Field: FieldEmail, Message: "Email is not valid."}
	}

	return nil
}

// Name checks presence, length bounds, and the allowed character set of a display name.
func Name(name string) *Issue {
	if strings.TrimSpace(name) == "" {
		return &Issue{Field: FieldName, Message: "Name is required."}
	}

	if len(name) < NameMinLength {
		return &Issue{Field: FieldName, Message: fmt.Sprintf("Name must be at least %d characters.", NameMinLength)}
	}

	if len(name) > NameMaxLength {
		return &Issue{Field: FieldName, Message: fmt.Sprintf("Name cannot exceed %d characters.", NameMaxLength)}
	}

	if !nameRegex.MatchString(name) {
		return &Issue{Field: FieldName, Message: "Name can only contain letters and spaces."}
	}

	return nil
}

// StrengthLevel labels a password strength score.
type StrengthLevel string

const (
	LevelVeryWeak   StrengthLevel = "very-weak"
	LevelWeak       StrengthLevel = "weak"
	LevelMedium     StrengthLevel = "medium"
	LevelStrong     StrengthLevel = "strong"
	LevelVeryStrong StrengthLevel = "very-strong"
)

// Strength is the advisory password-strength report shown on the sign-up form.
// Score runs 0-4; Suggestions lists the unmet criteria.
type Strength struct {
	Score       int
	Level       StrengthLevel
	Suggestions []string
}

var strengthLevels = [...]StrengthLevel{
	LevelVeryWeak,
	LevelWeak,
	LevelMedium,
	LevelStrong,
	LevelVeryStrong,
}

var (
	lowerRegex  = regexp.MustCompile(`[a-z]`)
	upperRegex  = regexp.MustCompile(`[A-Z]`)
	digitRegex  = regexp.MustCompile(`[0-9]`)
	symbolRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// PasswordStrength scores a password across five criteria (length, lowercase,
// uppercase, digits, symbols). Advisory only: a weak score never blocks
// submission, account creation is validated server-side.
func PasswordStrength(password string) Strength {
	if password == "" {
		return Strength{
			Score:       0,
			Level:       LevelVeryWeak,
			Suggestions: []string{"Password is required."},
		}
	}

	suggestions := []string{}
	score := 0

	if len(password) < 8 {
		suggestions = append(suggestions, "Password must be at least 8 characters.")
	} else {
		score++
	}

	if !lowerRegex.MatchString(password) {
		suggestions = append(suggestions, "Include lowercase letters (a-z).")
	} else {
		score++
	}

	if !upperRegex.MatchString(password) {
		suggestions = append(suggestions, "Include uppercase letters (A-Z).")
	} else {
		score++
	}

	if !digitRegex.MatchString(password) {
		suggestions = append(suggestions, "Include numbers (0-9).")
	} else {
		score++
	}

	if !symbolRegex.MatchString(password) {
		suggestions = append(suggestions, "Include special symbols (!@#$%^&*...).")
	} else {
		score++
	}

	capped := score
	if capped > 4 {
		capped = 4
	}

	if score == 5 {
		suggestions = []string{}
	}

	return Strength{
		Score:       capped,
		Level:       strengthLevels[capped],
		Suggestions: suggestions,
	}
}

// PasswordsMatch checks that the confirmation field repeats the password.
func PasswordsMatch(password, confirmPassword string) *Issue {
	if password != confirmPassword {
		return &Issue{Field: FieldConfirmPassword, Message: "Passwords do not match."}
	}
	return nil
}

// ReviewComment bounds the optional review comment length.
func ReviewComment(comment string) *Issue {
	if len(comment) > CommentMaxLength {
		return &Issue{
			Field:   FieldComment,
			Message: fmt.Sprintf("Comment cannot exceed %d characters (currently: %d).", CommentMaxLength, len(comment)),
		}
	}
	return nil
}

// Rating checks the 1-5 star bound.
func Rating(rating int) *Issue {
	if rating < 1 || rating > 5 {
		return &Issue{Field: FieldRating, Message: "Rating must be between 1 and 5 stars."}
	}
	return nil
}

// FoodTypes checks the onboarding cuisine selection bounds.
func FoodTypes(foodTypes []string) *Issue {
	if len(foodTypes) == 0 {
		return &Issue{Field: FieldFoodTypes, Message: "Pick at least one food type."}
	}

	if len(foodTypes) > MaxFoodTypes {
		return &Issue{Field: FieldFoodTypes, Message: fmt.Sprintf("Pick at most %d food types.", MaxFoodTypes)}
	}

	return nil
}

// Location checks that an onboarding location was chosen.
func Location(location string) *Issue {
	if strings.TrimSpace(location) == "" {
		return &Issue{Field: FieldLocation, Message: "Location is required."}
	}
	return nil
}
