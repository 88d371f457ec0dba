package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huecas/internal/pkg/validate"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantIssue bool
		wantMsg   string
	}{
		{name: "valid", email: "ana@huecas.dev", wantIssue: false},
		{name: "empty", email: "", wantIssue: true, wantMsg: "Email is required."},
		{name: "whitespace only", email: "   ", wantIssue: true, wantMsg: "Email is required."},
		{name: "missing domain", email: "ana@", wantIssue: true, wantMsg: "Email is not valid."},
		{name: "missing at", email: "ana.huecas.dev", wantIssue: true, wantMsg: "Email is not valid."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := validate.Email(tt.email)

			if !tt.wantIssue {
				assert.Nil(t, issue)
				return
			}

			require.NotNil(t, issue)
			assert.Equal(t, validate.FieldEmail, issue.Field)
			assert.Equal(t, tt.wantMsg, issue.Message)
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIssue bool
	}{
		{name: "valid", input: "Ana", wantIssue: false},
		{name: "valid with accents", input: "José Ñandú", wantIssue: false},
		{name: "valid with apostrophe", input: "O'Brien", wantIssue: false},
		{name: "empty", input: "", wantIssue: true},
		{name: "too short", input: "Al", wantIssue: true},
		{name: "too long", input: strings.Repeat("a", 51), wantIssue: true},
		{name: "digits rejected", input: "Ana123", wantIssue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := validate.Name(tt.input)

			if tt.wantIssue {
				require.NotNil(t, issue)
				assert.Equal(t, validate.FieldName, issue.Field)
			} else {
				assert.Nil(t, issue)
			}
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name            string
		password        string
		wantScore       int
		wantLevel       validate.StrengthLevel
		wantSuggestions int
	}{
		{name: "empty", password: "", wantScore: 0, wantLevel: validate.LevelVeryWeak, wantSuggestions: 1},
		{name: "short lowercase", password: "abc", wantScore: 1, wantLevel: validate.LevelWeak, wantSuggestions: 4},
		{name: "long mixed case", password: "abcdefgH", wantScore: 3, wantLevel: validate.LevelStrong, wantSuggestions: 2},
		{name: "all criteria", password: "Abcdef1!", wantScore: 4, wantLevel: validate.LevelVeryStrong, wantSuggestions: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strength := validate.PasswordStrength(tt.password)

			assert.Equal(t, tt.wantScore, strength.Score)
			assert.Equal(t, tt.wantLevel, strength.Level)
			assert.Len(t, strength.Suggestions, tt.wantSuggestions)
		})
	}
}

func TestPasswordsMatch(t *testing.T) {
	assert.Nil(t, validate.PasswordsMatch("secreto123", "secreto123"))

	issue := validate.PasswordsMatch("secreto123", "secreto124")
	require.NotNil(t, issue)
	assert.Equal(t, validate.FieldConfirmPassword, issue.Field)
}

func TestReviewComment(t *testing.T) {
	assert.Nil(t, validate.ReviewComment(""))
	assert.Nil(t, validate.ReviewComment(strings.Repeat("a", validate.CommentMaxLength)))

	issue := validate.ReviewComment(strings.Repeat("a", validate.CommentMaxLength+1))
	require.NotNil(t, issue)
	assert.Equal(t, validate.FieldComment, issue.Field)
	assert.Contains(t, issue.Message, "251")
}

func TestRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.Nil(t, validate.Rating(rating))
	}

	for _, rating := range []int{0, -1, 6} {
		issue := validate.Rating(rating)
		require.NotNil(t, issue)
		assert.Equal(t, validate.FieldRating, issue.Field)
	}
}

func TestFoodTypes(t *testing.T) {
	assert.Nil(t, validate.FoodTypes([]string{"peruana"}))

	issue := validate.FoodTypes(nil)
	require.NotNil(t, issue)
	assert.Equal(t, validate.FieldFoodTypes, issue.Field)

	tooMany := make([]string, validate.MaxFoodTypes+1)
	issue = validate.FoodTypes(tooMany)
	require.NotNil(t, issue)
}

func TestLocation(t *testing.T) {
	assert.Nil(t, validate.Location("Lima"))

	issue := validate.Location("  ")
	require.NotNil(t, issue)
	assert.Equal(t, validate.FieldLocation, issue.Field)
}
