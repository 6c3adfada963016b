package validation

import "strings"

// SubmitThreshold is the minimum profile strength at which the form
// enables its submit button. Advisory only; Validate remains the
// correctness gate.
const SubmitThreshold = 40

// Profile strength weights. They sum to exactly 100 so a fully filled
// candidate saturates the scale.
const (
	weightFirstName    = 15
	weightLastName     = 15
	weightEmail        = 20
	weightPhone        = 10
	weightSchool       = 15
	weightStudentCount = 10
	weightMessage      = 15

	messageStrengthLen = 20
)

// ProfileStrength derives the advisory 0-100 completeness score for a
// candidate. The score never goes negative and saturates at 100.
func ProfileStrength(c Candidate) int {
	score := 0

	if len([]rune(strings.TrimSpace(c.FirstName))) >= 2 {
		score += weightFirstName
	}
	if len([]rune(strings.TrimSpace(c.LastName))) >= 2 {
		score += weightLastName
	}
	if emailPattern.MatchString(strings.TrimSpace(c.Email)) {
		score += weightEmail
	}
	if strings.TrimSpace(c.Phone) != "" {
		score += weightPhone
	}
	if strings.TrimSpace(c.SchoolName) != "" {
		score += weightSchool
	}
	if c.StudentCount != nil && *c.StudentCount > 0 {
		score += weightStudentCount
	}
	if len([]rune(c.Message)) >= messageStrengthLen {
		score += weightMessage
	}

	if score > 100 {
		score = 100
	}
	return score
}

// CanSubmit reports whether the candidate's profile strength reaches
// the submit threshold.
func CanSubmit(c Candidate) bool {
	return ProfileStrength(c) >= SubmitThreshold
}
