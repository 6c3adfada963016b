// Package validation implements the form-side validation engine: field
// rules producing per-field error messages, and the advisory profile
// strength score that gates the submit button.
package validation

import (
	"regexp"
	"strings"

	"nird-intake/internal/domain"
)

// emailPattern is the basic local@domain.tld check used by the form
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Candidate holds the raw form values as typed by the visitor.
// StudentCount is parsed at input time; non-numeric input becomes nil.
type Candidate struct {
	MissionType  domain.MissionType
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Message      string
	SchoolName   string
	StudentCount *int
}

// messageErrors carries the mission-specific error text shown when the
// free-text message is empty. The requiredness is identical for all
// four pillars; only the wording differs.
var messageErrors = map[domain.MissionType]string{
	domain.MissionIndependance:   "Décrivez vos défis d'indépendance numérique",
	domain.MissionResponsabilite: "Expliquez vos enjeux éthiques et de protection de données",
	domain.MissionDurabilite:     "Détaillez vos objectifs de durabilité",
	domain.MissionApprentissage:  "Décrivez vos besoins de formation et montée en compétences",
}

// messagePrompts carries the per-pillar label above the message field
var messagePrompts = map[domain.MissionType]string{
	domain.MissionIndependance:   "Vos défis d'indépendance numérique",
	domain.MissionResponsabilite: "Vos enjeux éthiques et de données",
	domain.MissionDurabilite:     "Vos objectifs de durabilité",
	domain.MissionApprentissage:  "Vos besoins de formation",
}

// Validate checks a candidate and returns a map of field name to error
// message. An empty map means the candidate is valid. Rules are
// evaluated independently; one failing field never masks another.
func Validate(c Candidate) map[string]string {
	errs := make(map[string]string)

	firstName := strings.TrimSpace(c.FirstName)
	if firstName == "" {
		errs["firstName"] = "Le prénom est requis"
	} else if len([]rune(firstName)) < 2 {
		errs["firstName"] = "Le prénom doit contenir au moins 2 caractères"
	}

	lastName := strings.TrimSpace(c.LastName)
	if lastName == "" {
		errs["lastName"] = "Le nom est requis"
	} else if len([]rune(lastName)) < 2 {
		errs["lastName"] = "Le nom doit contenir au moins 2 caractères"
	}

	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs["email"] = "L'email est requis"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Email invalide"
	}

	if msg, ok := messageErrors[c.MissionType]; ok && strings.TrimSpace(c.Message) == "" {
		errs["message"] = msg
	}

	return errs
}

// MessagePrompt returns the label shown above the message field for
// the given pillar, or an empty string for an unknown mission type.
func MessagePrompt(m domain.MissionType) string {
	return messagePrompts[m]
}

// ResetForMission returns a copy of the candidate switched to the given
// pillar with the free-text message cleared, matching the form's reset
// when the visitor picks another mission.
func ResetForMission(c Candidate, m domain.MissionType) Candidate {
	c.MissionType = m
	c.Message = ""
	return c
}
