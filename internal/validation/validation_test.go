package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nird-intake/internal/domain"
)

func validCandidate() Candidate {
	return Candidate{
		MissionType: domain.MissionIndependance,
		FirstName:   "Jean",
		LastName:    "Dupont",
		Email:       "jean.dupont@example.com",
		Message:     "Nous voulons migrer vers des solutions libres.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Candidate)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid candidate",
			mutate: func(c *Candidate) {},
		},
		{
			name:      "empty first name",
			mutate:    func(c *Candidate) { c.FirstName = "" },
			wantField: "firstName",
			wantMsg:   "Le prénom est requis",
		},
		{
			name:      "whitespace first name",
			mutate:    func(c *Candidate) { c.FirstName = "   " },
			wantField: "firstName",
			wantMsg:   "Le prénom est requis",
		},
		{
			name:      "first name too short",
			mutate:    func(c *Candidate) { c.FirstName = "J" },
			wantField: "firstName",
			wantMsg:   "Le prénom doit contenir au moins 2 caractères",
		},
		{
			name:      "first name short after trim",
			mutate:    func(c *Candidate) { c.FirstName = " J " },
			wantField: "firstName",
			wantMsg:   "Le prénom doit contenir au moins 2 caractères",
		},
		{
			name:   "two character first name is valid",
			mutate: func(c *Candidate) { c.FirstName = "Jo" },
		},
		{
			name:      "empty last name",
			mutate:    func(c *Candidate) { c.LastName = "" },
			wantField: "lastName",
			wantMsg:   "Le nom est requis",
		},
		{
			name:      "last name too short",
			mutate:    func(c *Candidate) { c.LastName = "D" },
			wantField: "lastName",
			wantMsg:   "Le nom doit contenir au moins 2 caractères",
		},
		{
			name:      "empty email",
			mutate:    func(c *Candidate) { c.Email = "" },
			wantField: "email",
			wantMsg:   "L'email est requis",
		},
		{
			name:      "email without at sign",
			mutate:    func(c *Candidate) { c.Email = "jean.example.com" },
			wantField: "email",
			wantMsg:   "Email invalide",
		},
		{
			name:      "email without tld",
			mutate:    func(c *Candidate) { c.Email = "jean@example" },
			wantField: "email",
			wantMsg:   "Email invalide",
		},
		{
			name:      "email with spaces",
			mutate:    func(c *Candidate) { c.Email = "jean dupont@example.com" },
			wantField: "email",
			wantMsg:   "Email invalide",
		},
		{
			name:   "minimal valid email",
			mutate: func(c *Candidate) { c.Email = "a@b.co" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			errs := Validate(c)

			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
		})
	}
}

func TestValidateMessageRequiredForEveryMission(t *testing.T) {
	// The message is required regardless of pillar; only the error
	// text differs.
	wantErrors := map[domain.MissionType]string{
		domain.MissionIndependance:   "Décrivez vos défis d'indépendance numérique",
		domain.MissionResponsabilite: "Expliquez vos enjeux éthiques et de protection de données",
		domain.MissionDurabilite:     "Détaillez vos objectifs de durabilité",
		domain.MissionApprentissage:  "Décrivez vos besoins de formation et montée en compétences",
	}

	for mission, wantMsg := range wantErrors {
		t.Run(string(mission), func(t *testing.T) {
			c := validCandidate()
			c.MissionType = mission
			c.Message = "   "

			errs := Validate(c)
			assert.Equal(t, wantMsg, errs["message"])

			c.Message = "Un message suffisant."
			assert.Empty(t, Validate(c))
		})
	}
}

func TestValidateRulesAreIndependent(t *testing.T) {
	// Every failing field must be reported; no short-circuiting.
	c := Candidate{MissionType: domain.MissionDurabilite}

	errs := Validate(c)

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "lastName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")
}

func TestValidateIgnoresOptionalFields(t *testing.T) {
	c := validCandidate()
	c.Phone = "not even close to a phone number"
	c.SchoolName = ""
	c.StudentCount = nil

	assert.Empty(t, Validate(c))
}

func TestMessagePrompt(t *testing.T) {
	assert.Equal(t, "Vos défis d'indépendance numérique", MessagePrompt(domain.MissionIndependance))
	assert.Equal(t, "Vos besoins de formation", MessagePrompt(domain.MissionApprentissage))
	assert.Empty(t, MessagePrompt(domain.MissionType("autre")))
}

func TestResetForMission(t *testing.T) {
	c := validCandidate()
	c.Message = "Un long message déjà saisi."

	reset := ResetForMission(c, domain.MissionDurabilite)

	assert.Equal(t, domain.MissionDurabilite, reset.MissionType)
	assert.Empty(t, reset.Message)
	// Contact fields survive the pillar switch
	assert.Equal(t, c.FirstName, reset.FirstName)
	assert.Equal(t, c.Email, reset.Email)
}
