package intake

import (
	"fmt"
	"time"

	"nird-intake/internal/domain"
)

// Confirmation is the per-mission copy shown to a visitor after their
// submission is accepted
type Confirmation struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Body       string `json:"body"`
	Impact     string `json:"impact"`
	AnnualGoal string `json:"annual_goal"`
}

// BuildConfirmation renders the confirmation copy for an accepted
// submission. Pure; the current year feeds the annual goal line.
func BuildConfirmation(sub domain.Submission) Confirmation {
	return buildConfirmation(sub, time.Now().Year())
}

func buildConfirmation(sub domain.Submission, year int) Confirmation {
	switch sub.MissionType {
	case domain.MissionIndependance:
		return Confirmation{
			Title:      fmt.Sprintf("Salutations, %s !", sub.FirstName),
			Subtitle:   "Ton message a bien été acheminé vers nos serveurs centraux",
			Body:       "Bravo pour ton engagement envers l'indépendance numérique ! Ta demande de libérer ton établissement des Big Tech a été enregistrée avec succès.",
			Impact:     "Ensemble, libérons nos écoles des géants du web pour un numérique plus libre et responsable.",
			AnnualGoal: fmt.Sprintf("Objectif NIRD %d : Accompagner 50 établissements vers l'indépendance numérique", year),
		}
	case domain.MissionResponsabilite:
		return Confirmation{
			Title:      fmt.Sprintf("Un immense 'GG', %s !", sub.FirstName),
			Subtitle:   "Merci pour ton engagement éthique",
			Body:       "Nous avons noté ton engagement pour la protection des données et la responsabilité éthique. Nos experts te proposeront bientôt des solutions pour sécuriser les données de ton établissement.",
			Impact:     "Objectif NIRD : Mettre en place une gouvernance éthique du numérique dans 100 établissements",
			AnnualGoal: fmt.Sprintf("En %d, nous travaillons à protéger les données de 10 000+ étudiants", year),
		}
	case domain.MissionDurabilite:
		return Confirmation{
			Title:      fmt.Sprintf("Merci pour ton engagement écologique, %s !", sub.FirstName),
			Subtitle:   "Pour une planète plus verte",
			Body:       "Ton école souhaite réduire son empreinte numérique et environnementale. Nous allons te proposer des actions concrètes pour une transition durable.",
			Impact:     "Réduire de 40% l'empreinte carbone du numérique éducatif",
			AnnualGoal: fmt.Sprintf("Objectif %d : Aider 100 établissements à devenir numériquement durables", year),
		}
	case domain.MissionApprentissage:
		return Confirmation{
			Title:      fmt.Sprintf("Excellent, %s, investissons dans les compétences !", sub.FirstName),
			Subtitle:   "Former pour transformer",
			Body:       "Nous nous engageons à te fournir des ressources de formation, des webinaires exclusifs et un accompagnement personnalisé pour monter en compétences.",
			Impact:     "Former 1000 éducateurs aux bonnes pratiques du numérique durable",
			AnnualGoal: fmt.Sprintf("Objectif NIRD %d : Certifier 500+ professionnels en numérique responsable", year),
		}
	default:
		return Confirmation{
			Title:      fmt.Sprintf("Merci %s !", sub.FirstName),
			Subtitle:   "Ton engagement a été enregistré",
			Body:       "Ton engagement a été enregistré avec succès.",
			Impact:     "Ensemble pour un numérique plus responsable.",
			AnnualGoal: fmt.Sprintf("Objectif %d : Transformer le numérique éducatif", year),
		}
	}
}
