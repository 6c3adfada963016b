package domain

// MissionType identifies one of the four NIRD advocacy pillars
type MissionType string

const (
	MissionIndependance   MissionType = "independance"
	MissionResponsabilite MissionType = "responsabilite"
	MissionDurabilite     MissionType = "durabilite"
	MissionApprentissage  MissionType = "apprentissage"
)

// MissionTypes returns the four pillars in display order
func MissionTypes() []MissionType {
	return []MissionType{
		MissionIndependance,
		MissionResponsabilite,
		MissionDurabilite,
		MissionApprentissage,
	}
}

// IsValid reports whether m is one of the four enumerated pillars
func (m MissionType) IsValid() bool {
	switch m {
	case MissionIndependance, MissionResponsabilite, MissionDurabilite, MissionApprentissage:
		return true
	}
	return false
}

// MissionInfo describes a pillar as shown on the mission picker
type MissionInfo struct {
	ID          MissionType `json:"id"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
}

// MissionCatalog returns the pillar metadata in display order
func MissionCatalog() []MissionInfo {
	return []MissionInfo{
		{ID: MissionIndependance, Label: "Indépendance Numérique", Description: "Se libérer des Big Tech"},
		{ID: MissionResponsabilite, Label: "Responsabilité Éthique", Description: "Protéger les données"},
		{ID: MissionDurabilite, Label: "Durabilité Environnementale", Description: "Réduire l'empreinte carbone"},
		{ID: MissionApprentissage, Label: "Apprentissage & Capacités", Description: "Former aux bonnes pratiques"},
	}
}
