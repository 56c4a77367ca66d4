package breeds

// AnimalType define el tipo de animal de una raza.
// @Enum Cat, Dog, Unknown
type AnimalType string

const (
	AnimalCat     AnimalType = "Cat"
	AnimalDog     AnimalType = "Dog"
	AnimalUnknown AnimalType = "Unknown"
)

// DangerLevel define el nivel de peligrosidad declarado para una raza.
// @Enum Low, Medium, High, Unknown
type DangerLevel string

const (
	DangerLow     DangerLevel = "Low"
	DangerMedium  DangerLevel = "Medium"
	DangerHigh    DangerLevel = "High"
	DangerUnknown DangerLevel = "Unknown"
)

// Record es la ficha completa de una raza.
// Siempre tiene todos los campos; ver Normalize.
type Record struct {
	// Name es la clave en el catálogo; no se serializa dentro del objeto.
	Name string `json:"-" yaml:"-"`

	AnimalType          AnimalType  `json:"animal_type" yaml:"animal_type"`
	Origin              string      `json:"origin" yaml:"origin"`
	Size                string      `json:"size" yaml:"size"`
	Lifespan            string      `json:"lifespan" yaml:"lifespan"`
	Coat                string      `json:"coat" yaml:"coat"`
	Colors              string      `json:"colors" yaml:"colors"`
	DistinctiveFeatures string      `json:"distinctive_features" yaml:"distinctive_features"`
	PhysicalTraits      []string    `json:"physical_traits" yaml:"physical_traits"`
	Temperament         []string    `json:"temperament" yaml:"temperament"`
	CareRequirements    []string    `json:"care_requirements" yaml:"care_requirements"`
	DangerLevel         DangerLevel `json:"danger_level" yaml:"danger_level"`
	PotentialRisks      []string    `json:"potential_risks" yaml:"potential_risks"`
	SafetyPrecautions   []string    `json:"safety_precautions" yaml:"safety_precautions"`
	Description         string      `json:"description" yaml:"description"`
}

// PartialRecord es la forma persistida: cualquier campo puede faltar.
// Punteros para distinguir "ausente" de "presente pero vacío".
type PartialRecord struct {
	AnimalType          *AnimalType  `json:"animal_type,omitempty"`
	Origin              *string      `json:"origin,omitempty"`
	Size                *string      `json:"size,omitempty"`
	Lifespan            *string      `json:"lifespan,omitempty"`
	Coat                *string      `json:"coat,omitempty"`
	Colors              *string      `json:"colors,omitempty"`
	DistinctiveFeatures *string      `json:"distinctive_features,omitempty"`
	PhysicalTraits      *[]string    `json:"physical_traits,omitempty"`
	Temperament         *[]string    `json:"temperament,omitempty"`
	CareRequirements    *[]string    `json:"care_requirements,omitempty"`
	DangerLevel         *DangerLevel `json:"danger_level,omitempty"`
	PotentialRisks      *[]string    `json:"potential_risks,omitempty"`
	SafetyPrecautions   *[]string    `json:"safety_precautions,omitempty"`
	Description         *string      `json:"description,omitempty"`
}

// Catalog mapea nombre de raza -> ficha.
type Catalog map[string]Record

// RawCatalog es el catálogo tal como lo devuelve un Repository, sin normalizar.
type RawCatalog map[string]PartialRecord
