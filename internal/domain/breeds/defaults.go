package breeds

import "fmt"

// classNames son las 37 razas del dataset Oxford-IIIT Pets, en el orden de clases del clasificador.
var classNames = []string{
	"Abyssinian", "American Bulldog", "American Pit Bull Terrier", "Basset Hound",
	"Beagle", "Bengal", "Birman", "Bombay", "Boxer", "British Shorthair",
	"Chihuahua", "Egyptian Mau", "English Cocker Spaniel", "English Setter",
	"German Shorthaired", "Great Pyrenees", "Havanese", "Japanese Chin", "Keeshond",
	"Leonberger", "Maine Coon", "Miniature Pinscher", "Newfoundland", "Persian",
	"Pomeranian", "Pug", "Ragdoll", "Russian Blue", "Saint Bernard", "Samoyed",
	"Scottish Terrier", "Shiba Inu", "Siamese", "Sphynx", "Staffordshire Bull Terrier",
	"Wheaten Terrier", "Yorkshire Terrier",
}

// catBreeds es la lista fija de razas de gato; el resto son perros.
var catBreeds = map[string]struct{}{
	"Abyssinian":        {},
	"Bengal":            {},
	"Birman":            {},
	"Bombay":            {},
	"British Shorthair": {},
	"Egyptian Mau":      {},
	"Maine Coon":        {},
	"Persian":           {},
	"Ragdoll":           {},
	"Russian Blue":      {},
	"Siamese":           {},
	"Sphynx":            {},
}

var shortCoatBreeds = map[string]struct{}{
	"Bombay":       {},
	"Russian Blue": {},
	"Sphynx":       {},
}

// ClassNames devuelve una copia de la lista ordenada de clases.
func ClassNames() []string {
	return append([]string(nil), classNames...)
}

// Classify devuelve Cat si la raza está en la lista de gatos, si no Dog.
func Classify(breed string) AnimalType {
	if _, ok := catBreeds[breed]; ok {
		return AnimalCat
	}
	return AnimalDog
}

// GenerateDefaultCatalog arma una ficha genérica por cada una de las 37 razas.
func GenerateDefaultCatalog() Catalog {
	out := make(Catalog, len(classNames))
	for _, name := range classNames {
		out[name] = generatedRecord(name)
	}
	return out
}

func generatedRecord(name string) Record {
	at := Classify(name)

	size, lifespan, kind := "Varies", "10-13 years", "dog"
	if at == AnimalCat {
		size, lifespan, kind = "Medium", "12-15 years", "cat"
	}

	coat := "Medium to Long"
	if _, ok := shortCoatBreeds[name]; ok {
		coat = "Short"
	}

	return Record{
		Name:                name,
		AnimalType:          at,
		Origin:              "Various",
		Size:                size,
		Lifespan:            lifespan,
		Coat:                coat,
		Colors:              "Varies",
		DistinctiveFeatures: "Varies by breed",
		PhysicalTraits:      []string{"Varies by breed"},
		Temperament:         []string{"Varies by breed"},
		CareRequirements:    []string{"Regular grooming", "Balanced diet", "Veterinary check-ups"},
		DangerLevel:         DangerLow,
		PotentialRisks:      []string{"Scratches", "Bites if provoked", "Allergies"},
		SafetyPrecautions:   []string{"Proper socialization", "Supervision with children", "Training"},
		Description:         fmt.Sprintf("The %s is a %s breed with unique characteristics.", name, kind),
	}
}

// BuiltinCatalog es el catálogo mínimo que se usa cuando no existe el archivo.
func BuiltinCatalog() Catalog {
	return Catalog{
		"Siamese Cat": {
			Name:                "Siamese Cat",
			AnimalType:          AnimalCat,
			Origin:              "Thailand",
			Size:                "Medium",
			Lifespan:            "15-20 years",
			Coat:                "Short",
			Colors:              "Cream with brown points",
			DistinctiveFeatures: "Blue almond-shaped eyes, color points on ears, face, paws and tail",
			PhysicalTraits:      []string{"Slender body", "Wedged-shaped head", "Large ears"},
			Temperament:         []string{"Vocal", "Social", "Intelligent", "Demanding of attention"},
			CareRequirements:    []string{"Regular grooming", "Interactive play", "High-quality diet"},
			DangerLevel:         DangerLow,
			PotentialRisks:      []string{"Scratches if provoked", "Allergies for some people"},
			SafetyPrecautions:   []string{"Proper socialization", "Regular nail trimming", "Supervision with small children"},
			Description:         "The Siamese cat is one of the first distinctly recognized breeds of Asian cat. Derived from the Wichianmat landrace, one of several varieties of cat native to Thailand.",
		},
		"Golden Retriever": {
			Name:                "Golden Retriever",
			AnimalType:          AnimalDog,
			Origin:              "Scotland",
			Size:                "Large",
			Lifespan:            "10-12 years",
			Coat:                "Double coat, water-repellent",
			Colors:              "Various shades of gold",
			DistinctiveFeatures: "Friendly eyes, muscular build, feathery tail",
			PhysicalTraits:      []string{"Broad head", "Friendly expression", "Powerful jaw"},
			Temperament:         []string{"Intelligent", "Friendly", "Devoted", "Gentle"},
			CareRequirements:    []string{"Regular exercise", "Frequent grooming", "Training and mental stimulation"},
			DangerLevel:         DangerLow,
			PotentialRisks:      []string{"Knocking over small children", "Jumping on people"},
			SafetyPrecautions:   []string{"Proper training", "Socialization", "Supervision with very small children"},
			Description:         "The Golden Retriever is a Scottish breed of retriever dog of medium size. It is characterized by a gentle and affectionate nature and a striking golden coat.",
		},
	}
}
