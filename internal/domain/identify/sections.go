package identify

import "strings"

// Marker es un encabezado literal de la plantilla de respuesta.
type Marker string

const (
	MarkerAnimal      Marker = "**Animal:**"
	MarkerBreed       Marker = "**Breed:**"
	MarkerPhysical    Marker = "**Physical Characteristics:**"
	MarkerTemperament Marker = "**Temperament:**"
	MarkerCare        Marker = "**Care Requirements:**"
	MarkerSafety      Marker = "**Safety Assessment:**"
	MarkerAdditional  Marker = "**Additional Information:**"
)

// templateOrder es el orden en que la plantilla pide las secciones.
// La sección de template[i] termina donde empieza template[i+1].
var templateOrder = []Marker{
	MarkerAnimal,
	MarkerBreed,
	MarkerPhysical,
	MarkerTemperament,
	MarkerCare,
	MarkerSafety,
	MarkerAdditional,
}

// Sections son los fragmentos extraídos de una respuesta. nil = marcador ausente.
type Sections struct {
	AnimalType *string `json:"animal_type,omitempty"`
	BreedName  *string `json:"breed_name,omitempty"`
	SafetyText *string `json:"safety_text,omitempty"`
}

// ExtractSections extrae tipo de animal, raza y evaluación de seguridad.
func ExtractSections(text string) Sections {
	var s Sections
	if v, ok := ExtractAnimalType(text); ok {
		s.AnimalType = &v
	}
	if v, ok := ExtractBreedName(text); ok {
		s.BreedName = &v
	}
	if v, ok := ExtractSafetySection(text); ok {
		s.SafetyText = &v
	}
	return s
}

// ExtractAnimalType devuelve el texto entre **Animal:** y **Breed:**, sin espacios alrededor.
func ExtractAnimalType(text string) (string, bool) {
	v, ok := Section(text, MarkerAnimal)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// ExtractBreedName devuelve el texto entre **Breed:** y **Physical Characteristics:**, sin espacios alrededor.
func ExtractBreedName(text string) (string, bool) {
	v, ok := Section(text, MarkerBreed)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// ExtractSafetySection devuelve el texto entre **Safety Assessment:** y
// **Additional Information:** tal cual, sin recortar.
func ExtractSafetySection(text string) (string, bool) {
	return Section(text, MarkerSafety)
}

// Section devuelve el texto que sigue a la primera aparición de start, hasta
// el marcador siguiente en la plantilla. Si ese marcador no aparece después de
// start, devuelve hasta el final del texto.
//
// Asume que cada marcador aparece una vez y en el orden de la plantilla; con
// marcadores repetidos o desordenados el corte no está definido.
func Section(text string, start Marker) (string, bool) {
	i := strings.Index(text, string(start))
	if i < 0 {
		return "", false
	}
	rest := text[i+len(start):]

	end, ok := next(start)
	if !ok {
		return rest, true
	}

	j := strings.Index(rest, string(end))
	if j < 0 {
		return rest, true
	}
	return rest[:j], true
}

func next(m Marker) (Marker, bool) {
	for i, cur := range templateOrder {
		if cur == m && i+1 < len(templateOrder) {
			return templateOrder[i+1], true
		}
	}
	return "", false
}
