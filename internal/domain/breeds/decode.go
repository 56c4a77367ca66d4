package breeds

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeCatalog lee un catálogo persistido sin validar esquema.
// Falla con ErrCatalogParse solo si data no es JSON o no es un objeto.
func DecodeCatalog(data []byte) (RawCatalog, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}

	out := make(RawCatalog, len(entries))
	for name, raw := range entries {
		out[name] = decodeFields(raw)
	}
	return out, nil
}

// DecodeRecord lee una ficha persistida campo por campo.
// Un campo con tipo incorrecto o en null cuenta como ausente. Una ficha que no es
// objeto queda vacía. Solo falla si data no es JSON.
func DecodeRecord(data []byte) (PartialRecord, error) {
	if !json.Valid(data) {
		return PartialRecord{}, fmt.Errorf("%w: invalid JSON record", ErrCatalogParse)
	}
	return decodeFields(data), nil
}

func decodeFields(data json.RawMessage) PartialRecord {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return PartialRecord{}
	}

	return PartialRecord{
		AnimalType:          field[AnimalType](fields, "animal_type"),
		Origin:              field[string](fields, "origin"),
		Size:                field[string](fields, "size"),
		Lifespan:            field[string](fields, "lifespan"),
		Coat:                field[string](fields, "coat"),
		Colors:              field[string](fields, "colors"),
		DistinctiveFeatures: field[string](fields, "distinctive_features"),
		PhysicalTraits:      field[[]string](fields, "physical_traits"),
		Temperament:         field[[]string](fields, "temperament"),
		CareRequirements:    field[[]string](fields, "care_requirements"),
		DangerLevel:         field[DangerLevel](fields, "danger_level"),
		PotentialRisks:      field[[]string](fields, "potential_risks"),
		SafetyPrecautions:   field[[]string](fields, "safety_precautions"),
		Description:         field[string](fields, "description"),
	}
}

var jsonNull = []byte("null")

func field[T any](fields map[string]json.RawMessage, key string) *T {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}
