package breeds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Nil(t *testing.T) {
	r := Normalize("Pug", nil)
	assert.Equal(t, Template("Pug"), r)
	assert.Equal(t, "Pug", r.Name)
	assert.Equal(t, []string{}, r.PhysicalTraits)
	assert.Equal(t, "Information not available", r.Description)
}

// Para cada campo ausente, Normalize usa el default de ese campo y no toca el resto.
func TestNormalize_MissingFieldGetsDefault(t *testing.T) {
	full := BuiltinCatalog()["Golden Retriever"]
	tmpl := Template("Golden Retriever")

	fields := []string{
		"animal_type", "origin", "size", "lifespan", "coat", "colors",
		"distinctive_features", "physical_traits", "temperament",
		"care_requirements", "danger_level", "potential_risks",
		"safety_precautions", "description",
	}

	for _, f := range fields {
		t.Run(f, func(t *testing.T) {
			b, err := json.Marshal(full.Partial())
			require.NoError(t, err)

			var m map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(b, &m))
			delete(m, f)

			b, err = json.Marshal(m)
			require.NoError(t, err)
			var p PartialRecord
			require.NoError(t, json.Unmarshal(b, &p))

			got := Normalize("Golden Retriever", &p)

			want := full
			setField(t, &want, f, tmpl)
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalize_PresentButEmptyIsKept(t *testing.T) {
	var p PartialRecord
	require.NoError(t, json.Unmarshal([]byte(`{"origin":"","temperament":[]}`), &p))

	r := Normalize("X", &p)
	assert.Equal(t, "", r.Origin)
	assert.Equal(t, []string{}, r.Temperament)
	assert.Equal(t, "Not specified", r.Size)
}

func TestPartial_RoundTrip(t *testing.T) {
	for name, r := range GenerateDefaultCatalog() {
		p := r.Partial()
		assert.Equal(t, r, Normalize(name, &p), name)
	}
}

func setField(t *testing.T, r *Record, field string, from Record) {
	t.Helper()
	switch field {
	case "animal_type":
		r.AnimalType = from.AnimalType
	case "origin":
		r.Origin = from.Origin
	case "size":
		r.Size = from.Size
	case "lifespan":
		r.Lifespan = from.Lifespan
	case "coat":
		r.Coat = from.Coat
	case "colors":
		r.Colors = from.Colors
	case "distinctive_features":
		r.DistinctiveFeatures = from.DistinctiveFeatures
	case "physical_traits":
		r.PhysicalTraits = from.PhysicalTraits
	case "temperament":
		r.Temperament = from.Temperament
	case "care_requirements":
		r.CareRequirements = from.CareRequirements
	case "danger_level":
		r.DangerLevel = from.DangerLevel
	case "potential_risks":
		r.PotentialRisks = from.PotentialRisks
	case "safety_precautions":
		r.SafetyPrecautions = from.SafetyPrecautions
	case "description":
		r.Description = from.Description
	default:
		t.Fatalf("unknown field %q", field)
	}
}
