package breeds

const (
	notSpecified     = "Not specified"
	notAvailable     = "Information not available"
	unknownTypeValue = AnimalUnknown
)

// Template devuelve la ficha con los valores por defecto de cada campo.
func Template(name string) Record {
	return Record{
		Name:                name,
		AnimalType:          unknownTypeValue,
		Origin:              notSpecified,
		Size:                notSpecified,
		Lifespan:            notSpecified,
		Coat:                notSpecified,
		Colors:              notSpecified,
		DistinctiveFeatures: notSpecified,
		PhysicalTraits:      []string{},
		Temperament:         []string{notAvailable},
		CareRequirements:    []string{notAvailable},
		DangerLevel:         DangerUnknown,
		PotentialRisks:      []string{notAvailable},
		SafetyPrecautions:   []string{notAvailable},
		Description:         notAvailable,
	}
}

// Normalize mezcla p sobre Template(name) campo por campo.
// p puede ser nil (raza sin datos): se devuelve la plantilla completa.
func Normalize(name string, p *PartialRecord) Record {
	r := Template(name)
	if p == nil {
		return r
	}

	if p.AnimalType != nil {
		r.AnimalType = *p.AnimalType
	}
	setString(&r.Origin, p.Origin)
	setString(&r.Size, p.Size)
	setString(&r.Lifespan, p.Lifespan)
	setString(&r.Coat, p.Coat)
	setString(&r.Colors, p.Colors)
	setString(&r.DistinctiveFeatures, p.DistinctiveFeatures)
	setList(&r.PhysicalTraits, p.PhysicalTraits)
	setList(&r.Temperament, p.Temperament)
	setList(&r.CareRequirements, p.CareRequirements)
	if p.DangerLevel != nil {
		r.DangerLevel = *p.DangerLevel
	}
	setList(&r.PotentialRisks, p.PotentialRisks)
	setList(&r.SafetyPrecautions, p.SafetyPrecautions)
	setString(&r.Description, p.Description)

	return r
}

// NormalizeCatalog normaliza cada entrada de raw.
func NormalizeCatalog(raw RawCatalog) Catalog {
	out := make(Catalog, len(raw))
	for name, p := range raw {
		out[name] = Normalize(name, &p)
	}
	return out
}

// Partial convierte una ficha completa a su forma persistida (todos los campos presentes).
func (r Record) Partial() PartialRecord {
	at := r.AnimalType
	dl := r.DangerLevel
	return PartialRecord{
		AnimalType:          &at,
		Origin:              ptr(r.Origin),
		Size:                ptr(r.Size),
		Lifespan:            ptr(r.Lifespan),
		Coat:                ptr(r.Coat),
		Colors:              ptr(r.Colors),
		DistinctiveFeatures: ptr(r.DistinctiveFeatures),
		PhysicalTraits:      listPtr(r.PhysicalTraits),
		Temperament:         listPtr(r.Temperament),
		CareRequirements:    listPtr(r.CareRequirements),
		DangerLevel:         &dl,
		PotentialRisks:      listPtr(r.PotentialRisks),
		SafetyPrecautions:   listPtr(r.SafetyPrecautions),
		Description:         ptr(r.Description),
	}
}

// Raw convierte el catálogo a su forma persistida.
func (c Catalog) Raw() RawCatalog {
	out := make(RawCatalog, len(c))
	for name, r := range c {
		out[name] = r.Partial()
	}
	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setList(dst *[]string, src *[]string) {
	if src == nil {
		return
	}
	*dst = append([]string{}, (*src)...)
}

func ptr(s string) *string { return &s }

func listPtr(in []string) *[]string {
	cp := append([]string{}, in...)
	return &cp
}
