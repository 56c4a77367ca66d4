package breeds

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// RenderMarkdown escribe la ficha de una raza en markdown.
func RenderMarkdown(w io.Writer, r Record) error {
	md := markdown.NewMarkdown(w)

	md.H1(r.Name)
	md.PlainText("")
	md.PlainText(r.Description)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Animal", string(r.AnimalType)},
			{"Origin", r.Origin},
			{"Size", r.Size},
			{"Lifespan", r.Lifespan},
			{"Coat", r.Coat},
			{"Colors", r.Colors},
			{"Distinctive features", r.DistinctiveFeatures},
			{"Danger level", string(r.DangerLevel)},
		},
	})
	md.PlainText("")

	writeList(md, "Physical Characteristics", r.PhysicalTraits)
	writeList(md, "Temperament", r.Temperament)
	writeList(md, "Care Requirements", r.CareRequirements)

	md.H2("Safety Assessment")
	if r.DangerLevel == DangerHigh {
		md.Warningf("Danger level: %s", r.DangerLevel)
	}
	writeList(md, "Potential Risks", r.PotentialRisks)
	writeList(md, "Safety Precautions", r.SafetyPrecautions)

	return md.Build()
}

// RenderCatalogMarkdown escribe todas las fichas ordenadas por nombre.
func RenderCatalogMarkdown(w io.Writer, c Catalog) error {
	for i, name := range c.Names() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n---\n\n"); err != nil {
				return err
			}
		}
		if err := RenderMarkdown(w, c[name]); err != nil {
			return err
		}
	}
	return nil
}

func writeList(md *markdown.Markdown, title string, items []string) {
	md.H3(title)
	if len(items) == 0 {
		md.PlainText("_" + strings.ToLower(notSpecified) + "_")
		md.PlainText("")
		return
	}
	md.BulletList(items...)
	md.PlainText("")
}
