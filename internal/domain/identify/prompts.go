package identify

import "fmt"

// identifyPrompt pide la respuesta en la plantilla que luego corta ExtractSections.
const identifyPrompt = `
Analyze this image and identify the animal and its specific breed.
Provide a detailed response in the following format:

**Animal:** [Animal type]
**Breed:** [Specific breed if identifiable]

**Physical Characteristics:**
- [Characteristic 1]
- [Characteristic 2]
- [Characteristic 3]

**Temperament:**
- [Temperament trait 1]
- [Temperament trait 2]

**Care Requirements:**
- [Care requirement 1]
- [Care requirement 2]

**Safety Assessment:**
- [Danger level: Low/Medium/High]
- [Potential risks]
- [Safety precautions]

**Additional Information:**
[Any other relevant information about this animal breed]

If the image doesn't contain a recognizable animal, please state that clearly.
`

func factsPrompt(animalType string) string {
	return fmt.Sprintf(`
Provide interesting facts about %s in a bullet point format.
Include information about their:
- Natural habitat
- Diet
- Social behavior
- Unique adaptations
- Conservation status (if applicable)
`, animalType)
}
