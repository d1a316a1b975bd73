package knowledgebase

import (
	"checkups/pkg/domain"
	"strings"
)

const (
	unknownHospital = "Information Available"
	unknownPrice    = "Contact for pricing"
	fallbackFeature = "Please contact the hospital for detailed package information"
	rupeeSign       = "₹"

	hospitalPrefix    = "Hospital Name:"
	packagePrefix     = "Package Name:"
	pricePrefix       = "Price:"
	descriptionPrefix = "Description:"
	featurePrefix     = "- "
)

// ParseAnswer extracts packages from a generated answer.
//
// A "Hospital Name:" or "Package Name:" line opens a new package; the
// previous one is kept only if it carries any information. "Package Name:"
// and "Description:" both set the description, the later line winning.
// Prices keep the text after the last rupee sign. Lines starting with "- "
// are features. Lines before the first package header are ignored.
//
// When no package can be parsed, a single package is built from the raw
// answer so the user still sees it.
func ParseAnswer(text string) []domain.Package {
	var (
		packages []domain.Package
		current  *domain.Package
	)

	flush := func() {
		if current != nil && informative(current) {
			packages = append(packages, *current)
		}
	}

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, hospitalPrefix) || strings.HasPrefix(line, packagePrefix) {
			flush()
			current = &domain.Package{
				Hospital: unknownHospital,
				Price:    domain.TextPrice(unknownPrice),
				Features: []string{},
			}
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, hospitalPrefix):
			current.Hospital = field(line, hospitalPrefix)
		case strings.HasPrefix(line, packagePrefix):
			current.Description = field(line, packagePrefix)
		case strings.HasPrefix(line, pricePrefix):
			current.Price = domain.TextPrice(parsePrice(field(line, pricePrefix)))
		case strings.HasPrefix(line, descriptionPrefix):
			current.Description = field(line, descriptionPrefix)
		case strings.HasPrefix(line, featurePrefix):
			if f := field(line, featurePrefix); f != "" {
				current.Features = append(current.Features, f)
			}
		}
	}
	flush()

	if len(packages) == 0 {
		return []domain.Package{fallbackPackage(text, lines)}
	}

	return packages
}

func informative(p *domain.Package) bool {
	return p.Hospital != unknownHospital || p.Description != "" || len(p.Features) > 0
}

func field(line, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, prefix))
}

func parsePrice(s string) string {
	if i := strings.LastIndex(s, rupeeSign); i >= 0 {
		return strings.TrimSpace(s[i+len(rupeeSign):])
	}

	return s
}

func fallbackPackage(text string, lines []string) domain.Package {
	hospital := unknownHospital
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "hospital") || strings.Contains(lower, "medical center") {
			hospital = strings.TrimSpace(line)

			break
		}
	}

	return domain.Package{
		Hospital:    hospital,
		Price:       domain.TextPrice(unknownPrice),
		Description: text,
		Features:    []string{fallbackFeature},
	}
}
