// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"fmt"
)

// NewAddr1Transformer synthesizes a street address line as
// "<number> <street name> <street suffix>".
func NewAddr1Transformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(func() string {
		return fmt.Sprintf("%d %s %s", faker.rand.Intn(256), faker.StreetName(), faker.StreetSuffix())
	})
}

// NewAddr2Transformer synthesizes a secondary address line ("Apt. 42").
func NewAddr2Transformer(faker *Faker) *GeneratedTransformer {
	units := []string{"Apt.", "Suite", "Unit"}
	return newGenerated(func() string {
		return fmt.Sprintf("%s %d", units[faker.rand.Intn(len(units))], faker.rand.Intn(1000))
	})
}

func NewCityTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.City)
}

func NewPostalCodeTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.Zip)
}

func NewStateCodeTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.StateAbr)
}

func NewCountryCodeTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.CountryAbr)
}
