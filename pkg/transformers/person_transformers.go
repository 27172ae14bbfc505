// SPDX-License-Identifier: Apache-2.0

package transformers

func NewFirstnameTransformer(faker *Faker) *GeneratedTransformer {
	return newUnconditionalGenerated(faker.FirstName)
}

func NewLastnameTransformer(faker *Faker) *GeneratedTransformer {
	return newUnconditionalGenerated(faker.LastName)
}

func NewFullnameTransformer(faker *Faker) *GeneratedTransformer {
	return newUnconditionalGenerated(faker.Name)
}

func NewOrganizationTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.Company)
}

func NewUsernameTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.Username)
}

func NewEmailTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.Email)
}

func NewPhoneTransformer(faker *Faker) *GeneratedTransformer {
	return newGenerated(faker.Phone)
}
