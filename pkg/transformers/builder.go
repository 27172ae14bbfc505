// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"fmt"
)

type buildFn func(faker *Faker, cfg *Config) (Transformer, error)

var kindBuilders = map[Kind]buildFn{
	KindEmpty: func(*Faker, *Config) (Transformer, error) {
		return NewEmptyTransformer(), nil
	},
	KindNull: func(*Faker, *Config) (Transformer, error) {
		return NewNullTransformer(), nil
	},
	KindReplace: func(_ *Faker, cfg *Config) (Transformer, error) {
		return NewReplaceTransformer(cfg.Param), nil
	},
	KindReplaceIfNotEmpty: func(_ *Faker, cfg *Config) (Transformer, error) {
		return NewReplaceIfNotEmptyTransformer(cfg.Param), nil
	},
	KindFirstname: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewFirstnameTransformer(faker), nil
	},
	KindLastname: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewLastnameTransformer(faker), nil
	},
	KindFullname: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewFullnameTransformer(faker), nil
	},
	KindOrganization: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewOrganizationTransformer(faker), nil
	},
	KindAddr1: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewAddr1Transformer(faker), nil
	},
	KindAddr2: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewAddr2Transformer(faker), nil
	},
	KindCity: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewCityTransformer(faker), nil
	},
	KindPostalCode: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewPostalCodeTransformer(faker), nil
	},
	KindHostname: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewHostnameTransformer(faker), nil
	},
	KindEmailHash: func(*Faker, *Config) (Transformer, error) {
		return NewEmailHashTransformer(), nil
	},
	KindDomainHash: func(*Faker, *Config) (Transformer, error) {
		return NewDomainHashTransformer(), nil
	},
	KindIpv4: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewIpv4Transformer(faker), nil
	},
	KindIpv6: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewIpv6Transformer(faker), nil
	},
	KindIpv6Bin: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewIpv6BinTransformer(faker), nil
	},
	KindUsername: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewUsernameTransformer(faker), nil
	},
	KindEmail: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewEmailTransformer(faker), nil
	},
	KindPhone: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewPhoneTransformer(faker), nil
	},
	KindStateCode: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewStateCodeTransformer(faker), nil
	},
	KindCountryCode: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewCountryCodeTransformer(faker), nil
	},
	KindMacAddress: func(faker *Faker, _ *Config) (Transformer, error) {
		return NewMacAddressTransformer(faker), nil
	},
	KindRandomAlphanum: func(faker *Faker, cfg *Config) (Transformer, error) {
		return NewRandomAlphanumTransformer(faker, cfg.Param)
	},
	KindLoremIpsum: func(faker *Faker, cfg *Config) (Transformer, error) {
		return NewLoremIpsumTransformer(faker, cfg.Param)
	},
	KindRandomInt: func(faker *Faker, cfg *Config) (Transformer, error) {
		return NewRandomIntTransformer(faker, cfg.Param)
	},
	KindRandomMoney: func(faker *Faker, cfg *Config) (Transformer, error) {
		return NewRandomMoneyTransformer(faker, cfg.Param)
	},
	KindRegex: func(_ *Faker, cfg *Config) (Transformer, error) {
		return NewRegexTransformer(cfg.Param, cfg.Param2)
	},
}

// New builds the transformer for a column rule. Parameter problems surface
// here, before any row is read.
func New(faker *Faker, cfg *Config) (Transformer, error) {
	build, ok := kindBuilders[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, cfg.Kind)
	}
	return build(faker, cfg)
}

// KnownKind reports whether the kind has a registered builder. Used for
// config validation at decode time.
func KnownKind(k Kind) bool {
	_, ok := kindBuilders[k]
	return ok
}
