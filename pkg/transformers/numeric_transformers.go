// SPDX-License-Identifier: Apache-2.0

package transformers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RandomIntTransformer generates a random integer. The parameter is either
// a "low-high" range or a single upper bound (meaning 0..bound); without a
// parameter the full non-negative int64 range is used.
type RandomIntTransformer struct {
	faker *Faker
	low   int64
	high  int64
}

func NewRandomIntTransformer(faker *Faker, rangeParam string) (*RandomIntTransformer, error) {
	low, high := int64(0), int64(math.MaxInt64)

	if rangeParam != "" {
		var err error
		if lowStr, highStr, ok := strings.Cut(rangeParam, "-"); ok {
			low, err = strconv.ParseInt(lowStr, 10, 64)
			if err == nil {
				high, err = strconv.ParseInt(highStr, 10, 64)
			}
		} else {
			high, err = strconv.ParseInt(rangeParam, 10, 64)
		}
		if err != nil {
			return nil, fmt.Errorf("random_int: parsing range %q: %w", rangeParam, ErrInvalidParameters)
		}
		if high < low {
			return nil, fmt.Errorf("random_int: empty range %q: %w", rangeParam, ErrInvalidParameters)
		}
	}

	return &RandomIntTransformer{faker: faker, low: low, high: high}, nil
}

func (t *RandomIntTransformer) Transform(value any) (any, error) {
	if isEmpty(value) {
		return emptied(value), nil
	}
	n := t.low
	switch span := t.high - t.low; {
	case span == math.MaxInt64:
		n += t.faker.rand.Int63()
	case span > 0:
		n += t.faker.rand.Int63n(span + 1)
	}
	return []byte(strconv.FormatInt(n, 10)), nil
}

// RandomMoneyTransformer generates a random decimal amount in [0, bound]
// formatted to two decimal places. The bound defaults to 500.00.
type RandomMoneyTransformer struct {
	faker *Faker
	bound float64
}

const defaultMoneyBound = 500.00

func NewRandomMoneyTransformer(faker *Faker, boundParam string) (*RandomMoneyTransformer, error) {
	bound := defaultMoneyBound
	if boundParam != "" {
		var err error
		bound, err = strconv.ParseFloat(boundParam, 64)
		if err != nil {
			return nil, fmt.Errorf("random_money: parsing bound %q: %w", boundParam, ErrInvalidParameters)
		}
	}
	return &RandomMoneyTransformer{faker: faker, bound: bound}, nil
}

func (t *RandomMoneyTransformer) Transform(value any) (any, error) {
	if isEmpty(value) {
		return emptied(value), nil
	}
	return []byte(strconv.FormatFloat(t.faker.rand.Float64()*t.bound, 'f', 2, 64)), nil
}
