package utils

import (
	"math/rand"

	"github.com/Pallinder/go-randomdata"
)

// NameGenerator hands out silly names for meshes/primitives the asset left
// unnamed. Seeded with a constant so reports stay stable between runs.
type NameGenerator map[string]struct{}

func (ng *NameGenerator) Next() string {
	if *ng == nil {
		*ng = make(map[string]struct{})
		randomdata.CustomRand(rand.New(rand.NewSource(0)))
	}
	for {
		name := randomdata.SillyName()
		if _, exists := (*ng)[name]; !exists {
			(*ng)[name] = struct{}{}
			return name
		}
	}
}
