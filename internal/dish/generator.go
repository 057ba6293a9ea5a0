package dish

import "math/rand"

// Generate produces count dirty dishes with IDs 1..count and kinds drawn
// from a generator seeded with seed. The same seed always yields the same
// kind sequence, so both execution strategies can run on identical inputs.
func Generate(count int, seed int64) []*Dish {
	if count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	kinds := AllKinds()
	dishes := make([]*Dish, 0, count)
	for i := 0; i < count; i++ {
		dishes = append(dishes, &Dish{
			ID:     int64(i + 1),
			Kind:   kinds[rng.Intn(len(kinds))],
			Status: StatusDirty,
		})
	}
	return dishes
}
