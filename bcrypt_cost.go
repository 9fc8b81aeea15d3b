//go:build !race

package articles

func passwordHashCost() int {
	return 14
}
