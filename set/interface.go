package set

type Interface interface {
	// Adds an item to the set.
	Add(int) bool

	// Removes an item from the set.
	Remove(int) bool

	// Removes all items from the set.
	Clear() bool

	// Returns whether the provided items are in the set.
	Contains(...int) bool

	// Returns the number of items in the set.
	Length() int

	// Returns the item at the provided zero-based position in increasing
	// order.
	At(int) (int, error)

	// Iterates over items in increasing order and executes the provided
	// function against each item. Iteration stops when the function returns
	// false.
	ForEach(func(int) bool)

	// Provides a string representation of the set.
	String() string

	// Returns the set as a slice in increasing order.
	ToSlice() []int
}
