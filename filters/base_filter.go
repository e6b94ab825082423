/*
Package filters implements the PCY pair filter - a bloom style filter
with a single hash function whose bits are the bucket bitmap.
*/
package filters

type BaseFilter[T any] interface {
	Insert(element T) (bool, error)
	Lookup(element T) (bool, error)
}
