package utils

import "math/rand"

// Returns a random element from the slice
func RandomElementInSlice[T any](r *rand.Rand, slice []T) T {
	return slice[r.Intn(len(slice))]
}

// Returns a copy of the slice without the empty strings
func DeleteEmptyStrings(slice []string) []string {
	newSlice := []string{}

	for _, e := range slice {
		if e != "" {
			newSlice = append(newSlice, e)
		}
	}

	return newSlice
}

// Takes as input a list and a maxLength and subdivises the input list into a list of sublists with a maximum length of maxLength
func SubdiviseSlice[T any](slice []T, maxSubSliceLength int) [][]T {
	allSubSlices := [][]T{}
	currentSubSlice := []T{}

	for _, element := range slice {
		currentSubSlice = append(currentSubSlice, element)

		if len(currentSubSlice) >= maxSubSliceLength {
			allSubSlices = append(allSubSlices, currentSubSlice)

			currentSubSlice = []T{}
		}
	}

	if len(currentSubSlice) > 0 {
		allSubSlices = append(allSubSlices, currentSubSlice)
	}

	return allSubSlices
}
