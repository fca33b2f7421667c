package testutil

import "reflect"

func IsEqualError(x, y error) bool {
	if x == nil && y == nil {
		return true
	}
	if (x == nil) != (y == nil) {
		return false
	}
	return reflect.DeepEqual(x, y) && x.Error() == y.Error()
}
