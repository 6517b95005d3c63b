package logos

import "errors"

func orderPtr(v int) *Order {
	o := Order(v)
	return &o
}

func isPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe) || errors.Is(err, ErrUnavailable)
}
