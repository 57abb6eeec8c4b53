package fsm

type Condition[T any] func(value T) bool

func AnyCondition[T any](T) bool {
	return true
}

// NewWordSetCondition holds when the word picked from the value is in the set.
func NewWordSetCondition[T any](word func(T) string, set map[string]bool) Condition[T] {
	return func(value T) bool {
		return set[word(value)]
	}
}

func NewWordMapCondition[T any](word func(T) string, set map[string]string) Condition[T] {
	return func(value T) bool {
		_, ok := set[word(value)]
		return ok
	}
}

func NewTextValueCondition[T any](word func(T) string, text string) Condition[T] {
	return func(value T) bool {
		return word(value) == text
	}
}

func NewDisjointCondition[T any](conditions ...Condition[T]) Condition[T] {
	return func(value T) bool {
		for _, cond := range conditions {
			if cond(value) {
				return true
			}
		}

		return false
	}
}

func NewCombineCondition[T any](conditions ...Condition[T]) Condition[T] {
	return func(value T) bool {
		for _, cond := range conditions {
			if !cond(value) {
				return false
			}
		}

		return true
	}
}

func NewNegateCondition[T any](cond Condition[T]) Condition[T] {
	return func(value T) bool {
		return !cond(value)
	}
}
