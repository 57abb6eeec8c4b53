package fsm

import (
	"github.com/stretchr/testify/require"
	"testing"
)

type args struct {
	x, y string
}

func TestMachine(t *testing.T) {
	filled := func(pick func(args) string) Condition[args] {
		return func(a args) bool { return pick(a) != "" }
	}
	x := func(a args) string { return a.x }
	y := func(a args) string { return a.y }

	machine := Machine[args]{
		"check": {
			{Dst: "both", Cond: NewCombineCondition(filled(x), filled(y))},
			{Dst: "one", Cond: NewDisjointCondition(filled(x), filled(y))},
			{Dst: "named", Cond: NewTextValueCondition(x, "")},
		},
		"stuck": {
			{Dst: "never", Cond: NewNegateCondition[args](AnyCondition[args])},
		},
	}

	t.Run("First rule wins", func(t *testing.T) {
		require.Equal(t, "both", machine.Input(args{"a", "b"}, "check"))
		require.Equal(t, "one", machine.Input(args{"", "b"}, "check"))
		require.Equal(t, "named", machine.Input(args{}, "check"))
	})

	t.Run("No rule holds", func(t *testing.T) {
		require.Equal(t, "stuck", machine.Input(args{}, "stuck"))
	})

	t.Run("Unknown state", func(t *testing.T) {
		require.Panics(t, func() { machine.Input(args{}, "missing") })
	})

	t.Run("Word sets", func(t *testing.T) {
		cond := NewWordSetCondition(x, map[string]bool{"ir": true})
		require.True(t, cond(args{x: "ir"}))
		require.False(t, cond(args{x: "venir"}))
		mapCond := NewWordMapCondition(y, map[string]string{"haber": "exist"})
		require.True(t, mapCond(args{y: "haber"}))
	})

	require.ElementsMatch(t, []string{"check", "stuck"}, machine.States())
}
