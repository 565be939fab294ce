package integer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSucc(t *testing.T) {
	type TC struct {
		input string
		want  uint64
	}

	tcs := []TC{
		{input: "101", want: 6},
		{input: "10010", want: 19},
		{input: "10", want: 3},
		{input: "0", want: 1},
		{input: "111", want: 8},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			require.Equal(t, tc.want, value(t, Succ(MustParse(tc.input))))
		})
	}

	t.Run("shape", func(t *testing.T) {
		require.Equal(t, B1{Rest: Zero{}}, Succ(Zero{}))
		require.Equal(t, B1{Rest: B1{Rest: Zero{}}}, Succ(B0{Rest: B1{Rest: Zero{}}}))
		require.Equal(t, B0{Rest: B0{Rest: B1{Rest: Zero{}}}}, Succ(B1{Rest: B1{Rest: Zero{}}}))
		require.Equal(t, B1{Rest: Zero{}}, Succ(nil))
	})

	t.Run("all", func(t *testing.T) {
		for _, v := range operands(70) {
			check(t, value(t, v)+1, Succ(v), v)
		}
	})
}

func TestPred(t *testing.T) {
	type TC struct {
		input string
		want  uint64
	}

	tcs := []TC{
		{input: "101", want: 4},
		{input: "10010", want: 17},
		{input: "10", want: 1},
		{input: "0", want: 0},
		{input: "1000", want: 7},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			require.Equal(t, tc.want, value(t, Pred(MustParse(tc.input))))
		})
	}

	t.Run("saturates", func(t *testing.T) {
		require.Equal(t, Zero{}, Pred(Zero{}))
		require.Equal(t, Zero{}, Pred(nil))
		require.Equal(t, Zero{}, Pred(B0{Rest: B0{Rest: Zero{}}}))
	})

	t.Run("shape", func(t *testing.T) {
		// 9 - 1 shares the higher bits of 9.
		nine := B1{Rest: B0{Rest: B0{Rest: B1{Rest: Zero{}}}}}
		require.Equal(t, B0{Rest: nine.Rest}, Pred(nine))
		require.Equal(t, B1{Rest: B0{Rest: Zero{}}}, Pred(B0{Rest: B1{Rest: Zero{}}}))
	})

	t.Run("all", func(t *testing.T) {
		for _, v := range operands(70) {
			want := value(t, v)
			if want > 0 {
				want--
			}

			check(t, want, Pred(v), v)
			require.True(t, Equal(v, Pred(Succ(v))))
		}
	})
}
