package rewards_test

import (
	"testing"

	"tanam/rewards"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	cases := map[int]int{
		0:   1,
		199: 1,
		200: 2,
		399: 2,
		400: 3,
		450: 3,
	}
	for points, want := range cases {
		if got := rewards.Level(points); got != want {
			t.Errorf("Level(%d) = %d, want %d", points, got, want)
		}
	}
}
