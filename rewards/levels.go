package rewards

// PointsPerLevel is the width of one progress tier.
const PointsPerLevel = 200

// Level maps cumulative reward points to a level, starting at 1.
// Holds as an invariant after every points mutation.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}
