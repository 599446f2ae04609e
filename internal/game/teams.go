package game

// LeastLoadedTeam picks the team a new player should join: the team
// (1..teamCount) with the fewest current members, ties broken by the
// lowest team number. Pure function of the current roster.
func LeastLoadedTeam(players []*Player, teamCount int) int {
	counts := make([]int, teamCount+1)
	for _, p := range players {
		if p.Team >= 1 && p.Team <= teamCount {
			counts[p.Team]++
		}
	}

	best := 1
	for team := 2; team <= teamCount; team++ {
		if counts[team] < counts[best] {
			best = team
		}
	}
	return best
}
