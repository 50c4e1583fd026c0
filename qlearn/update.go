package qlearn

// TDError returns the temporal-difference error of one observed transition:
//
//	TD = reward + gamma * nextMax - current
//
// where nextMax = max_a Q[next][a] and current = Q[state][next].
func TDError(reward, gamma, nextMax, current float64) float64 {
	return reward + gamma*nextMax - current
}

// Update returns the new estimate current + alpha*TD.
// It is pure: the caller decides where the result is stored.
func Update(current, reward, nextMax, gamma, alpha float64) float64 {
	return current + alpha*TDError(reward, gamma, nextMax, current)
}
