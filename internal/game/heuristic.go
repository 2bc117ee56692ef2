package game

// HostShouldDraw is the automated dealer policy: keep drawing while the hand
// is short of the host threshold and there is room in the hand.
func (s Scorer) HostShouldDraw(hand []Card) bool {
	if len(hand) >= FiveStarsCards {
		return false
	}
	return s.Evaluate(hand, RoleHost).Status == NotEnoughPoints
}
