package streak

// Streak summarizes a user's writing habit
type Streak struct {
	Current    int     `json:"current"`
	Longest    int     `json:"longest"`
	TotalDays  int     `json:"totalDays"`
	Level      string  `json:"level"`
	NextTarget int     `json:"nextTarget"`
	Progress   float64 `json:"progress"`
}
