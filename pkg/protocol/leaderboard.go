package protocol

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   UserID `json:"user_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type Leaderboard []LeaderboardEntry

func (l Leaderboard) Clone() Leaderboard {
	if l == nil {
		return nil
	}
	clone := make(Leaderboard, len(l))
	copy(clone, l)
	return clone
}

func (l Leaderboard) Get(id UserID) *LeaderboardEntry {
	for i := range l {
		if l[i].UserID == id {
			return &l[i]
		}
	}
	return nil
}
