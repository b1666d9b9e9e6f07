package store

import "time"

// GameRecord is the persisted form of a match. The full game state is kept
// as a JSON snapshot blob; the indexed columns exist so listings and the
// leaderboard never have to decode snapshots.
type GameRecord struct {
	ID         uint   `gorm:"primarykey"`
	GameID     string `gorm:"uniqueIndex"`
	Phase      string
	Team1Name  string
	Team2Name  string
	Team1Score int
	Team2Score int
	Snapshot   []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TeamProfile accumulates per-team-name results across concluded matches.
type TeamProfile struct {
	ID            uint   `gorm:"primarykey"`
	TeamName      string `gorm:"uniqueIndex"`
	MatchesPlayed int
	Wins          int
	Draws         int
	PointsScored  int
	UpdatedAt     time.Time
}
