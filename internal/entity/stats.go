package entity

import "fmt"

type Stats struct {
	Wins   uint64 `json:"wins"`
	Losses uint64 `json:"losses"`
	Ties   uint64 `json:"ties"`
}

// Describe - the stats line as it is written to logs.
func (that Stats) Describe(player PlayerID) string {
	return fmt.Sprintf("%s has %d wins, %d ties, and %d loses.", player, that.Wins, that.Ties, that.Losses)
}
