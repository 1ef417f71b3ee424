package domain

import (
	"fmt"
	"math"
	"time"
)

// Action is the call direction of a signal. The bot currently emits
// CALL, PUT and WAIT, but the type stays open so new actions do not
// break older readers.
type Action string

const (
	ActionCall Action = "CALL"
	ActionPut  Action = "PUT"
	ActionWait Action = "WAIT"
)

// Result is the resolved outcome of a signal. Resolution happens in the
// external bot, which is free to introduce new values, so Result is an
// open string-backed type. An empty result reads as PENDING.
type Result string

const (
	ResultPending   Result = "PENDING"
	ResultAnalyzing Result = "ANALYZING"
	ResultWin       Result = "WIN"
	ResultLoss      Result = "LOSS"
)

const (
	AssetTypeNormal = "Normal"
	AssetTypeOTC    = "OTC"

	// The bot reports volatility buckets in Portuguese.
	VolatilityLow     = "Baixa"
	VolatilityMedium  = "Média"
	VolatilityHigh    = "Alta"
	VolatilityExtreme = "Extrema"
)

// Signal is one prediction record posted by the trading bot.
type Signal struct {
	ID          int64     `json:"id"`
	Asset       string    `json:"asset"`
	Action      Action    `json:"action"`
	Strategy    string    `json:"strategy"`
	Confidence  int       `json:"confidence"`
	Timestamp   time.Time `json:"timestamp"`
	Result      Result    `json:"result,omitempty"`
	Price       string    `json:"price,omitempty"`
	AssetType   string    `json:"assetType"`
	Volatility  string    `json:"volatility"`
	Probability *int      `json:"probability,omitempty"`
	Reasoning   string    `json:"reasoning,omitempty"`
}

// NewSignal carries the validated fields of a signal about to be
// inserted. The store assigns ID and Timestamp.
type NewSignal struct {
	Asset       string
	Action      Action
	Strategy    string
	Confidence  int
	Result      Result
	Price       string
	AssetType   string
	Volatility  string
	Probability *int
	Reasoning   string
}

// SignalInput is the raw create-request body. Confidence and
// Probability are typed loosely because the bot sends them either as
// numbers or as numeric strings.
type SignalInput struct {
	Asset       string `json:"asset"`
	Action      string `json:"action"`
	Strategy    string `json:"strategy"`
	Confidence  any    `json:"confidence"`
	Result      string `json:"result"`
	Price       string `json:"price"`
	AssetType   string `json:"assetType"`
	Volatility  string `json:"volatility"`
	Probability any    `json:"probability"`
	Reasoning   string `json:"reasoning"`
}

// BotLog is one free-text operational line posted by the trading bot.
type BotLog struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// BotLogInput is the raw create-request body for a log line.
type BotLogInput struct {
	Message string `json:"message"`
}

// ValidationError reports the first request field that failed
// validation, using its dotted path.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Stats are the aggregates the dashboard derives from a signal list.
type Stats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Wins    int `json:"wins"`
	Losses  int `json:"losses"`
	WinRate int `json:"winRate"`
}

// ComputeStats derives dashboard aggregates from a signal list. Only
// WIN and LOSS rows count toward the win rate; an empty result is
// treated as PENDING.
func ComputeStats(signals []Signal) Stats {
	stats := Stats{Total: len(signals)}
	for _, s := range signals {
		switch s.Result {
		case ResultWin:
			stats.Wins++
		case ResultLoss:
			stats.Losses++
		case ResultPending, "":
			stats.Active++
		}
	}
	if finished := stats.Wins + stats.Losses; finished > 0 {
		stats.WinRate = int(math.Round(100 * float64(stats.Wins) / float64(finished)))
	}
	return stats
}
