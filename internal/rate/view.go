package rate

import "time"

type PairView struct {
	Base      string
	Quote     string
	Value     float64
	FetchedAt time.Time
}

type ConversionView struct {
	From      string
	To        string
	Amount    float64
	Result    float64
	FetchedAt time.Time
}
