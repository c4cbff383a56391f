package model

// ClassLabel is the CSS class the status bar applies to the widget.
type ClassLabel string

const (
	ClassCritDown ClassLabel = "critdown"
	ClassDown     ClassLabel = "down"
	ClassUp       ClassLabel = "up"
	ClassWayUp    ClassLabel = "wayup"
)

// Thresholds are percentage-change boundaries used to pick a ClassLabel.
type Thresholds struct {
	CritDown float64 `toml:"critdown" yaml:"critdown"`
	Down     float64 `toml:"down" yaml:"down"`
	WayUp    float64 `toml:"wayup" yaml:"wayup"`
}

// Result is the outcome of one run, before formatting.
type Result struct {
	Ticker                 string
	LastPrice              float64
	PriceChangePct         float64
	CacheAgeSeconds        uint64
	EffectiveMaxAgeSeconds uint64
	Class                  ClassLabel
}

// WidgetOutput is the JSON object printed to stdout.
type WidgetOutput struct {
	Text    string     `json:"text"`
	Tooltip string     `json:"tooltip"`
	Class   ClassLabel `json:"class"`
}
