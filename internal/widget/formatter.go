package widget

import (
	"fmt"

	"stocker/internal/model"
)

// FormatText renders the bar label, e.g. "AAPL $110.00 (10.00%)".
func FormatText(ticker string, lastPrice, pct float64) string {
	return fmt.Sprintf("%s $%.2f (%.2f%%)", ticker, lastPrice, pct)
}

// FormatTooltip reports the cache age against the limit in force today.
func FormatTooltip(ageSeconds, maxAgeSeconds uint64) string {
	return fmt.Sprintf("Cache Age: %d seconds (Max allowed: %d seconds)", ageSeconds, maxAgeSeconds)
}

// Format builds the widget object for a run result.
func Format(r *model.Result) model.WidgetOutput {
	return model.WidgetOutput{
		Text:    FormatText(r.Ticker, r.LastPrice, r.PriceChangePct),
		Tooltip: FormatTooltip(r.CacheAgeSeconds, r.EffectiveMaxAgeSeconds),
		Class:   r.Class,
	}
}
