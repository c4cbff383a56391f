package strategy

import "stocker/internal/model"

// Classify maps a percentage change to a ClassLabel. The down checks run
// before wayup and every comparison is strict, so a value equal to a
// threshold falls through to the next rule.
func Classify(pct float64, th model.Thresholds) model.ClassLabel {
	if pct < th.Down {
		if pct < th.CritDown {
			return model.ClassCritDown
		}
		return model.ClassDown
	}
	if pct > th.WayUp {
		return model.ClassWayUp
	}
	return model.ClassUp
}
