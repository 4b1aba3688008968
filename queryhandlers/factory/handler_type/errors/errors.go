package errors

import "errors"

// NoDataMessage line shown instead of the statistics when the filtered table has no trips
const NoDataMessage = "No data available for the selected filters."

var (
	ErrNoData = errors.New("no trips to analyze")
)
