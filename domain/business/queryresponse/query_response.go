package queryresponse

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const separatorLength = 40

// Separator rule printed after every section
var Separator = strings.Repeat("-", separatorLength)

// QueryResponse contains the response of a query
// + QueryID: ID of the query that generated the response
// + Title: header printed before the lines, e.g. Calculating Trip Duration...
// + Lines: one line per computed statistic
// + Elapsed: time spent computing the response
type QueryResponse struct {
	QueryID string        `json:"query_id"`
	Title   string        `json:"title"`
	Lines   []string      `json:"lines"`
	Elapsed time.Duration `json:"elapsed"`
}

func NewQueryResponse(queryID string, title string) *QueryResponse {
	return &QueryResponse{
		QueryID: queryID,
		Title:   title,
	}
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}

// AddLine appends a formatted line to the response
func (qr *QueryResponse) AddLine(format string, args ...any) {
	qr.Lines = append(qr.Lines, fmt.Sprintf(format, args...))
}

func (qr *QueryResponse) SetElapsed(elapsed time.Duration) {
	qr.Elapsed = elapsed
}

// WriteTo writes the section: title, lines, elapsed time and the separator rule
func (qr *QueryResponse) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString("\n" + qr.Title + "\n\n")
	for _, line := range qr.Lines {
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("\nThis took %.2f seconds.\n", qr.Elapsed.Seconds()))
	sb.WriteString(Separator + "\n")

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
