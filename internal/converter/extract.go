package converter

import (
	"github.com/ginjaninja78/beer-review-extractor/internal/accumulator"
	"github.com/ginjaninja78/beer-review-extractor/internal/config"
	"github.com/ginjaninja78/beer-review-extractor/internal/csvwriter"
	"github.com/ginjaninja78/beer-review-extractor/internal/lineparser"
	"github.com/ginjaninja78/beer-review-extractor/internal/types"
)

// UsersHeader is the header row of the users table.
const UsersHeader = "Username"

// Extraction is the state built by one parse pass. Nothing in it is written
// to disk; see Tables.
type Extraction struct {
	Header  types.Header
	Beers   *accumulator.BeerTable
	Reviews *accumulator.ReviewLog
	Users   *accumulator.UserSet

	// Boundary is the review start index the pass split lines at.
	Boundary int

	// LinesRead is the number of input lines, header included.
	LinesRead int

	// Truncated is set when the pass stopped at a short line. TruncatedAt is
	// that line's 0-based index.
	Truncated   bool
	TruncatedAt int
}

// Extract runs the parse pass over lines. Line 0 declares the fields; lines
// 1..N are reviews.
//
// A short line ends the pass normally and everything gathered so far is
// kept. A fatal line ends it with a *lineparser.LineError and no Extraction.
// Progress is logged every progressInterval lines when progressInterval > 0.
func Extract(lines []string, layout config.Layout, logger Logger, progressInterval int) (*Extraction, error) {
	if len(lines) == 0 {
		return nil, lineparser.ErrEmptyHeader
	}

	header, err := lineparser.DeriveHeader(lineparser.ExtractKeys(lines[0]))
	if err != nil {
		return nil, err
	}
	logger.Debug("Derived %d columns from header line", header.Len())

	ext := &Extraction{
		Header:    header,
		Beers:     accumulator.NewBeerTable(),
		Reviews:   accumulator.NewReviewLog(),
		Users:     accumulator.NewUserSet(),
		Boundary:  layout.ReviewStartIndex,
		LinesRead: len(lines),
	}

	splitter := lineparser.NewSplitter(layout, header)

	for i := 1; i < len(lines); i++ {
		if progressInterval > 0 && i%progressInterval == 0 {
			logger.Info("Parsed %d lines", i)
		}

		out := splitter.Split(i, lineparser.ExtractFields(lines[i]))
		switch out.Kind {
		case lineparser.Truncated:
			ext.Truncated = true
			ext.TruncatedAt = i
			logger.Debug("Line %d is truncated, ignoring %d trailing line(s)", i, len(lines)-i)
			return ext, nil

		case lineparser.Fatal:
			return nil, out.Err

		case lineparser.Parsed:
			ext.add(out.Record)
		}
	}

	return ext, nil
}

// add folds one parsed record into the accumulators.
func (e *Extraction) add(rec types.Record) {
	e.Beers.Insert(rec.BeerName, csvwriter.FormatRow(rec.Beer))
	e.Reviews.Append(csvwriter.FormatRow(rec.Review))
	e.Users.Add(rec.Username)
}

// Tables returns the beers, reviews and users tables named per out.
func (e *Extraction) Tables(out config.OutputSettings) []csvwriter.Table {
	users := make([]string, 0, e.Users.Len())
	for _, name := range e.Users.Names() {
		users = append(users, csvwriter.FormatValue(name))
	}

	return []csvwriter.Table{
		{Name: out.BeersFile, Header: e.Header.BeerColumns(e.Boundary), Rows: e.Beers.Rows()},
		{Name: out.ReviewsFile, Header: e.Header.ReviewColumns(e.Boundary), Rows: e.Reviews.Rows()},
		{Name: out.UsersFile, Header: UsersHeader, Rows: users},
	}
}
