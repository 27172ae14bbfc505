// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// Reporter is implemented by the real progress bar and by a noop used when
// the export stream shares the terminal with the progress output.
type Reporter interface {
	Add(count int) error
	Close() error
}

type Bar struct {
	*progressbar.ProgressBar
}

// small tables render in a blink, a bar is just noise for them
const minRowsForBar = 100

// NewBar returns a row-count progress bar for the given table description,
// or a noop reporter when the table is too small to be worth one.
func NewBar(totalRows int64, description string) Reporter {
	if totalRows <= minRowsForBar {
		return &Noop{}
	}
	return &Bar{
		ProgressBar: progressbar.NewOptions64(totalRows,
			progressbar.OptionShowCount(),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetWidth(20),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetDescription(description),
			progressbar.OptionOnCompletion(func() {
				fmt.Printf("\n") //nolint:forbidigo
			}),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			})),
	}
}

type Noop struct{}

func (n *Noop) Add(int) error { return nil }
func (n *Noop) Close() error  { return nil }

// Factory builds a Reporter for a table export. It is selected once at
// startup based on the output mode.
type Factory func(totalRows int64, description string) Reporter

func BarFactory() Factory {
	return NewBar
}

func NoopFactory() Factory {
	return func(int64, string) Reporter { return &Noop{} }
}
