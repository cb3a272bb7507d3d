package view

import (
	"fmt"
	"time"

	"github.com/soocke/landmark-editor/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// TimerStats shows time spent on the current image and in total.
type TimerStats interface {
	SetTimes(current, total time.Duration)
}

type timerStats struct {
	imageLbl *TLabelWidget
	totalLbl *TLabelWidget
}

// NewTimerStats creates the two duration labels inside parent at
// (row, startCol) and (row, startCol+1).
func NewTimerStats(parent *FrameWidget, row, startCol int) TimerStats {
	s := &timerStats{imageLbl: TLabel(Width(14), Style(theme.StyleAccentLabel)), totalLbl: TLabel(Width(14), Style(theme.StyleAccentLabel))}
	Grid(s.imageLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, In(parent), Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.SetTimes(0, 0)
	return s
}

func (s *timerStats) SetTimes(current, total time.Duration) {
	if s == nil || s.imageLbl == nil || s.totalLbl == nil {
		return
	}
	s.imageLbl.Configure(Txt("Image: " + clock(current)))
	s.totalLbl.Configure(Txt("Total: " + clock(total)))
}

// clock formats d as mm:ss.
func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
