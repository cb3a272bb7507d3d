package model

import (
	"time"
)

// TimerModel tracks time spent on the current image and the accumulated
// editing time across images. Presenters poll Values() and update views.
// The zero value is ready to use.
type TimerModel struct {
	active       bool
	imageStart   time.Time
	lastDuration time.Duration
	accumulated  time.Duration
}

// NewTimerModel returns a pointer to a ready-to-use TimerModel.
func NewTimerModel() *TimerModel { return &TimerModel{} }

// OnTick updates the model using whether an image is open and the current
// timestamp. Call periodically (for example, from a presenter tick).
func (m *TimerModel) OnTick(editing bool, now time.Time) {
	if m == nil {
		return
	}
	if editing {
		if !m.active { // transition off -> on
			m.active = true
			m.imageStart = now
			m.lastDuration = 0
		}
		m.lastDuration = now.Sub(m.imageStart)
	} else if m.active { // transition on -> off
		m.lastDuration = now.Sub(m.imageStart)
		m.accumulated += m.lastDuration
		m.active = false
	}
}

// NextImage closes the running interval and starts a new one at now.
func (m *TimerModel) NextImage(now time.Time) {
	if m == nil {
		return
	}
	if m.active {
		m.accumulated += now.Sub(m.imageStart)
	}
	m.active = true
	m.imageStart = now
	m.lastDuration = 0
}

// Values returns the time on the current image and the total editing time.
// The total includes the running interval.
func (m *TimerModel) Values() (current, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	current = m.lastDuration
	total = m.accumulated
	if m.active {
		total += current
	}
	return
}
