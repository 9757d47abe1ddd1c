package dispatch

import "time"

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.states.now = now
}

func (s *Service) SetAttemptIDs(next func() string) { s.newAttemptID = next }
