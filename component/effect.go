package component

import "github.com/lixenwraith/archon/parameter"

// Announcement is a transient banner consumed by the renderer
type Announcement struct {
	Text    string
	Opacity float64
	Timer   int
}

// NewAnnouncement creates a fully opaque banner
func NewAnnouncement(text string) Announcement {
	return Announcement{
		Text:    text,
		Opacity: 1,
		Timer:   parameter.AnnouncementTicks,
	}
}

// Visible reports whether the banner is still counting down
func (a *Announcement) Visible() bool {
	return a.Timer > 0
}

// Decay advances the banner one tick
func (a *Announcement) Decay() {
	if a.Timer <= 0 {
		return
	}
	a.Timer--
	a.Opacity = max(0, a.Opacity-parameter.AnnouncementFadeStep)
}

// ScreenShake is a renderer transform hint
type ScreenShake struct {
	Intensity float64
	Timer     int
}

// Decay advances the shake one tick
func (s *ScreenShake) Decay() {
	if s.Timer <= 0 {
		return
	}
	s.Timer--
	s.Intensity = max(0, s.Intensity-parameter.ShakeDecayStep)
}
