package systems

import (
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch drives the match flow: countdown into play, then watches for
// a knockout. The knockout check is an observation of fighter state - the
// simulation itself never stops; the scene reads Finished and moves on.
func UpdateMatch(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	switch match.State {
	case cfg.MatchStateCountdown:
		updateCountdown(match)

	case cfg.MatchStatePlaying:
		if winner, over := matchOutcome(e); over {
			match.State = cfg.MatchStateFinished
			match.Timer = cfg.Match.ResultsDisplayTime
			match.WinnerName = winner
		}

	case cfg.MatchStateFinished:
		if match.Timer > 0 {
			match.Timer--
		}
	}
}

func updateCountdown(match *components.MatchData) {
	if match.Timer > 0 {
		match.Timer--

		framesPerCount := cfg.Match.CountdownDuration / 3
		match.CountdownValue = match.Timer/framesPerCount + 1
		if match.CountdownValue > 3 {
			match.CountdownValue = 3
		}
		return
	}

	match.State = cfg.MatchStatePlaying
	match.CountdownValue = -1 // GO
}

// matchOutcome reports whether any fighter is knocked out and names the
// winner. A double knockout yields an empty winner (draw).
func matchOutcome(e *ecs.ECS) (winner string, over bool) {
	var standing []string
	knockouts := 0
	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		hp := components.Health.Get(f)
		if hp.KnockedOut() {
			knockouts++
			return
		}
		standing = append(standing, components.Fighter.Get(f).Name)
	})

	if knockouts == 0 {
		return "", false
	}
	if len(standing) == 1 {
		return standing[0], true
	}
	return "", true
}

// IsMatchPlaying returns true while gameplay systems should run.
func IsMatchPlaying(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return true
	}
	return components.Match.Get(matchEntry).State == cfg.MatchStatePlaying
}

// IsMatchFinished returns true once the results display has run its course.
func IsMatchFinished(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	match := components.Match.Get(matchEntry)
	return match.State == cfg.MatchStateFinished && match.Timer <= 0
}

// WithGameplayChecks wraps a system so it only runs while the match is in
// the playing state.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsMatchPlaying(e) {
			return
		}
		system(e)
	}
}
