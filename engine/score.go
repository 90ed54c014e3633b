package engine

import (
	"tchu/game"
	"tchu/info"
	"tchu/meta"
)

// Result is the outcome of a finished game.
type Result struct {
	Session string
	Names   map[game.PlayerID]string
	Points  map[game.PlayerID]int
	Trails  map[game.PlayerID]game.Trail
	// Bonus lists the players who got the longest trail bonus.
	Bonus  []game.PlayerID
	Winner game.PlayerID
	Draw   bool
	Turns  int
}

// Winners names the winner, or both players on a draw.
func (r Result) Winners() []string {
	if r.Draw {
		names := make([]string, 0, len(game.PlayerIDs))
		for _, id := range game.PlayerIDs {
			names = append(names, r.Names[id])
		}
		return names
	}
	return []string{r.Names[r.Winner]}
}

func (e *Engine) score() (Result, error) {
	e.phase = GameOver
	if err := e.broadcastState(); err != nil {
		return Result{}, err
	}

	res := Result{
		Session: e.session,
		Names:   e.names,
		Points:  make(map[game.PlayerID]int, len(game.PlayerIDs)),
		Trails:  make(map[game.PlayerID]game.Trail, len(game.PlayerIDs)),
		Turns:   e.turns,
	}
	longest := 0
	for _, id := range game.PlayerIDs {
		ps := e.state.PlayerState(id)
		res.Trails[id] = game.Longest(ps.Routes())
		res.Points[id] = ps.FinalPoints()
		longest = max(longest, res.Trails[id].Length())
	}
	for _, id := range game.PlayerIDs {
		if res.Trails[id].Length() != longest {
			continue
		}
		res.Bonus = append(res.Bonus, id)
		res.Points[id] += meta.LONGEST_TRAIL_BONUS_POINTS
		if err := e.broadcastInfo(e.infos[id].GetsLongestTrailBonus(res.Trails[id])); err != nil {
			return Result{}, err
		}
	}

	p1, p2 := res.Points[game.Player1], res.Points[game.Player2]
	var msg string
	switch {
	case p1 == p2:
		res.Draw = true
		msg = info.Draw(res.Winners(), p1)
	case p1 > p2:
		res.Winner = game.Player1
		msg = e.infos[game.Player1].Won(p1, p2)
	default:
		res.Winner = game.Player2
		msg = e.infos[game.Player2].Won(p2, p1)
	}
	if err := e.broadcastInfo(msg); err != nil {
		return Result{}, err
	}
	e.logger.Info().
		Int("turns", e.turns).
		Int("points1", p1).
		Int("points2", p2).
		Bool("draw", res.Draw).
		Msg("game over")
	return res, nil
}
