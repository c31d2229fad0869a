package session

import (
	"strconv"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/ranking"
	"github.com/Ram-Pam-Pam/Projekt/internal/scoring"
	"github.com/Ram-Pam-Pam/Projekt/internal/selection"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/candidates"
	"github.com/Ram-Pam-Pam/Projekt/internal/visual"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
)

type RankedDistrict struct {
	domain.ScoredDistrict
	Rank  int    `json:"rank"`
	Color string `json:"color"`
}

type RankedLocation struct {
	domain.CandidateLocation
	Rank  int    `json:"rank"`
	Color string `json:"color"`
}

// Marker is what a map renderer needs to place one candidate location.
type Marker struct {
	ID     string        `json:"id"`
	Coords domain.Coords `json:"coords"`
	Color  string        `json:"color"`
}

// View is everything a client renders for one session. It is derived from the
// current hierarchy and candidate snapshot and never mutated.
type View struct {
	SessionID        string                  `json:"session_id"`
	Version          uint64                  `json:"version"`
	Hierarchy        *weights.Hierarchy      `json:"hierarchy"`
	Weights          scoring.CategoryWeights `json:"weights"`
	Districts        []RankedDistrict        `json:"districts"`
	Locations        []RankedLocation        `json:"locations"`
	Markers          []Marker                `json:"markers"`
	Selection        selection.Ref           `json:"selection"`
	SelectedDistrict *RankedDistrict         `json:"selected_district,omitempty"`
	SelectedLocation *RankedLocation         `json:"selected_location,omitempty"`
	FlyTo            *domain.Coords          `json:"fly_to,omitempty"`
}

func rankDistricts(scored []domain.ScoredDistrict) []RankedDistrict {
	ranked := ranking.Districts(scored)
	out := make([]RankedDistrict, 0, len(ranked))
	for i, d := range ranked {
		score := d.MatchScore
		out = append(out, RankedDistrict{
			ScoredDistrict: d,
			Rank:           i + 1,
			Color:          visual.ColorFor(&score).Hex(),
		})
	}
	return out
}

func rankLocations(locs []domain.CandidateLocation) []RankedLocation {
	ranked := ranking.Locations(locs)
	out := make([]RankedLocation, 0, len(ranked))
	for i, l := range ranked {
		out = append(out, RankedLocation{
			CandidateLocation: l,
			Rank:              i + 1,
			Color:             visual.ColorFor(l.Score).Hex(),
		})
	}
	return out
}

// buildView combines a hierarchy with a candidate snapshot. Markers keep
// submission order; the ranked lists are sorted by score.
func buildView(id string, h *weights.Hierarchy, version uint64, scored []domain.ScoredDistrict, snap *candidates.Snapshot) *View {
	v := &View{
		SessionID: id,
		Version:   version,
		Hierarchy: h,
		Weights:   scoring.WeightsOf(h),
		Districts: rankDistricts(scored),
		Locations: rankLocations(snap.Locations),
		Markers:   make([]Marker, 0, len(snap.Locations)),
		Selection: snap.Selection,
	}

	for _, l := range snap.Locations {
		v.Markers = append(v.Markers, Marker{ID: l.ID, Coords: l.Coords, Color: visual.ColorFor(l.Score).Hex()})
	}

	switch v.Selection.Kind {
	case selection.KindDistrict:
		for i := range v.Districts {
			if strconv.FormatInt(v.Districts[i].District.ID, 10) == v.Selection.ID {
				d := v.Districts[i]
				v.SelectedDistrict = &d
				coords := d.District.Coords
				v.FlyTo = &coords
				break
			}
		}
	case selection.KindLocation:
		for i := range v.Locations {
			if v.Locations[i].ID == v.Selection.ID {
				l := v.Locations[i]
				v.SelectedLocation = &l
				coords := l.Coords
				v.FlyTo = &coords
				break
			}
		}
	}

	return v
}
