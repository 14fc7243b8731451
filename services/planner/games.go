package planner

import (
	"Gamehub/models"
	"Gamehub/utils"
	"context"
	"fmt"
	"strings"
)

// GameInput is what a user submits to add a catalog entry
type GameInput struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	MinPlayers int      `json:"minPlayers"`
	MaxPlayers int      `json:"maxPlayers"`
	Platform   []string `json:"platform"`
}

func (in GameInput) validate() error {
	if err := utils.RequireNonEmpty("name", in.Name); err != nil {
		return err
	}
	if len(in.Platform) == 0 {
		return fmt.Errorf("%w: at least one platform is required", utils.ErrValidation)
	}
	if in.MinPlayers < 1 || in.MaxPlayers < in.MinPlayers {
		return fmt.Errorf("%w: players must satisfy 1 <= min <= max", utils.ErrValidation)
	}
	return nil
}

// ListGames returns the catalog, filtered by a case-insensitive match on
// name or category when query is not empty
func (s *Service) ListGames(ctx context.Context, query string) []models.Game {
	snap := s.Snapshot(ctx)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return snap.Games
	}
	out := make([]models.Game, 0)
	for _, g := range snap.Games {
		if strings.Contains(strings.ToLower(g.Name), query) || strings.Contains(strings.ToLower(g.Category), query) {
			out = append(out, g)
		}
	}
	return out
}

// AddGame adds a catalog entry owned by actorID
func (s *Service) AddGame(ctx context.Context, actorID string, in GameInput) (models.Game, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := in.validate(); err != nil {
		return models.Game{}, err
	}
	if in.Category == "" {
		in.Category = models.CategoryOther
	}
	if actorID == "" {
		actorID = "unknown"
	}

	game := models.Game{
		ID:         s.newID(),
		Name:       in.Name,
		Category:   in.Category,
		MinPlayers: in.MinPlayers,
		MaxPlayers: in.MaxPlayers,
		Platform:   in.Platform,
		CreatedBy:  actorID,
		CreatedAt:  s.now(),
	}
	_, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		snap.Games = append(snap.Games, game)
		return nil
	})
	if err != nil {
		return models.Game{}, err
	}
	return game, nil
}

// DeleteGame removes a catalog entry. System entries are protected and
// only the creator may delete the others.
func (s *Service) DeleteGame(ctx context.Context, actorID, gameID string) error {
	_, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		idx := -1
		for i := range snap.Games {
			if snap.Games[i].ID == gameID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: game %s", utils.ErrNotFound, gameID)
		}
		game := snap.Games[idx]
		if game.IsSystem() {
			return fmt.Errorf("%w: system games cannot be deleted", utils.ErrForbidden)
		}
		if game.CreatedBy != actorID {
			return fmt.Errorf("%w: only the creator can delete %s", utils.ErrForbidden, game.Name)
		}
		snap.Games = append(snap.Games[:idx], snap.Games[idx+1:]...)
		return nil
	})
	return err
}
